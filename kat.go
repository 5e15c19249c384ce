// kat.go - Known Answer Tests against NIST SP 800-38A reference vectors.
//
// Same "named vectors, run them all, report pass/fail, compute a digest"
// shape used elsewhere in this codebase, with real FIPS-197/SP-800-38A
// values run through the actual cipher pipeline.
package aesfd

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// KATVector is one known-answer test case: a key, a plaintext block, and
// the ciphertext it must produce under ECB encryption.
type KATVector struct {
	ID          string
	Key         []byte
	Plaintext   []byte
	Ciphertext  []byte
	Description string
}

// KATTestSuite runs a fixed set of vectors and tallies the outcome.
type KATTestSuite struct {
	vectors []KATVector
	passed  int
	failed  int
}

// NewKATTestSuite returns a suite pre-loaded with the NIST SP 800-38A
// AES-128 ECB vectors.
func NewKATTestSuite() *KATTestSuite {
	kat := &KATTestSuite{}
	kat.loadNISTVectors()
	return kat
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("aesfd: malformed constant hex literal: " + err.Error())
	}
	return b
}

// loadNISTVectors populates the suite with the four AES-128 ECB
// plaintext/ciphertext pairs from NIST SP 800-38A, all sharing one key.
func (kat *KATTestSuite) loadNISTVectors() {
	key := mustHex("2b7e151628aed2a6abf7158809cf4f3c")
	pairs := []struct{ pt, ct string }{
		{"6bc1bee22e409f96e93d7e117393172a", "3ad77bb40d7a3660a89ecaf32466ef97"},
		{"ae2d8a571e03ac9c9eb76fac45af8e51", "f5d3d58503b9699de785895a96fdbaaf"},
		{"30c81c46a35ce411e5fbc1191a0a52ef", "43b1cd7f598ece23881b00e3ed030688"},
		{"f69f2445df4f9b17ad2b417be66c3710", "7b0c785e27e8ad3f8223207104725dd4"},
	}
	for i, p := range pairs {
		kat.vectors = append(kat.vectors, KATVector{
			ID:          fmt.Sprintf("NIST-ECB-128-%d", i+1),
			Key:         key,
			Plaintext:   mustHex(p.pt),
			Ciphertext:  mustHex(p.ct),
			Description: "NIST SP 800-38A AES-128 ECB vector",
		})
	}
}

// VerifyVector runs one vector's plaintext through real ECB encryption and
// compares against its expected ciphertext.
func (kat *KATTestSuite) VerifyVector(vector KATVector) (bool, error) {
	ctx, err := NewContext(vector.Key)
	if err != nil {
		return false, err
	}
	defer ctx.Destroy()

	buf := make([]byte, len(vector.Plaintext))
	copy(buf, vector.Plaintext)

	if err := ctx.EncryptECB(buf); err != nil {
		return false, err
	}
	return bytes.Equal(buf, vector.Ciphertext), nil
}

// RunAll executes every loaded vector and returns pass/fail counts.
func (kat *KATTestSuite) RunAll() (passed, failed int, err error) {
	kat.passed, kat.failed = 0, 0
	for _, vector := range kat.vectors {
		ok, verr := kat.VerifyVector(vector)
		if verr != nil {
			return kat.passed, kat.failed, fmt.Errorf("aesfd: KAT %s: %w", vector.ID, verr)
		}
		if ok {
			kat.passed++
			log.Debug().Str("vector", vector.ID).Msg("KAT passed")
		} else {
			kat.failed++
			log.Error().Str("vector", vector.ID).Msg("KAT FAILED")
		}
	}
	return kat.passed, kat.failed, nil
}

// Compliant reports whether every loaded vector passed the last RunAll.
func (kat *KATTestSuite) Compliant() bool {
	return kat.failed == 0 && len(kat.vectors) > 0
}

// VectorDigest returns a SHA3-512 digest binding the suite's vector set,
// useful for confirming two builds are testing the same known-answer data.
func (kat *KATTestSuite) VectorDigest() [64]byte {
	h := sha3.New512()
	for _, v := range kat.vectors {
		h.Write([]byte(v.ID))
		h.Write(v.Key)
		h.Write(v.Plaintext)
		h.Write(v.Ciphertext)
	}
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}
