// keyschedule.go - expands a raw key into the round-key buffer.
package aesfd

import "fmt"

// keyVariant captures (Nk, Nr) for one of the three supported key sizes.
type keyVariant struct {
	nk int // words in the key
	nr int // number of rounds
}

var keyVariants = map[int]keyVariant{
	16: {nk: 4, nr: 10}, // AES-128
	24: {nk: 6, nr: 12}, // AES-192
	32: {nk: 8, nr: 14}, // AES-256
}

func variantForKey(key []byte) (keyVariant, error) {
	v, ok := keyVariants[len(key)]
	if !ok {
		return keyVariant{}, fmt.Errorf("aesfd: key must be 16, 24 or 32 bytes, got %d", len(key))
	}
	return v, nil
}

// expandKey produces nb*(nr+1) words (4*nb*(nr+1) bytes) of round-key
// material from the raw key, per the Rijndael key schedule.
func expandKey(key []byte, v keyVariant) []byte {
	total := nb * (v.nr + 1) * 4
	roundKey := make([]byte, total)

	copy(roundKey, key)

	var tempa [4]byte
	for i := v.nk; i < nb*(v.nr+1); i++ {
		k := (i - 1) * 4
		tempa[0] = roundKey[k+0]
		tempa[1] = roundKey[k+1]
		tempa[2] = roundKey[k+2]
		tempa[3] = roundKey[k+3]

		if i%v.nk == 0 {
			// RotWord: [a0,a1,a2,a3] -> [a1,a2,a3,a0]
			t := tempa[0]
			tempa[0] = tempa[1]
			tempa[1] = tempa[2]
			tempa[2] = tempa[3]
			tempa[3] = t

			// SubWord
			tempa[0] = sbox[tempa[0]]
			tempa[1] = sbox[tempa[1]]
			tempa[2] = sbox[tempa[2]]
			tempa[3] = sbox[tempa[3]]

			tempa[0] ^= rcon[i/v.nk]
		} else if v.nk > 6 && i%v.nk == 4 {
			// AES-256 only: an extra SubWord at the halfway point of each
			// key-length block.
			tempa[0] = sbox[tempa[0]]
			tempa[1] = sbox[tempa[1]]
			tempa[2] = sbox[tempa[2]]
			tempa[3] = sbox[tempa[3]]
		}

		j := i * 4
		kk := (i - v.nk) * 4
		roundKey[j+0] = roundKey[kk+0] ^ tempa[0]
		roundKey[j+1] = roundKey[kk+1] ^ tempa[1]
		roundKey[j+2] = roundKey[kk+2] ^ tempa[2]
		roundKey[j+3] = roundKey[kk+3] ^ tempa[3]
	}

	return roundKey
}
