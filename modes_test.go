package aesfd

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func nistKey(t *testing.T) []byte {
	key, err := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	require.NoError(t, err)
	return key
}

func TestECBRoundTripLaw(t *testing.T) {
	key := nistKey(t)
	plaintext := []byte("0123456789ABCDEF0123456789ABCDEF")[:32]

	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Destroy()

	buf := append([]byte(nil), plaintext...)
	require.NoError(t, ctx.EncryptECB(buf))
	require.NoError(t, ctx.DecryptECB(buf))
	require.Equal(t, plaintext, buf)
}

func TestCBCRoundTripLaw(t *testing.T) {
	key := nistKey(t)
	iv, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	plaintext := []byte("AAAAAAAAAAAAAAAABBBBBBBBBBBBBBBB")

	ctx, err := NewContextWithIV(key, iv)
	require.NoError(t, err)
	defer ctx.Destroy()

	buf := append([]byte(nil), plaintext...)
	require.NoError(t, ctx.EncryptCBC(buf))

	require.NoError(t, ctx.SetIV(iv))
	require.NoError(t, ctx.DecryptCBC(buf))
	require.Equal(t, plaintext, buf)
}

func TestCBCRejectsUnalignedLength(t *testing.T) {
	key := nistKey(t)
	iv := make([]byte, blockLen)
	ctx, err := NewContextWithIV(key, iv)
	require.NoError(t, err)
	defer ctx.Destroy()

	err = ctx.EncryptCBC(make([]byte, 17))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidLength))
}

func TestCBCRejectsMissingIV(t *testing.T) {
	key := nistKey(t)
	ctx, err := NewContext(key)
	require.NoError(t, err)
	defer ctx.Destroy()

	err = ctx.EncryptCBC(make([]byte, blockLen))
	require.True(t, errors.Is(err, ErrInvalidIVState))
}

func TestCTRRoundTripLaw(t *testing.T) {
	key := nistKey(t)
	iv, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	plaintext := []byte("single block of input here-----extra trailing partial")

	ctx, err := NewContextWithIV(key, iv)
	require.NoError(t, err)
	defer ctx.Destroy()

	buf := append([]byte(nil), plaintext...)
	require.NoError(t, ctx.XCryptCTR(buf))
	require.NotEqual(t, plaintext, buf)

	require.NoError(t, ctx.SetIV(iv))
	require.NoError(t, ctx.XCryptCTR(buf))
	require.Equal(t, plaintext, buf)
}

func TestCTREmptyBufferIsNoOp(t *testing.T) {
	key := nistKey(t)
	iv := make([]byte, blockLen)
	ctx, err := NewContextWithIV(key, iv)
	require.NoError(t, err)
	defer ctx.Destroy()

	buf := []byte{}
	require.NoError(t, ctx.XCryptCTR(buf))
	require.Empty(t, buf)
}

// boundary behaviour: CTR across a counter byte-boundary (IV ...00FF)
// must produce the same keystream as a fresh call with IV ...0100 for the
// continuation.
func TestCTRCounterCarryAcrossByteBoundary(t *testing.T) {
	key := nistKey(t)
	ivBase, _ := hex.DecodeString("000102030405060708090a0b0c0d00ff")
	ivNext, _ := hex.DecodeString("000102030405060708090a0b0c0d0100")

	plaintext := make([]byte, blockLen*2)

	// One call spanning both blocks from ivBase must produce the same
	// second-block keystream as a fresh call seeded at ivNext.
	ctxCombined, err := NewContextWithIV(key, ivBase)
	require.NoError(t, err)
	defer ctxCombined.Destroy()
	combined := append([]byte(nil), plaintext...)
	require.NoError(t, ctxCombined.XCryptCTR(combined))

	ctxFirst, err := NewContextWithIV(key, ivBase)
	require.NoError(t, err)
	defer ctxFirst.Destroy()
	first := append([]byte(nil), plaintext[:blockLen]...)
	require.NoError(t, ctxFirst.XCryptCTR(first))
	require.Equal(t, first, combined[:blockLen])

	ctxSecond, err := NewContextWithIV(key, ivNext)
	require.NoError(t, err)
	defer ctxSecond.Destroy()
	second := append([]byte(nil), plaintext[blockLen:]...)
	require.NoError(t, ctxSecond.XCryptCTR(second))
	require.Equal(t, second, combined[blockLen:])
}

func TestIncrementCounterCarryPropagates(t *testing.T) {
	iv := [blockLen]byte{}
	for i := range iv {
		iv[i] = 0xff
	}
	incrementCounter(&iv)
	require.Equal(t, [blockLen]byte{}, iv)
}
