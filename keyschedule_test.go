package aesfd

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariantForKeySelectsCorrectNkNr(t *testing.T) {
	cases := []struct {
		size   int
		nk, nr int
	}{
		{16, 4, 10},
		{24, 6, 12},
		{32, 8, 14},
	}
	for _, c := range cases {
		v, err := variantForKey(make([]byte, c.size))
		require.NoError(t, err)
		require.Equal(t, c.nk, v.nk)
		require.Equal(t, c.nr, v.nr)
	}
}

func TestVariantForKeyRejectsBadLength(t *testing.T) {
	_, err := variantForKey(make([]byte, 20))
	require.Error(t, err)
}

// FIPS-197 Appendix A.1: the AES-128 key schedule for this key ends with
// round key 10 equal to d014f9a8c9ee2589e13f0cc8b6630ca6.
func TestExpandKeyAES128MatchesFIPS197AppendixA(t *testing.T) {
	key, err := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	require.NoError(t, err)

	v, err := variantForKey(key)
	require.NoError(t, err)

	roundKey := expandKey(key, v)
	require.Len(t, roundKey, nb*(v.nr+1)*4)

	want, _ := hex.DecodeString("d014f9a8c9ee2589e13f0cc8b6630ca6")
	require.Equal(t, want, roundKey[len(roundKey)-16:])
}

func TestExpandKeyFirstRoundKeyIsTheRawKey(t *testing.T) {
	key, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	v, err := variantForKey(key)
	require.NoError(t, err)

	roundKey := expandKey(key, v)
	require.Equal(t, key, roundKey[:16])
}
