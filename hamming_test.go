package aesfd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHammingEncodeMatchesHRDAfterSubBytes(t *testing.T) {
	for b := 0; b < 256; b++ {
		require.Equal(t, hammingEncode(sbox[byte(b)]), hRD[byte(b)], "byte %d", b)
	}
}

func TestHammingEncodeIsLinear(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			got := hammingEncode(byte(a) ^ byte(b))
			want := hammingEncode(byte(a)) ^ hammingEncode(byte(b))
			require.Equal(t, want, got)
		}
	}
}

func TestCorrectByteNoOpWhenCodesAgree(t *testing.T) {
	value := byte(0x42)
	code := hammingEncode(value)
	got, ok := correctByte(value, code, code, SyndromeConventionLegacy)
	require.True(t, ok)
	require.Equal(t, value, got)
}

func TestCorrectByteRepairsEverySingleBitFlip(t *testing.T) {
	for bit := uint(0); bit < 8; bit++ {
		value := byte(0x5a)
		predicted := hammingEncode(value)
		flipped := flipBit(value, bit)
		observed := hammingEncode(flipped)

		got, ok := correctByte(flipped, observed, predicted, SyndromeConventionLegacy)
		require.True(t, ok, "bit %d", bit)
		require.Equal(t, value, got, "bit %d", bit)
	}
}

// The two syndrome conventions read opposite bit values out of the same
// diff, so they generally resolve the same mismatch to different flip
// positions. diff == 0b0011 is one such case: legacy reads the 0-bits
// (positions 3,2) and flips bit 0; textbook reads the 1-bits (positions
// 1,0) and flips bit 7.
func TestCorrectByteConventionsDisagreeOnSignalBit(t *testing.T) {
	value := byte(0x00)
	predicted := byte(0b1100)
	observed := byte(predicted ^ 0b0011)

	legacy, ok := correctByte(value, observed, predicted, SyndromeConventionLegacy)
	require.True(t, ok)
	require.Equal(t, flipBit(value, 0), legacy)

	textbook, ok := correctByte(value, observed, predicted, SyndromeConventionTextbook)
	require.True(t, ok)
	require.Equal(t, flipBit(value, 7), textbook)

	require.NotEqual(t, legacy, textbook)
}
