package aesfd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleState() state {
	var s state
	var b byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[c][r] = b
			b += 17
		}
	}
	return s
}

func TestSubBytesInvSubBytesRoundTrip(t *testing.T) {
	s := sampleState()
	orig := s
	subBytes(&s)
	invSubBytes(&s)
	require.Equal(t, orig, s)
}

func TestShiftRowsInvShiftRowsRoundTrip(t *testing.T) {
	s := sampleState()
	orig := s
	shiftRows(&s)
	invShiftRows(&s)
	require.Equal(t, orig, s)
}

func TestMixColumnsInvMixColumnsRoundTrip(t *testing.T) {
	s := sampleState()
	orig := s
	mixColumns(&s)
	invMixColumns(&s)
	require.Equal(t, orig, s)
}

func TestAddRoundKeyIsSelfInverse(t *testing.T) {
	s := sampleState()
	orig := s
	roundKey := make([]byte, blockLen)
	for i := range roundKey {
		roundKey[i] = byte(i * 3)
	}
	addRoundKey(&s, roundKey, 0)
	addRoundKey(&s, roundKey, 0)
	require.Equal(t, orig, s)
}

func TestShiftRowsLeavesRowZeroUnchanged(t *testing.T) {
	s := sampleState()
	orig := s
	shiftRows(&s)
	for c := 0; c < 4; c++ {
		require.Equal(t, orig[c][0], s[c][0])
	}
}

func TestToStateBytesRoundTrip(t *testing.T) {
	block := make([]byte, blockLen)
	for i := range block {
		block[i] = byte(i * 13)
	}
	s := toState(block)
	out := s.bytes()
	require.Equal(t, block, out[:])
}
