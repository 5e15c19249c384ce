package aesfd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXtimeKnownValues(t *testing.T) {
	require.Equal(t, byte(0x02), xtime(0x01))
	require.Equal(t, byte(0x1b), xtime(0x80))
	require.Equal(t, byte(0xb5), xtime(0xd7))
}

func TestMultiplyAgainstRepeatedXtime(t *testing.T) {
	// a*1 == a, and a*2 == xtime(a), by definition of the field.
	for a := 0; a < 256; a++ {
		require.Equal(t, byte(a), multiply(byte(a), 1))
		require.Equal(t, xtime(byte(a)), multiply(byte(a), 2))
	}
}

// multiply only expands 5 bits of its second operand (the cascaded-xtime
// shortcut the reference implementation uses), which is exact for every
// constant MixColumns/InvMixColumns actually multiplies by (all < 0x20).
// Commutativity only needs to hold within that range.
func TestMultiplyIsCommutative(t *testing.T) {
	for a := 0; a < 32; a++ {
		for b := 0; b < 32; b++ {
			require.Equal(t, multiply(byte(a), byte(b)), multiply(byte(b), byte(a)))
		}
	}
}
