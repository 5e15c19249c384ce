package aesfd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMonobitTestBalancedInput(t *testing.T) {
	data := []byte{0x55, 0xaa, 0x55, 0xaa} // exactly half the bits set
	result := runMonobitTest(data)
	require.Equal(t, 16, result.Ones)
	require.Equal(t, 32, result.TotalBits)
	require.InDelta(t, 0.5, result.Ratio, 1e-9)
	require.True(t, result.WithinSpec)
}

func TestRunMonobitTestSkewedInput(t *testing.T) {
	data := make([]byte, 64) // all zero bits
	result := runMonobitTest(data)
	require.Equal(t, 0, result.Ones)
	require.False(t, result.WithinSpec)
}

func TestRunMonobitTestEmptyInput(t *testing.T) {
	result := runMonobitTest(nil)
	require.Equal(t, 0, result.TotalBits)
	require.True(t, result.WithinSpec)
}
