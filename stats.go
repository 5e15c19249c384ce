// stats.go - basic statistical sanity check over cipher output.
//
// Same ones/total ratio computation as a prior monobit check, but run over
// this engine's own KAT ciphertexts during self-test (report.go) rather
// than over an independently seeded sample.
package aesfd

import "fmt"

// MonobitResult is the outcome of counting set bits in a byte stream.
type MonobitResult struct {
	Ones       int
	TotalBits  int
	Ratio      float64
	WithinSpec bool
}

// monobitTolerance bounds how far from 0.5 the one-bit ratio may drift and
// still be considered healthy output; this is a coarse sanity check, not a
// cryptographic randomness test.
const monobitTolerance = 0.1

// runMonobitTest counts set bits in data and reports the ratio against
// monobitTolerance.
func runMonobitTest(data []byte) MonobitResult {
	ones := 0
	for _, b := range data {
		for i := 0; i < 8; i++ {
			if (b>>uint(i))&1 == 1 {
				ones++
			}
		}
	}
	total := len(data) * 8
	var ratio float64
	if total > 0 {
		ratio = float64(ones) / float64(total)
	}
	return MonobitResult{
		Ones:       ones,
		TotalBits:  total,
		Ratio:      ratio,
		WithinSpec: total == 0 || (ratio > 0.5-monobitTolerance && ratio < 0.5+monobitTolerance),
	}
}

func (r MonobitResult) String() string {
	return fmt.Sprintf("ones=%d total=%d ratio=%.4f withinSpec=%v", r.Ones, r.TotalBits, r.Ratio, r.WithinSpec)
}
