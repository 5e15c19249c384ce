// report.go - self-test reporting.
//
// Same "run every check, fill in a struct, print it" shape as a prior
// compliance report type, but every field is backed by a real check this
// engine can actually perform (KAT pass/fail, the key-schedule fixture,
// the Hamming invariant, the fault-injection scenarios) instead of
// hardcoded checkmarks that were always true.
package aesfd

import (
	"fmt"
	"strings"
)

// EngineReport summarizes the outcome of a full self-test run.
type EngineReport struct {
	KATPassed          int
	KATFailed          int
	KeyScheduleOK      bool
	HammingInvariantOK bool
	FaultScenario1OK   bool
	FaultScenario2OK   bool
	FaultScenario3OK   bool
	Corrections        int64
	Uncorrectable      int64
	BlocksProcessed    int64
	Monobit            MonobitResult
}

// RunSelfTest exercises the engine's correctness checks end to end and
// returns a report. A check that runs and fails is reflected in the
// report's fields; an error returned by the KAT run or by a fault
// scenario's pipeline run (such as an uncorrectable fault in the
// single-bit scenario) is returned as a Go error with no report.
func RunSelfTest() (*EngineReport, error) {
	report := &EngineReport{}

	kat := NewKATTestSuite()
	passed, failed, err := kat.RunAll()
	if err != nil {
		return nil, fmt.Errorf("aesfd: self-test KAT run: %w", err)
	}
	report.KATPassed, report.KATFailed = passed, failed

	report.KeyScheduleOK = checkKeySchedule()
	report.HammingInvariantOK = checkHammingInvariant()

	s1, mon1, err := checkFaultScenarioSingleBit()
	if err != nil {
		return nil, err
	}
	report.FaultScenario1OK = s1

	s2, mon2, err := checkFaultScenarioDoubleBit()
	if err != nil {
		return nil, err
	}
	report.FaultScenario2OK = s2

	s3, mon3, err := checkFaultScenarioPcodeFlip()
	if err != nil {
		return nil, err
	}
	report.FaultScenario3OK = s3

	for _, mon := range []*FaultMonitor{mon1, mon2, mon3} {
		if mon == nil {
			continue
		}
		report.Corrections += mon.Corrections()
		report.Uncorrectable += mon.Uncorrectable()
		report.BlocksProcessed += mon.BlocksProcessed()
	}

	var ciphertextSample []byte
	for _, v := range kat.vectors {
		ciphertextSample = append(ciphertextSample, v.Ciphertext...)
	}
	report.Monobit = runMonobitTest(ciphertextSample)

	return report, nil
}

// Pass reports whether every check in the report succeeded.
func (r *EngineReport) Pass() bool {
	return r.KATFailed == 0 &&
		r.KeyScheduleOK &&
		r.HammingInvariantOK &&
		r.FaultScenario1OK &&
		r.FaultScenario2OK &&
		r.FaultScenario3OK
}

// String renders a human-readable summary.
func (r *EngineReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "KAT:               %d passed, %d failed\n", r.KATPassed, r.KATFailed)
	fmt.Fprintf(&b, "Key schedule:      %v\n", r.KeyScheduleOK)
	fmt.Fprintf(&b, "Hamming invariant: %v\n", r.HammingInvariantOK)
	fmt.Fprintf(&b, "Fault scenario 1:  %v (single-bit correction)\n", r.FaultScenario1OK)
	fmt.Fprintf(&b, "Fault scenario 2:  %v (double-bit abort/correct)\n", r.FaultScenario2OK)
	fmt.Fprintf(&b, "Fault scenario 3:  %v (pcode corruption detected)\n", r.FaultScenario3OK)
	fmt.Fprintf(&b, "Ciphertext sample: %s\n", r.Monobit)
	fmt.Fprintf(&b, "Overall:           %v\n", r.Pass())
	return b.String()
}
