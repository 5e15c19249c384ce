// selftest.go - the individual checks behind report.go's EngineReport:
// one per testable property that isn't already a KAT vector.
package aesfd

import (
	"bytes"
	"errors"
)

// checkKeySchedule verifies the Rijndael key schedule against the
// FIPS-197 Appendix A.1 worked example for AES-128.
func checkKeySchedule() bool {
	key := mustHex("2b7e151628aed2a6abf7158809cf4f3c")
	v, err := variantForKey(key)
	if err != nil {
		return false
	}
	roundKey := expandKey(key, v)
	want := mustHex("d014f9a8c9ee2589e13f0cc8b6630ca6")
	got := roundKey[len(roundKey)-16:]
	return bytes.Equal(got, want)
}

// checkHammingInvariant verifies hamming_encode(T(S)) == predictor_T(
// hamming_encode(S)) elementwise for each round transform, over a sample
// state and round key drawn from the NIST vectors.
func checkHammingInvariant() bool {
	key := mustHex("2b7e151628aed2a6abf7158809cf4f3c")
	v, err := variantForKey(key)
	if err != nil {
		return false
	}
	roundKey := expandKey(key, v)

	s := toState(mustHex("6bc1bee22e409f96e93d7e117393172a"))

	pcode := s.encode()
	predictSub(s, &pcode)
	sSub := s
	subBytes(&sSub)
	if !sSub.encode().equal(pcode) {
		return false
	}

	pcode2 := sSub.encode()
	predictShift(&pcode2)
	sShift := sSub
	shiftRows(&sShift)
	if !sShift.encode().equal(pcode2) {
		return false
	}

	pcode3 := sShift.encode()
	predictMixCols(sShift, &pcode3)
	sMix := sShift
	mixColumns(&sMix)
	if !sMix.encode().equal(pcode3) {
		return false
	}

	pcode4 := sMix.encode()
	predictAddKey(&pcode4, roundKey, 1)
	sKey := sMix
	addRoundKey(&sKey, roundKey, 1)
	return sKey.encode().equal(pcode4)
}

// referenceCiphertext encrypts block under key with a fresh, unfaulted
// context, for comparison against a faulted run.
func referenceCiphertext(key, block []byte) ([]byte, error) {
	ctx, err := NewContext(key)
	if err != nil {
		return nil, err
	}
	defer ctx.Destroy()
	out := make([]byte, len(block))
	copy(out, block)
	if err := ctx.EncryptECB(out); err != nil {
		return nil, err
	}
	return out, nil
}

// checkFaultScenarioSingleBit implements scenario 1: flipping one bit
// right after SubBytes in round 1 must be silently corrected, and the
// block's final output must match the unperturbed reference.
func checkFaultScenarioSingleBit() (bool, *FaultMonitor, error) {
	key := mustHex("2b7e151628aed2a6abf7158809cf4f3c")
	block := mustHex("6bc1bee22e409f96e93d7e117393172a")

	reference, err := referenceCiphertext(key, block)
	if err != nil {
		return false, nil, err
	}

	ctx, err := NewContext(key)
	if err != nil {
		return false, nil, err
	}
	defer ctx.Destroy()

	faulted := make([]byte, len(block))
	copy(faulted, block)

	hook := func(transform string, round int, s *state) {
		if transform == "SubBytes" && round == 1 {
			s[0][0] = flipBit(s[0][0], 3)
		}
	}
	if err := ctx.encryptBlockHooked(faulted, hook); err != nil {
		return false, ctx.monitor, err
	}
	if ctx.monitor.Corrections() == 0 {
		return false, ctx.monitor, nil
	}
	return bytes.Equal(faulted, reference), ctx.monitor, nil
}

// checkFaultScenarioDoubleBit implements scenario 2: a two-bit fault in
// one byte must either be resolved (output matches reference) or the
// engine must abort with an uncorrectable-fault error. It must never
// silently emit a wrong block.
func checkFaultScenarioDoubleBit() (bool, *FaultMonitor, error) {
	key := mustHex("2b7e151628aed2a6abf7158809cf4f3c")
	block := mustHex("6bc1bee22e409f96e93d7e117393172a")

	reference, err := referenceCiphertext(key, block)
	if err != nil {
		return false, nil, err
	}

	ctx, err := NewContext(key)
	if err != nil {
		return false, nil, err
	}
	defer ctx.Destroy()

	faulted := make([]byte, len(block))
	copy(faulted, block)

	hook := func(transform string, round int, s *state) {
		if transform == "SubBytes" && round == 1 {
			s[0][0] = flipBit(s[0][0], 1)
			s[0][0] = flipBit(s[0][0], 6)
		}
	}
	err = ctx.encryptBlockHooked(faulted, hook)
	if err == nil {
		return bytes.Equal(faulted, reference), ctx.monitor, nil
	}
	return errors.Is(err, ErrUncorrectableFault), ctx.monitor, nil
}

// checkFaultScenarioPcodeFlip implements scenario 3: corrupting a byte
// of pcode itself (rather than the real state) must still be detected by
// the next compare-and-correct step.
func checkFaultScenarioPcodeFlip() (bool, *FaultMonitor, error) {
	key := mustHex("2b7e151628aed2a6abf7158809cf4f3c")
	v, err := variantForKey(key)
	if err != nil {
		return false, nil, err
	}
	roundKey := expandKey(key, v)

	s := toState(mustHex("6bc1bee22e409f96e93d7e117393172a"))
	pcode := s.encode()

	predictAddKey(&pcode, roundKey, 0)
	addRoundKey(&s, roundKey, 0)

	pcode[0][0] = flipBit(pcode[0][0], 0)

	ctx, err := NewContext(key)
	if err != nil {
		return false, nil, err
	}
	defer ctx.Destroy()

	verr := ctx.verifyAndCorrect(&s, &pcode, "AddRoundKey", 0)
	detected := ctx.monitor.Corrections() > 0 || ctx.monitor.Uncorrectable() > 0 || verr != nil
	return detected, ctx.monitor, nil
}
