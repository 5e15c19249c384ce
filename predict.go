// predict.go - shadow transforms that keep the predicted-code matrix in
// sync with what the real state's Hamming encoding should become. Each
// predictor runs BEFORE its corresponding round transform mutates the
// real state.
package aesfd

// predictAddKey XORs the Hamming code of each round-key byte into pcode.
// Hamming-encode distributes over XOR (it's linear over GF(2)), so this
// needs no knowledge of the state itself.
func predictAddKey(pcode *hammingState, roundKey []byte, round int) {
	base := round * blockLen
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			pcode[c][r] ^= hammingEncode(roundKey[base+4*c+r])
		}
	}
}

// predictSub sets pcode to the Hamming code of the post-substitution
// state, read from the pre-substitution state via hRD (which already
// incorporates the S-box).
func predictSub(s state, pcode *hammingState) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			pcode[c][r] = hRD[s[c][r]]
		}
	}
}

// predictShift applies the same row rotation ShiftRows applies to the
// state, to pcode.
func predictShift(pcode *hammingState) {
	var tmp byte

	tmp = pcode[0][1]
	pcode[0][1] = pcode[1][1]
	pcode[1][1] = pcode[2][1]
	pcode[2][1] = pcode[3][1]
	pcode[3][1] = tmp

	tmp = pcode[0][2]
	pcode[0][2] = pcode[2][2]
	pcode[2][2] = tmp
	tmp = pcode[1][2]
	pcode[1][2] = pcode[3][2]
	pcode[3][2] = tmp

	tmp = pcode[0][3]
	pcode[0][3] = pcode[3][3]
	pcode[3][3] = pcode[2][3]
	pcode[2][3] = pcode[1][3]
	pcode[1][3] = tmp
}

// predictMixCols sets pcode[c][r] to the Hamming code of column c's row r
// after MixColumns, computed directly from the pre-transform state using
// the circulant coefficients rather than re-deriving it from the
// transformed bytes.
func predictMixCols(s state, pcode *hammingState) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var code byte
			for k := 0; k < 4; k++ {
				code ^= hammingEncode(multiply(s[c][k], mixColumnsCoeff[r][k]))
			}
			pcode[c][r] = code
		}
	}
}
