// round.go - AES round transforms and their inverses.
package aesfd

// addRoundKey XORs the 16 round-key bytes for the given round into the
// state. roundKey must hold nb*(nr+1)*4 bytes, laid out identically to a
// plaintext block per round (see expandKey).
func addRoundKey(s *state, roundKey []byte, round int) {
	base := round * blockLen
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[c][r] ^= roundKey[base+4*c+r]
		}
	}
}

// subBytes replaces every state byte with its forward S-box image.
func subBytes(s *state) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[c][r] = sbox[s[c][r]]
		}
	}
}

// invSubBytes replaces every state byte with its inverse S-box image.
func invSubBytes(s *state) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[c][r] = rsbox[s[c][r]]
		}
	}
}

// shiftRows cyclically rotates row r left by r columns.
func shiftRows(s *state) {
	var tmp byte

	tmp = s[0][1]
	s[0][1] = s[1][1]
	s[1][1] = s[2][1]
	s[2][1] = s[3][1]
	s[3][1] = tmp

	tmp = s[0][2]
	s[0][2] = s[2][2]
	s[2][2] = tmp
	tmp = s[1][2]
	s[1][2] = s[3][2]
	s[3][2] = tmp

	tmp = s[0][3]
	s[0][3] = s[3][3]
	s[3][3] = s[2][3]
	s[2][3] = s[1][3]
	s[1][3] = tmp
}

// invShiftRows cyclically rotates row r right by r columns.
func invShiftRows(s *state) {
	var tmp byte

	tmp = s[3][1]
	s[3][1] = s[2][1]
	s[2][1] = s[1][1]
	s[1][1] = s[0][1]
	s[0][1] = tmp

	tmp = s[0][2]
	s[0][2] = s[2][2]
	s[2][2] = tmp
	tmp = s[1][2]
	s[1][2] = s[3][2]
	s[3][2] = tmp

	tmp = s[0][3]
	s[0][3] = s[1][3]
	s[1][3] = s[2][3]
	s[2][3] = s[3][3]
	s[3][3] = tmp
}

// mixColumns multiplies each column by the fixed {02,03,01,01} circulant
// matrix, one xtime-rotated sum at a time (the same algebraic shortcut the
// reference implementation uses, rather than four explicit multiply calls
// per byte).
func mixColumns(s *state) {
	for c := 0; c < 4; c++ {
		t := s[c][0]
		tmp := s[c][0] ^ s[c][1] ^ s[c][2] ^ s[c][3]

		tm := xtime(s[c][0] ^ s[c][1])
		s[c][0] ^= tm ^ tmp

		tm = xtime(s[c][1] ^ s[c][2])
		s[c][1] ^= tm ^ tmp

		tm = xtime(s[c][2] ^ s[c][3])
		s[c][2] ^= tm ^ tmp

		tm = xtime(s[c][3] ^ t)
		s[c][3] ^= tm ^ tmp
	}
}

// invMixColumns multiplies each column by the inverse {0e,0b,0d,09} matrix.
func invMixColumns(s *state) {
	for c := 0; c < 4; c++ {
		a, b, cc, d := s[c][0], s[c][1], s[c][2], s[c][3]

		s[c][0] = multiply(a, 0x0e) ^ multiply(b, 0x0b) ^ multiply(cc, 0x0d) ^ multiply(d, 0x09)
		s[c][1] = multiply(a, 0x09) ^ multiply(b, 0x0e) ^ multiply(cc, 0x0b) ^ multiply(d, 0x0d)
		s[c][2] = multiply(a, 0x0d) ^ multiply(b, 0x09) ^ multiply(cc, 0x0e) ^ multiply(d, 0x0b)
		s[c][3] = multiply(a, 0x0b) ^ multiply(b, 0x0d) ^ multiply(cc, 0x09) ^ multiply(d, 0x0e)
	}
}

// mixColumnsCoeff is the forward MixColumns circulant matrix, coeff[r][k],
// used by predictMixCols to compute the expected post-transform code
// directly.
var mixColumnsCoeff = [4][4]byte{
	{0x02, 0x03, 0x01, 0x01},
	{0x01, 0x02, 0x03, 0x01},
	{0x01, 0x01, 0x02, 0x03},
	{0x03, 0x01, 0x01, 0x02},
}
