package aes

import "github.com/drjonah/applications-of-aes/pkg/gf"

// state holds one block mid-transform. Bytes are column-major as in
// FIPS-197: s[4*c+r] is row r of column c, so each group of four input
// bytes is one column (one word).
type state [BlockSize]byte

func (s *state) subBytes() {
	for i, b := range s {
		s[i] = sbox0[b]
	}
}

func (s *state) invSubBytes() {
	for i, b := range s {
		s[i] = sbox1[b]
	}
}

// shiftRows rotates row r left by r columns.
func (s *state) shiftRows() {
	t := *s
	for c := 0; c < 4; c++ {
		for r := 1; r < 4; r++ {
			s[4*c+r] = t[4*((c+r)%4)+r]
		}
	}
}

// invShiftRows rotates row r right by r columns.
func (s *state) invShiftRows() {
	t := *s
	for c := 0; c < 4; c++ {
		for r := 1; r < 4; r++ {
			s[4*((c+r)%4)+r] = t[4*c+r]
		}
	}
}

// mixColumns multiplies every column by the circulant MDS matrix whose
// first row is {2, 3, 1, 1}.
func (s *state) mixColumns() {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c] = gf.Mul(a0, 2) ^ gf.Mul(a1, 3) ^ a2 ^ a3
		s[c+1] = a0 ^ gf.Mul(a1, 2) ^ gf.Mul(a2, 3) ^ a3
		s[c+2] = a0 ^ a1 ^ gf.Mul(a2, 2) ^ gf.Mul(a3, 3)
		s[c+3] = gf.Mul(a0, 3) ^ a1 ^ a2 ^ gf.Mul(a3, 2)
	}
}

// invMixColumns uses the inverse matrix, first row {14, 11, 13, 9}.
func (s *state) invMixColumns() {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c] = gf.Mul(a0, 14) ^ gf.Mul(a1, 11) ^ gf.Mul(a2, 13) ^ gf.Mul(a3, 9)
		s[c+1] = gf.Mul(a0, 9) ^ gf.Mul(a1, 14) ^ gf.Mul(a2, 11) ^ gf.Mul(a3, 13)
		s[c+2] = gf.Mul(a0, 13) ^ gf.Mul(a1, 9) ^ gf.Mul(a2, 14) ^ gf.Mul(a3, 11)
		s[c+3] = gf.Mul(a0, 11) ^ gf.Mul(a1, 13) ^ gf.Mul(a2, 9) ^ gf.Mul(a3, 14)
	}
}

// addRoundKey is its own inverse.
func (s *state) addRoundKey(k *RoundKey) {
	for i := range s {
		s[i] ^= k[i]
	}
}
