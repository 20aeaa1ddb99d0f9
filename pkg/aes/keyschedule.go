package aes

import (
	"github.com/drjonah/applications-of-aes/pkg/utils/bits"
)

// RoundKey is one 16-byte slice of the expanded key, in the same
// column-major byte order as a block.
type RoundKey [BlockSize]byte

// rounds maps the key length in 32-bit words to the number of rounds.
func rounds(nk int) int {
	switch nk {
	case 4:
		return 10
	case 6:
		return 12
	case 8:
		return 14
	}
	return 0
}

// ExpandKey runs the FIPS-197 key expansion and returns rounds+1 round
// keys: 11, 13 or 15 for 16, 24 or 32 byte keys.
func ExpandKey(key []byte) ([]RoundKey, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}
	return expandKey(key), nil
}

// expandKey assumes a valid key length.
func expandKey(key []byte) []RoundKey {
	nk := len(key) / 4
	nr := rounds(nk)
	w := make([]uint32, 4*(nr+1))

	for i := 0; i < nk; i++ {
		w[i] = bits.BytesToUint32(key[4*i:])
	}
	for i := nk; i < len(w); i++ {
		t := w[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t)) ^ uint32(rcon[i/nk])<<24
		case nk == 8 && i%nk == 4:
			// 256-bit keys substitute once more halfway through each group.
			t = subWord(t)
		}
		w[i] = w[i-nk] ^ t
	}

	rk := make([]RoundKey, nr+1)
	for r := range rk {
		for c := 0; c < 4; c++ {
			copy(rk[r][4*c:], bits.Uint32ToBytes(w[4*r+c]))
		}
	}
	return rk
}

func rotWord(w uint32) uint32 {
	return bits.RotateWordLeft(w, 1)
}

func subWord(w uint32) uint32 {
	return uint32(sbox0[w>>24])<<24 |
		uint32(sbox0[w>>16&0xff])<<16 |
		uint32(sbox0[w>>8&0xff])<<8 |
		uint32(sbox0[w&0xff])
}
