package bits

import (
	"encoding/binary"
	"math/bits"
)

// Uint32ToBytes converts an unsigned 32-bit word to a 4-byte
// slice. The order used is big endian, so the first byte of the
// slice is the most significant byte of the word.
func Uint32ToBytes(n uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, n)
	return b
}

// BytesToUint32 converts the first four bytes of b to an unsigned
// 32-bit word in big endian order.
func BytesToUint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// RotateWordLeft cyclically rotates w left by n bytes.
func RotateWordLeft(w uint32, n int) uint32 {
	return bits.RotateLeft32(w, 8*n)
}

// Xor writes a[i] ^ b[i] into dst for every i up to the shortest of
// the three slices, and returns the number of bytes written.
func Xor(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}

// HammingDistance returns the number of bit positions in which a and
// b differ. Both slices are expected to have the same length; extra
// bytes in the longer one are ignored.
func HammingDistance(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var d int
	for i := 0; i < n; i++ {
		d += bits.OnesCount8(a[i] ^ b[i])
	}
	return d
}
