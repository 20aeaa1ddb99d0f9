// Package gf implements the byte arithmetic of GF(2^8) under the AES
// reducing polynomial x^8 + x^4 + x^3 + x + 1.
package gf

// Poly is the AES reducing polynomial, 0x11b.
const Poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0

// Add adds a and b. Addition and subtraction are both XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Xtime multiplies a by x, reducing when bit 7 overflows.
func Xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ byte(Poly&0xff)
	}
	return a << 1
}

// Mul multiplies a and b using the shift-and-add (peasant) method.
func Mul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		a = Xtime(a)
		b >>= 1
	}
	return p
}
