// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Check that S-boxes are inverses of each other.
func TestSboxes(t *testing.T) {
	for i := 0; i < 256; i++ {
		if j := sbox0[sbox1[i]]; j != byte(i) {
			t.Errorf("sbox0[sbox1[%#x]] = %#x", i, j)
		}
		if j := sbox1[sbox0[i]]; j != byte(i) {
			t.Errorf("sbox1[sbox0[%#x]] = %#x", i, j)
		}
	}
}

// FIPS-197 section 5.1.1 gives these spot values.
func TestSboxValues(t *testing.T) {
	tests := []struct {
		in, out byte
	}{
		{0x00, 0x63},
		{0x53, 0xed},
		{0x01, 0x7c},
		{0xff, 0x16},
	}
	for _, tt := range tests {
		if got := sbox0[tt.in]; got != tt.out {
			t.Errorf("sbox0[%#x] = %#x, want %#x", tt.in, got, tt.out)
		}
	}
}

// Appendix B, C of FIPS 197: Cipher examples, Example vectors.
type CryptTest struct {
	key []byte
	in  []byte
	out []byte
}

var encryptTests = []CryptTest{
	{
		// Appendix B.
		[]byte{0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6, 0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c},
		[]byte{0x32, 0x43, 0xf6, 0xa8, 0x88, 0x5a, 0x30, 0x8d, 0x31, 0x31, 0x98, 0xa2, 0xe0, 0x37, 0x07, 0x34},
		[]byte{0x39, 0x25, 0x84, 0x1d, 0x02, 0xdc, 0x09, 0xfb, 0xdc, 0x11, 0x85, 0x97, 0x19, 0x6a, 0x0b, 0x32},
	},
	{
		// Appendix C.1.  AES-128
		[]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f},
		[]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
		[]byte{0x69, 0xc4, 0xe0, 0xd8, 0x6a, 0x7b, 0x04, 0x30, 0xd8, 0xcd, 0xb7, 0x80, 0x70, 0xb4, 0xc5, 0x5a},
	},
	{
		// Appendix C.2.  AES-192
		[]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
			0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
		},
		[]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
		[]byte{0xdd, 0xa9, 0x7c, 0xa4, 0x86, 0x4c, 0xdf, 0xe0, 0x6e, 0xaf, 0x70, 0xa0, 0xec, 0x0d, 0x71, 0x91},
	},
	{
		// Appendix C.3.  AES-256
		[]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
			0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,
		},
		[]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
		[]byte{0x8e, 0xa2, 0xb7, 0xca, 0x51, 0x67, 0x45, 0xbf, 0xea, 0xfc, 0x49, 0x90, 0x4b, 0x49, 0x60, 0x89},
	},
}

// Test Cipher Encrypt method against FIPS 197 examples.
func TestCipherEncrypt(t *testing.T) {
	for i, tt := range encryptTests {
		c, err := NewCipher(tt.key)
		if err != nil {
			t.Errorf("NewCipher(%d bytes) = %s", len(tt.key), err)
			continue
		}
		out := make([]byte, len(tt.in))
		c.Encrypt(out, tt.in)
		for j, v := range out {
			if v != tt.out[j] {
				t.Errorf("Cipher.Encrypt %d: out[%d] = %#x, want %#x", i, j, v, tt.out[j])
				break
			}
		}
	}
}

// Test Cipher Decrypt method against FIPS 197 examples.
func TestCipherDecrypt(t *testing.T) {
	for i, tt := range encryptTests {
		c, err := NewCipher(tt.key)
		if err != nil {
			t.Errorf("NewCipher(%d bytes) = %s", len(tt.key), err)
			continue
		}
		plain := make([]byte, len(tt.in))
		c.Decrypt(plain, tt.out)
		for j, v := range plain {
			if v != tt.in[j] {
				t.Errorf("Cipher.Decrypt %d: plain[%d] = %#x, want %#x", i, j, v, tt.in[j])
				break
			}
		}
	}
}

func TestCipherInPlace(t *testing.T) {
	tt := encryptTests[1]
	c, err := NewCipher(tt.key)
	if err != nil {
		t.Fatal(err)
	}
	buf := append([]byte(nil), tt.in...)
	c.Encrypt(buf, buf)
	if !bytes.Equal(buf, tt.out) {
		t.Fatalf("in-place Encrypt = %x, want %x", buf, tt.out)
	}
	c.Decrypt(buf, buf)
	if !bytes.Equal(buf, tt.in) {
		t.Fatalf("in-place Decrypt = %x, want %x", buf, tt.in)
	}
}

func TestRounds(t *testing.T) {
	tests := []struct {
		keyLen, rounds int
	}{
		{16, 10},
		{24, 12},
		{32, 14},
	}
	for _, tt := range tests {
		c, err := NewCipher(make([]byte, tt.keyLen))
		if err != nil {
			t.Fatalf("NewCipher(%d bytes) = %v", tt.keyLen, err)
		}
		if c.Rounds() != tt.rounds {
			t.Errorf("%d-byte key: %d rounds, want %d", tt.keyLen, c.Rounds(), tt.rounds)
		}
		if n := len(c.RoundKeys()); n != tt.rounds+1 {
			t.Errorf("%d-byte key: %d round keys, want %d", tt.keyLen, n, tt.rounds+1)
		}
	}
}

func TestZeroCipher(t *testing.T) {
	var c Cipher
	if n := c.Rounds(); n != 0 {
		t.Errorf("zero Cipher: %d rounds, want 0", n)
	}
	if n := len(c.RoundKeys()); n != 0 {
		t.Errorf("zero Cipher: %d round keys, want 0", n)
	}
	buf := make([]byte, BlockSize)
	mustPanic(t, "aes: cipher not initialized", func() { c.Encrypt(buf, buf) })
	mustPanic(t, "aes: cipher not initialized", func() { c.Decrypt(buf, buf) })
}

func TestInvalidKeySize(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 23, 25, 31, 33, 64} {
		_, err := NewCipher(make([]byte, n))
		if !errors.Is(err, ErrInvalidKeyLength) {
			t.Errorf("NewCipher(%d bytes): expected ErrInvalidKeyLength, got %v", n, err)
		}
		var kse KeySizeError
		if !errors.As(err, &kse) || int(kse) != n {
			t.Errorf("NewCipher(%d bytes): expected KeySizeError(%d), got %v", n, n, err)
		}
	}
	if err := IVSizeError(8); !errors.Is(err, ErrInvalidIVLength) || errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("IVSizeError(8) matches the wrong sentinel: %v", err)
	}
}

func TestRoundKeysIsACopy(t *testing.T) {
	c, err := NewCipher(encryptTests[1].key)
	if err != nil {
		t.Fatal(err)
	}
	rk := c.RoundKeys()
	rk[0][0] ^= 0xff
	out := make([]byte, BlockSize)
	c.Encrypt(out, encryptTests[1].in)
	if !bytes.Equal(out, encryptTests[1].out) {
		t.Fatalf("mutating RoundKeys() changed the cipher")
	}
}

// Test short input/output.
func TestShortBlocks(t *testing.T) {
	bytes := func(n int) []byte { return make([]byte, n) }

	c, _ := NewCipher(bytes(16))

	mustPanic(t, "aes: input not full block", func() { c.Encrypt(bytes(1), bytes(1)) })
	mustPanic(t, "aes: input not full block", func() { c.Decrypt(bytes(1), bytes(1)) })
	mustPanic(t, "aes: input not full block", func() { c.Encrypt(bytes(100), bytes(1)) })
	mustPanic(t, "aes: input not full block", func() { c.Decrypt(bytes(100), bytes(1)) })
	mustPanic(t, "aes: output not full block", func() { c.Encrypt(bytes(1), bytes(100)) })
	mustPanic(t, "aes: output not full block", func() { c.Decrypt(bytes(1), bytes(100)) })
}

func TestOverlappingBuffers(t *testing.T) {
	c, _ := NewCipher(make([]byte, 16))
	buf := make([]byte, 2*BlockSize)
	mustPanic(t, "aes: invalid buffer overlap", func() { c.Encrypt(buf[1:], buf) })
	mustPanic(t, "aes: invalid buffer overlap", func() { c.Decrypt(buf[1:], buf) })
}

func mustPanic(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		err := recover()
		if err == nil {
			t.Errorf("function did not panic, wanted %q", msg)
		} else if err != msg {
			t.Errorf("got panic %q, wanted %q", err, msg)
		}
	}()
	f()
}

func BenchmarkEncrypt(b *testing.B) {
	tt := encryptTests[0]
	c, err := NewCipher(tt.key)
	if err != nil {
		b.Fatal("NewCipher:", err)
	}
	out := make([]byte, len(tt.in))
	b.SetBytes(int64(len(out)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encrypt(out, tt.in)
	}
}

func BenchmarkDecrypt(b *testing.B) {
	tt := encryptTests[0]
	c, err := NewCipher(tt.key)
	if err != nil {
		b.Fatal("NewCipher:", err)
	}
	out := make([]byte, len(tt.out))
	b.SetBytes(int64(len(out)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Decrypt(out, tt.out)
	}
}

func BenchmarkExpand(b *testing.B) {
	tt := encryptTests[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		expandKey(tt.key)
	}
}
