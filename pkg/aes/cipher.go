// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"crypto/cipher"
)

// The AES block size in bytes.
const BlockSize = 16

// Phase names a stage of work reported to a Hook.
type Phase int

const (
	PhaseKeyExpansion Phase = iota
	PhaseEncrypt
	PhaseDecrypt
)

func (p Phase) String() string {
	switch p {
	case PhaseKeyExpansion:
		return "key_expansion"
	case PhaseEncrypt:
		return "encrypt"
	case PhaseDecrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// Hook is called when a phase starts. The returned function, if not nil,
// is called when the phase ends. Hooks may be called from several
// goroutines at once when a Cipher is shared.
type Hook func(Phase) (done func())

type options struct {
	hook Hook
}

// Option configures a Cipher.
type Option func(*options)

// WithHook installs h around key expansion and every Seal and Open call.
func WithHook(h Hook) Option {
	return func(o *options) {
		o.hook = h
	}
}

// A Cipher is an instance of AES using a particular key. Its round keys
// are fixed at construction and only read afterwards, so one Cipher can
// serve concurrent callers. A Cipher must be created with NewCipher.
type Cipher struct {
	rk   []RoundKey
	hook Hook
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key and returns a Cipher. The key must be 16, 24 or
// 32 bytes long to select AES-128, AES-192 or AES-256.
func NewCipher(key []byte, opts ...Option) (*Cipher, error) {
	if k := len(key); k != 16 && k != 24 && k != 32 {
		return nil, KeySizeError(k)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	c := &Cipher{hook: o.hook}
	done := c.begin(PhaseKeyExpansion)
	c.rk = expandKey(key)
	done()
	return c, nil
}

func (c *Cipher) begin(p Phase) func() {
	if c.hook == nil {
		return func() {}
	}
	if done := c.hook(p); done != nil {
		return done
	}
	return func() {}
}

func (c *Cipher) BlockSize() int { return BlockSize }

// Rounds returns 10, 12 or 14, or 0 for a Cipher not made by NewCipher.
func (c *Cipher) Rounds() int {
	if len(c.rk) == 0 {
		return 0
	}
	return len(c.rk) - 1
}

// RoundKeys returns a copy of the expanded key.
func (c *Cipher) RoundKeys() []RoundKey {
	rk := make([]RoundKey, len(c.rk))
	copy(rk, c.rk)
	return rk
}

// Encrypt encrypts the first block of src into dst.
// dst and src must overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(c.rk) == 0 {
		panic("aes: cipher not initialized")
	}
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	if inexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("aes: invalid buffer overlap")
	}
	var s state
	copy(s[:], src)
	c.encryptBlock(&s)
	copy(dst, s[:])
}

// Decrypt decrypts the first block of src into dst.
// dst and src must overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(c.rk) == 0 {
		panic("aes: cipher not initialized")
	}
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	if inexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("aes: invalid buffer overlap")
	}
	var s state
	copy(s[:], src)
	c.decryptBlock(&s)
	copy(dst, s[:])
}

func (c *Cipher) encryptBlock(s *state) {
	nr := len(c.rk) - 1
	s.addRoundKey(&c.rk[0])
	for r := 1; r < nr; r++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(&c.rk[r])
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(&c.rk[nr])
}

// decryptBlock applies the inverse transforms in exactly the reverse
// order of encryptBlock.
func (c *Cipher) decryptBlock(s *state) {
	nr := len(c.rk) - 1
	s.addRoundKey(&c.rk[nr])
	s.invShiftRows()
	s.invSubBytes()
	for r := nr - 1; r > 0; r-- {
		s.addRoundKey(&c.rk[r])
		s.invMixColumns()
		s.invShiftRows()
		s.invSubBytes()
	}
	s.addRoundKey(&c.rk[0])
}
