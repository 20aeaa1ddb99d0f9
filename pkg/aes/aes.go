package aes

import (
	"crypto/cipher"
	"fmt"
	"strings"

	"github.com/drjonah/applications-of-aes/pkg/padding"
)

// Mode selects how blocks are chained.
type Mode int

const (
	ECB Mode = iota
	CBC
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	default:
		return "Unknown"
	}
}

// ParseMode accepts "ECB" or "CBC" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ECB":
		return ECB, nil
	case "CBC":
		return CBC, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// blockMode builds a fresh BlockMode for one call, so CBC chaining state
// never outlives it. A nil IV in CBC mode selects InsecureDefaultIV.
func (c *Cipher) blockMode(mode Mode, iv []byte, encrypt bool) (cipher.BlockMode, error) {
	switch mode {
	case ECB:
		if encrypt {
			return NewECBEncrypter(c), nil
		}
		return NewECBDecrypter(c), nil
	case CBC:
		if iv == nil {
			iv = insecureDefaultIV[:]
		}
		if len(iv) != BlockSize {
			return nil, IVSizeError(len(iv))
		}
		if encrypt {
			return NewCBCEncrypter(c, iv), nil
		}
		return NewCBCDecrypter(c, iv), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
}

// EncryptBlocks encrypts src, a whole number of blocks, into dst under
// mode. dst must be at least as long as src.
func (c *Cipher) EncryptBlocks(mode Mode, dst, src, iv []byte) error {
	return c.cryptBlocks(mode, dst, src, iv, true)
}

// DecryptBlocks is the inverse of EncryptBlocks. No padding is removed.
func (c *Cipher) DecryptBlocks(mode Mode, dst, src, iv []byte) error {
	return c.cryptBlocks(mode, dst, src, iv, false)
}

func (c *Cipher) cryptBlocks(mode Mode, dst, src, iv []byte, encrypt bool) error {
	if len(src)%BlockSize != 0 {
		return ErrInvalidBlockLength
	}
	if len(dst) < len(src) {
		return fmt.Errorf("aes: output buffer too small: %d bytes (need at least %d)", len(dst), len(src))
	}
	bm, err := c.blockMode(mode, iv, encrypt)
	if err != nil {
		return err
	}
	bm.CryptBlocks(dst[:len(src)], src)
	return nil
}

// Seal pads plaintext with PKCS#7 and encrypts it under mode. The result
// is always 1 to 16 bytes longer than plaintext. iv is ignored for ECB.
func (c *Cipher) Seal(plaintext []byte, mode Mode, iv []byte) ([]byte, error) {
	defer c.begin(PhaseEncrypt)()

	bm, err := c.blockMode(mode, iv, true)
	if err != nil {
		return nil, err
	}
	out, err := padding.Pad(plaintext, BlockSize)
	if err != nil {
		return nil, err
	}
	bm.CryptBlocks(out, out)
	return out, nil
}

// Open decrypts ciphertext under mode and strips its PKCS#7 padding.
// ciphertext must be a whole number of blocks. A wrong key or IV is
// reported as ErrInvalidPadding in most cases; the check cannot catch
// every such mistake.
func (c *Cipher) Open(ciphertext []byte, mode Mode, iv []byte) ([]byte, error) {
	defer c.begin(PhaseDecrypt)()

	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidBlockLength, len(ciphertext))
	}
	bm, err := c.blockMode(mode, iv, false)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	bm.CryptBlocks(out, ciphertext)
	plaintext, err := padding.Unpad(out, BlockSize)
	if err != nil {
		return nil, fmt.Errorf("aes: %s decrypt: %w", mode, err)
	}
	return plaintext, nil
}
