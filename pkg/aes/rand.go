package aes

import (
	"crypto/rand"
	"fmt"
)

// insecureDefaultIV is what CBC falls back to when no IV is given.
var insecureDefaultIV = [BlockSize]byte{
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
}

// InsecureDefaultIV returns a copy of the fixed IV used by Seal and Open
// when CBC is selected with a nil IV. Reusing one IV for several messages
// under the same key reveals which messages share a prefix, so this
// exists for tests and demos only. Use GenerateIV for real traffic.
func InsecureDefaultIV() []byte {
	iv := insecureDefaultIV
	return iv[:]
}

// GenerateKey returns size random bytes from crypto/rand. size must be
// 16, 24 or 32.
func GenerateKey(size int) ([]byte, error) {
	if size != 16 && size != 24 && size != 32 {
		return nil, KeySizeError(size)
	}
	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("cannot generate key: %w", err)
	}
	return key, nil
}

// GenerateIV returns a random block-sized IV from crypto/rand.
func GenerateIV() ([]byte, error) {
	iv := make([]byte, BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("cannot generate IV: %w", err)
	}
	return iv, nil
}
