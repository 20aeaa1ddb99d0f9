package aes

import (
	"errors"
	"strconv"

	"github.com/drjonah/applications-of-aes/pkg/padding"
)

var (
	// ErrInvalidKeyLength is matched by every KeySizeError.
	ErrInvalidKeyLength = errors.New("aes: invalid key length")

	// ErrInvalidIVLength is matched by every IVSizeError.
	ErrInvalidIVLength = errors.New("aes: invalid IV length")

	// ErrInvalidBlockLength is returned when ciphertext is not a whole
	// number of blocks.
	ErrInvalidBlockLength = errors.New("aes: input not a multiple of the block size")

	// ErrInvalidPadding is returned by Open when the decrypted message does
	// not end in valid PKCS#7 padding. A wrong key or IV usually ends here.
	ErrInvalidPadding = padding.ErrInvalidPadding

	// ErrUnknownMode is returned for a Mode other than ECB or CBC.
	ErrUnknownMode = errors.New("aes: unknown mode of operation")
)

// KeySizeError is returned by NewCipher for a key that is not 16, 24 or 32 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

func (k KeySizeError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}

// IVSizeError is returned when a CBC IV is not BlockSize bytes long.
type IVSizeError int

func (v IVSizeError) Error() string {
	return "aes: invalid IV size " + strconv.Itoa(int(v)) + ", want " + strconv.Itoa(BlockSize)
}

func (v IVSizeError) Is(target error) bool {
	return target == ErrInvalidIVLength
}
