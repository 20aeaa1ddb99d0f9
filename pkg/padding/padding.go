// Package padding implements PKCS#7 padding (RFC 5652, section 6.3).
package padding

import "errors"

// ErrInvalidPadding is returned when the trailing bytes of a message
// do not form valid PKCS#7 padding for the block size.
var ErrInvalidPadding = errors.New("padding: invalid PKCS#7 padding")

// ErrInvalidBlockSize is returned for block sizes outside [1, 255].
var ErrInvalidBlockSize = errors.New("padding: invalid block size")

// Pad returns data extended to a multiple of blockSize. Every added byte
// holds the number of bytes added. Input that is already aligned gets a
// whole block of padding, so the result is always longer than data.
// The returned slice never aliases data.
func Pad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, ErrInvalidBlockSize
	}
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out, nil
}

// Unpad strips PKCS#7 padding and returns the message. data must be a
// non-empty multiple of blockSize, its last byte n must be in
// [1, blockSize], and the last n bytes must all equal n. The returned
// slice aliases data.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, ErrInvalidBlockSize
	}
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
