// Package kat reads known-answer test vectors in the NIST CAVP response
// (.rsp) layout:
//
//	# comment
//	[ENCRYPT]
//
//	COUNT = 0
//	KEY = 2b7e151628aed2a6abf7158809cf4f3c
//	IV = 000102030405060708090a0b0c0d0e0f
//	PLAINTEXT = 6bc1bee22e409f96e93d7e117393172a
//	CIPHERTEXT = 7649abac8119b246cee98e9b12e9197d
//
// A blank line ends a vector. Bracketed headers name the section the
// following vectors belong to.
package kat

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Vector is one COUNT block of a response file.
type Vector struct {
	// Section is the last bracketed header seen, without brackets.
	Section string
	Count   int

	Key        []byte
	IV         []byte
	Plaintext  []byte
	Ciphertext []byte

	// Line is where the vector starts in its file.
	Line int
}

var ErrMalformed = errors.New("kat: malformed response file")

// ReadFile parses the response file at path on fs.
func ReadFile(fs afero.Fs, path string) ([]Vector, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	vectors, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vectors, nil
}

// ReadDir parses every .rsp file directly under dir, keyed by file name.
func ReadDir(fs afero.Fs, dir string) (map[string][]Vector, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]Vector)
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".rsp") {
			continue
		}
		vectors, err := ReadFile(fs, dir+"/"+info.Name())
		if err != nil {
			return nil, err
		}
		out[info.Name()] = vectors
	}
	return out, nil
}

// Parse reads vectors from r until EOF.
func Parse(r io.Reader) ([]Vector, error) {
	var (
		vectors []Vector
		section string
		current *Vector
		lineNo  int
	)

	flush := func() {
		if current != nil {
			vectors = append(vectors, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
			continue
		case strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "["):
			flush()
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("%w: line %d: unterminated section %q", ErrMalformed, lineNo, line)
			}
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected NAME = VALUE, got %q", ErrMalformed, lineNo, line)
		}
		name = strings.ToUpper(strings.TrimSpace(name))
		value = strings.TrimSpace(value)

		if current == nil {
			current = &Vector{Section: section, Line: lineNo}
		}
		if err := current.set(name, value); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return vectors, nil
}

func (v *Vector) set(name, value string) error {
	if name == "COUNT" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cannot decode COUNT: %v", err)
		}
		v.Count = n
		return nil
	}

	var dst *[]byte
	switch name {
	case "KEY":
		dst = &v.Key
	case "IV":
		dst = &v.IV
	case "PLAINTEXT":
		dst = &v.Plaintext
	case "CIPHERTEXT":
		dst = &v.Ciphertext
	default:
		// Unknown fields are skipped.
		return nil
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return fmt.Errorf("cannot decode %s: %v", name, err)
	}
	*dst = b
	return nil
}
