// Package config loads the encryption settings shared by the programs
// built on pkg/aes.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/drjonah/applications-of-aes/pkg/aes"
)

// Settings mirror the settings file:
//
//	{"Key": "ABCDEFGHIJKLMNOP", "CBC": true, "IV": "0123456789abcdef"}
//
// Key and IV are taken as their raw UTF-8 bytes. An empty IV with CBC
// selects aes.InsecureDefaultIV.
type Settings struct {
	Key string `json:"Key"`
	CBC bool   `json:"CBC"`
	IV  string `json:"IV,omitempty"`
}

// Load reads and validates the settings file at path.
func Load(fs afero.Fs, path string) (*Settings, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read settings %s: %w", path, err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cannot parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return &s, nil
}

// Save writes s to path as indented JSON.
func Save(fs afero.Fs, path string, s *Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, append(data, '\n'), 0600)
}

// Validate checks the key and IV lengths without building a cipher.
func (s *Settings) Validate() error {
	switch n := len(s.Key); n {
	case 16, 24, 32:
	default:
		return aes.KeySizeError(n)
	}
	if s.CBC && s.IV != "" && len(s.IV) != aes.BlockSize {
		return aes.IVSizeError(len(s.IV))
	}
	return nil
}

// Mode returns CBC when the settings ask for chaining, ECB otherwise.
func (s *Settings) Mode() aes.Mode {
	if s.CBC {
		return aes.CBC
	}
	return aes.ECB
}

// IVBytes returns the IV, or nil when none is set.
func (s *Settings) IVBytes() []byte {
	if s.IV == "" {
		return nil
	}
	return []byte(s.IV)
}

// Cipher builds the cipher described by s.
func (s *Settings) Cipher(opts ...aes.Option) (*aes.Cipher, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return aes.NewCipher([]byte(s.Key), opts...)
}
