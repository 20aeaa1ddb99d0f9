package fs

import (
	"fmt"

	"github.com/spf13/afero"
)

const (
	OsType  = "os"
	MemType = "mem"
)

var supportedTypes = []string{OsType, MemType}

// GetFs returns the filesystem settings and vector files are read from.
// "mem" gives an empty in-memory filesystem, useful for tests and for
// callers that build their settings in code.
func GetFs(fs string) (afero.Fs, error) {
	switch fs {
	case OsType:
		return afero.NewOsFs(), nil
	case MemType:
		return afero.NewMemMapFs(), nil
	}
	return nil, fmt.Errorf("unknown filesystem type provided: %s (supported types: %v)", fs, supportedTypes)
}

// ReadOnly wraps fs so that nothing read through it can be modified.
func ReadOnly(fs afero.Fs) afero.Fs {
	return afero.NewReadOnlyFs(fs)
}
