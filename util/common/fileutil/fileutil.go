package fileutil

import (
	"io"
	"os"

	"github.com/muleops/exchange-cli/util/common/errors"
)

// EnsureDir creates dir and any missing parents. It is safe to call from
// concurrent downloads: an already existing directory is not an error.
func EnsureDir(dir string) error {
	if dir == "" {
		return errors.NewValidationError("dir", "directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewFileError(dir, "mkdir", err)
	}
	return nil
}

// WriteStream copies r into path, creating or truncating the target file.
// Returns the number of bytes written.
func WriteStream(path string, r io.Reader) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.NewFileError(path, "create", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return written, errors.NewFileError(path, "write", err)
	}
	return written, nil
}
