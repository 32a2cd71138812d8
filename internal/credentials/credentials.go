package credentials

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/muleops/exchange-cli/util/common/errors"
)

const (
	configDirName  = ".anypoint"
	configFileName = "credentials"
	defaultSection = "default"
)

// Credentials holds the persisted registry login.
type Credentials struct {
	Token   string `ini:"token"`
	BaseURL string `ini:"base_url"`
	WebURL  string `ini:"web_url"`
}

// Path returns the credentials file location, creating the parent
// directory when needed.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(homeDir, configDirName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", errors.NewFileError(dir, "mkdir", err)
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the credentials file at path. A missing file yields
// ErrNotFound.
func Load(path string) (*Credentials, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.NewFileError(path, "stat", err)
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, errors.NewFileError(path, "parse", err)
	}

	creds := &Credentials{}
	if err := file.Section(defaultSection).MapTo(creds); err != nil {
		return nil, errors.NewFileError(path, "map", err)
	}
	return creds, nil
}

// Save writes the credentials file at path with owner-only permissions.
func Save(path string, creds *Credentials) error {
	file := ini.Empty()
	if err := file.Section(defaultSection).ReflectFrom(creds); err != nil {
		return errors.NewFileError(path, "encode", err)
	}
	if err := file.SaveTo(path); err != nil {
		return errors.NewFileError(path, "write", err)
	}
	return os.Chmod(path, 0600)
}

// Delete removes the credentials file. Deleting a missing file is a
// no-op.
func Delete(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.NewFileError(path, "remove", err)
	}
	return nil
}
