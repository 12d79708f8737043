package config

import (
	"errors"
	"fmt"
	"os"
)

// WriteDefaultConfig writes the commented default configuration to path,
// or to DefaultPath() when path is empty. An existing file is left untouched
// and created is false. The file is written with 0600 permissions.
func WriteDefaultConfig(path string) (created bool, err error) {
	if path == "" {
		path = DefaultPath()
	}

	_, err = os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := ensureParentDir(path); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o600); err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}
	return true, nil
}
