package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xdg/vmctl/internal/pathutil"
)

// Dir returns the vmctl configuration directory: $XDG_CONFIG_HOME/vmctl, or
// ~/.config/vmctl when XDG_CONFIG_HOME is unset.
func Dir() string {
	return pathutil.XDGDir("XDG_CONFIG_HOME", ".config", "vmctl")
}

// DefaultPath returns the configuration file used when --config is not
// given: Dir()/config.yaml.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// ensureParentDir creates the directory holding path with user-only
// permissions.
func ensureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}
