// Package pathutil resolves user-supplied paths and XDG base directories.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other forms, including "~user", are returned unchanged, as is the path when
// the home directory is unknown.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// Resolve expands a leading ~ and makes path absolute and clean. An empty
// path stays empty.
func Resolve(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}

// XDGDir returns $envVar/app when envVar names an absolute directory, and
// ~/fallback/app otherwise. Relative values are ignored, as XDG requires.
func XDGDir(envVar, fallback, app string) string {
	if dir := os.Getenv(envVar); dir != "" && filepath.IsAbs(dir) {
		return filepath.Join(dir, app)
	}
	return filepath.Join(ExpandHome("~/"+fallback), app)
}
