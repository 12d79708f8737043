package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/vmctl/internal/clog"
	"github.com/xdg/vmctl/internal/pathutil"
)

// LoadConfig loads the configuration file at path, or at DefaultPath() when
// path is empty. A missing file yields DefaultConfig(). Empty fields are
// filled from DefaultConfig() and ~ is expanded in path fields.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	clog.Debug("config: loading %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			clog.Debug("config: %s not found, using defaults", path)
			cfg := DefaultConfig()
			expandPaths(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	applyDefaults(cfg)
	expandPaths(cfg)
	return cfg, nil
}

// expandPaths expands ~ in every path field. VM descriptors are resolved
// later, by ResolveVM.
func expandPaths(cfg *Config) {
	cfg.VMRun.Path = pathutil.ExpandHome(cfg.VMRun.Path)
	cfg.Log.File = pathutil.ExpandHome(cfg.Log.File)
	cfg.Log.AuditFile = pathutil.ExpandHome(cfg.Log.AuditFile)
}
