package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xdg/vmctl/internal/clog"
	"github.com/xdg/vmctl/internal/vmrun"
)

// validHostTypes are the values vmrun accepts for -T.
var validHostTypes = map[string]bool{
	"ws":      true,
	"fusion":  true,
	"player":  true,
	"server":  true,
	"server1": true,
	"esx":     true,
	"vc":      true,
}

// ValidateConfig checks the values of a parsed Config:
//   - vmrun.host_type is a known vmrun host type (if non-empty)
//   - defaults.gui is gui or nogui (if non-empty)
//   - every vms entry has a non-blank name and a vmx path
//   - log.level is one of debug, info, warn, error (if non-empty)
//
// The returned error names the offending field.
func ValidateConfig(cfg *Config) error {
	if cfg.VMRun.HostType != "" && !validHostTypes[cfg.VMRun.HostType] {
		return fmt.Errorf("vmrun.host_type: invalid value %q, must be one of: ws, fusion, player, server, server1, esx, vc", cfg.VMRun.HostType)
	}

	if cfg.Defaults.GUI != "" {
		if _, err := vmrun.ParseGUIMode(cfg.Defaults.GUI); err != nil {
			return fmt.Errorf("defaults.gui: %w", err)
		}
	}

	for _, name := range cfg.VMNames() {
		if strings.TrimSpace(name) == "" {
			return errors.New("vms: VM name must not be blank")
		}
		if cfg.VMs[name].VMX == "" {
			return fmt.Errorf("vms.%s.vmx: required", name)
		}
	}

	if cfg.Log.Level != "" {
		if _, ok := clog.ParseLevel(cfg.Log.Level); !ok {
			return fmt.Errorf("log.level: invalid value %q, must be one of: debug, info, warn, error", cfg.Log.Level)
		}
	}

	return nil
}
