package config

import "github.com/xdg/vmctl/internal/clog"

// DefaultConfig returns a Config with all defaults populated. No VMs are
// defined by default. The log file is clog.DefaultLogPath, which follows
// $XDG_STATE_HOME.
func DefaultConfig() *Config {
	return &Config{
		VMRun: VMRunConfig{
			Path: "vmrun",
		},
		Defaults: DefaultsConfig{
			GUI:         "nogui",
			Interpreter: "/bin/sh",
			GuestUser:   "root",
		},
		Log: LogConfig{
			File:  clog.DefaultLogPath(),
			Level: "info",
		},
	}
}

// applyDefaults fills empty fields of cfg from DefaultConfig. VM entries are
// left alone; they fall back to cfg.Defaults when resolved.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.VMRun.Path == "" {
		cfg.VMRun.Path = def.VMRun.Path
	}
	if cfg.Defaults.GUI == "" {
		cfg.Defaults.GUI = def.Defaults.GUI
	}
	if cfg.Defaults.Interpreter == "" {
		cfg.Defaults.Interpreter = def.Defaults.Interpreter
	}
	if cfg.Defaults.GuestUser == "" {
		cfg.Defaults.GuestUser = def.Defaults.GuestUser
	}
	if cfg.Log.File == "" {
		cfg.Log.File = def.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}

// defaultConfigTemplate is written by WriteDefaultConfig. With defaults
// applied it parses to DefaultConfig().
const defaultConfigTemplate = `# vmctl configuration
#
# Guest passwords are never read from this file. Pass --password, set
# VMCTL_GUEST_PASSWORD, or answer the prompt.

vmrun:
  # vmrun executable; a bare name is looked up in PATH.
  path: vmrun
  # Host type passed as "vmrun -T": ws, fusion, player, server, server1, esx, vc.
  # Leave unset to let vmrun decide.
  # host_type: ws

defaults:
  gui: nogui
  interpreter: /bin/sh
  guest_user: root

# Named VMs, usable wherever a .vmx path is accepted.
# vms:
#   build:
#     vmx: ~/vms/build/build.vmx
#     guest_user: builder
#     interpreter: /bin/bash

log:
  # Defaults to $XDG_STATE_HOME/vmctl/vmctl.log, or
  # ~/.local/state/vmctl/vmctl.log when XDG_STATE_HOME is unset.
  # file: ~/.local/state/vmctl/vmctl.log
  level: info
  # One line per VM operation (start, stop, run-script, copies).
  # audit_file: ~/.local/state/vmctl/audit.log
`
