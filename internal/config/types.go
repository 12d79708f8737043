// Package config provides the vmctl configuration file: its types, defaults,
// parsing, validation and location.
package config

// Config is the vmctl configuration, stored at
// ~/.config/vmctl/config.yaml.
type Config struct {
	VMRun    VMRunConfig         `yaml:"vmrun,omitempty"`
	Defaults DefaultsConfig      `yaml:"defaults,omitempty"`
	VMs      map[string]VMConfig `yaml:"vms,omitempty"`
	Log      LogConfig           `yaml:"log,omitempty"`
}

// VMRunConfig locates the vmrun executable.
type VMRunConfig struct {
	// Path is the vmrun executable. A bare name is looked up in PATH.
	Path string `yaml:"path,omitempty"`
	// HostType is passed as "vmrun -T". Empty lets vmrun decide.
	HostType string `yaml:"host_type,omitempty"`
}

// DefaultsConfig holds values used when neither a flag nor a VM entry sets
// them.
type DefaultsConfig struct {
	GUI         string `yaml:"gui,omitempty"`
	Interpreter string `yaml:"interpreter,omitempty"`
	GuestUser   string `yaml:"guest_user,omitempty"`
}

// VMConfig is a named VM. Empty fields fall back to Defaults.
type VMConfig struct {
	VMX         string `yaml:"vmx"`
	GuestUser   string `yaml:"guest_user,omitempty"`
	Interpreter string `yaml:"interpreter,omitempty"`
}

// LogConfig controls the vmctl log files.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"`
	// AuditFile receives one line per VM operation. Empty disables it.
	AuditFile string `yaml:"audit_file,omitempty"`
}
