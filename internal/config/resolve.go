package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xdg/vmctl/internal/pathutil"
)

// ErrUnknownVM is returned by ResolveVM for a name that is neither a
// configured VM nor a path.
var ErrUnknownVM = errors.New("unknown VM")

// Target is a VM resolved from the command line, with defaults applied.
type Target struct {
	// Name is the configured name, or empty when a path was given.
	Name        string
	VMX         string
	GuestUser   string
	Interpreter string
}

// ResolveVM looks nameOrPath up in cfg.VMs and otherwise treats it as a
// .vmx path. The returned VMX is absolute. Unset guest user and interpreter
// fall back to cfg.Defaults.
func (cfg *Config) ResolveVM(nameOrPath string) (Target, error) {
	if vm, ok := cfg.VMs[nameOrPath]; ok {
		vmx, err := pathutil.Resolve(vm.VMX)
		if err != nil {
			return Target{}, err
		}
		return Target{
			Name:        nameOrPath,
			VMX:         vmx,
			GuestUser:   firstNonEmpty(vm.GuestUser, cfg.Defaults.GuestUser),
			Interpreter: firstNonEmpty(vm.Interpreter, cfg.Defaults.Interpreter),
		}, nil
	}

	if !looksLikePath(nameOrPath) {
		return Target{}, fmt.Errorf("%w %q: not in config and not a .vmx path", ErrUnknownVM, nameOrPath)
	}
	vmx, err := pathutil.Resolve(nameOrPath)
	if err != nil {
		return Target{}, err
	}
	return Target{
		VMX:         vmx,
		GuestUser:   cfg.Defaults.GuestUser,
		Interpreter: cfg.Defaults.Interpreter,
	}, nil
}

// NameForVMX returns the configured name whose descriptor is vmx, or "" if
// there is none. When several names share a descriptor the first in sorted
// order wins.
func (cfg *Config) NameForVMX(vmx string) string {
	want := filepath.Clean(vmx)
	for _, name := range cfg.VMNames() {
		path, err := pathutil.Resolve(cfg.VMs[name].VMX)
		if err == nil && path == want {
			return name
		}
	}
	return ""
}

// VMNames returns the configured VM names in sorted order.
func (cfg *Config) VMNames() []string {
	names := make([]string, 0, len(cfg.VMs))
	for name := range cfg.VMs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func looksLikePath(s string) bool {
	return strings.HasSuffix(strings.ToLower(s), ".vmx") ||
		strings.ContainsRune(s, '/') ||
		strings.ContainsRune(s, os.PathSeparator) ||
		strings.HasPrefix(s, "~")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
