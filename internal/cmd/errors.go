package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xdg/vmctl/internal/config"
	"github.com/xdg/vmctl/internal/process"
)

// ExitCodeError makes vmctl exit with Code without printing anything. It
// carries a guest script's exit status out of run-script.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError returns an ExitCodeError for code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// explain adds a hint to errors a user can act on.
func explain(err error) error {
	switch {
	case errors.Is(err, process.ErrLaunch):
		return fmt.Errorf("%w\nvmrun could not be started; install VMware Workstation or Fusion, or set vmrun.path in %s or pass --vmrun", err, configPathForDisplay())
	case errors.Is(err, process.ErrInterrupted):
		return fmt.Errorf("interrupted; the vmrun process was killed: %w", err)
	case errors.Is(err, config.ErrUnknownVM):
		if loadedConfig == nil || len(loadedConfig.VMs) == 0 {
			return fmt.Errorf("%w\nno VMs are configured; pass a .vmx path or add one under vms in %s", err, configPathForDisplay())
		}
		return fmt.Errorf("%w\nconfigured VMs: %s", err, strings.Join(loadedConfig.VMNames(), ", "))
	}
	return err
}

func configPathForDisplay() string {
	if configFile != "" {
		return configFile
	}
	return config.DefaultPath()
}
