package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg/vmctl/internal/config"
	"github.com/xdg/vmctl/internal/process"
	"github.com/xdg/vmctl/internal/prompt"
	"github.com/xdg/vmctl/internal/vmrun"
)

// passwordEnv supplies the guest password when --password is not given.
const passwordEnv = "VMCTL_GUEST_PASSWORD"

// Seams replaced by tests.
var (
	newRunner = func() process.Runner { return process.NewExecRunner() }

	passwordReader prompt.PasswordReader = prompt.NewTerminalPasswordReader(os.Stdin, os.Stderr)
	confirmer      prompt.Confirmer      = prompt.NewStdinConfirmer(os.Stdin, os.Stderr)
	stdinIsTerminal                      = func() bool { return prompt.IsTerminal(os.Stdin) }
)

// newVMRun returns a VMRun configured from flags and the loaded config.
func newVMRun() *vmrun.VMRun {
	path := loadedConfig.VMRun.Path
	if vmrunPath != "" {
		path = vmrunPath
	}
	ht := loadedConfig.VMRun.HostType
	if hostType != "" {
		ht = hostType
	}
	return vmrun.New(path, vmrun.WithRunner(newRunner()), vmrun.WithHostType(ht))
}

// resolveTarget resolves a VM argument against the loaded config.
func resolveTarget(nameOrPath string) (config.Target, error) {
	return loadedConfig.ResolveVM(nameOrPath)
}

// displayName is how a target is shown to the user.
func displayName(t config.Target) string {
	if t.Name != "" {
		return t.Name
	}
	return t.VMX
}

// guestFlags are the credential flags shared by guest commands.
type guestFlags struct {
	user     string
	password string
}

func (g *guestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&g.user, "user", "u", "", "guest user (default from config)")
	cmd.Flags().StringVarP(&g.password, "password", "p", "", "guest password (default $"+passwordEnv+", else prompt)")
}

// credentials returns the guest account for t. The password comes from
// --password, then $VMCTL_GUEST_PASSWORD, then a hidden prompt.
func (g *guestFlags) credentials(cmd *cobra.Command, t config.Target) (vmrun.Credentials, error) {
	creds := vmrun.Credentials{Username: g.user, Password: g.password}
	if creds.Username == "" {
		creds.Username = t.GuestUser
	}
	if cmd.Flags().Changed("password") {
		return creds, nil
	}
	if pw, ok := os.LookupEnv(passwordEnv); ok {
		creds.Password = pw
		return creds, nil
	}

	pw, err := passwordReader.ReadPassword(fmt.Sprintf("Password for %s on %s: ", creds.Username, displayName(t)))
	if errors.Is(err, prompt.ErrNotTerminal) {
		return creds, fmt.Errorf("no guest password: pass --password, set %s, or run from a terminal", passwordEnv)
	}
	if err != nil {
		return creds, err
	}
	creds.Password = pw
	return creds, nil
}
