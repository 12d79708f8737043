package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdg/vmctl/internal/config"
	"github.com/xdg/vmctl/internal/process"
	"github.com/xdg/vmctl/internal/version"
)

func TestRootCommand_Help(t *testing.T) {
	env := newCLIEnv(t, "")

	res := env.run("--help")
	require.NoError(t, res.err)
	for _, want := range []string{"vmctl", "vmrun", "Usage:", "Available Commands:", "run-script", "copy-to-guest", "copy-from-guest"} {
		assert.Contains(t, res.stdout, want)
	}
}

func TestRootCommand_Version(t *testing.T) {
	env := newCLIEnv(t, "")

	res := env.run("--version")
	require.NoError(t, res.err)
	assert.Equal(t, "vmctl "+version.String()+"\n", res.stdout)
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	env := newCLIEnv(t, "")

	res := env.run("reboot")
	assert.Error(t, res.err)
	assert.Contains(t, res.stderr, "Error: unknown command")
}

func TestExitCodeError(t *testing.T) {
	err := NewExitCodeError(42)
	assert.Equal(t, 42, err.Code)
	assert.EqualError(t, err, "exit code 42")

	var exitErr *ExitCodeError
	wrapped := errors.Join(errors.New("wrapper"), NewExitCodeError(5))
	require.ErrorAs(t, wrapped, &exitErr)
	assert.Equal(t, 5, exitErr.Code)
}

func TestExitStatus(t *testing.T) {
	assert.Equal(t, 0, exitStatus(nil))
	assert.Equal(t, 7, exitStatus(fmt.Errorf("run: %w", NewExitCodeError(7))))
	assert.Equal(t, 130, exitStatus(&process.InterruptedError{Program: "vmrun", Err: context.Canceled}))
	assert.Equal(t, 1, exitStatus(errors.New("boom")))
}

func TestExplain(t *testing.T) {
	t.Cleanup(func() { loadedConfig = nil })

	launch := fmt.Errorf("list running VMs: %w", &process.LaunchError{Program: "vmrun", Err: errors.New("not found")})
	assert.Contains(t, explain(launch).Error(), "vmrun could not be started")
	assert.ErrorIs(t, explain(launch), process.ErrLaunch)

	unknown := fmt.Errorf("%w %q", config.ErrUnknownVM, "x")
	loadedConfig = config.DefaultConfig()
	assert.Contains(t, explain(unknown).Error(), "no VMs are configured")

	loadedConfig.VMs = map[string]config.VMConfig{"b": {VMX: "/b.vmx"}, "a": {VMX: "/a.vmx"}}
	assert.Contains(t, explain(unknown).Error(), "configured VMs: a, b")

	plain := errors.New("plain")
	assert.Same(t, plain, explain(plain))
}
