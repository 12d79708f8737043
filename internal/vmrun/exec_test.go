package vmrun

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdg/vmctl/internal/process"
	"github.com/xdg/vmctl/internal/testutil"
)

// newStubVMRun returns a VMRun whose executable is the test binary acting as
// a fake vmrun.
func newStubVMRun(t *testing.T, stub testutil.Stub) *VMRun {
	t.Helper()
	runner := &process.ExecRunner{Env: stub.Env(), WaitDelay: process.DefaultWaitDelay}
	return New(testutil.StubExecutable(t), WithRunner(runner))
}

func TestExec_RunScriptPassesScriptVerbatim(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.json")
	v := newStubVMRun(t, testutil.Stub{ExitCode: 3, ArgsFile: argsFile})

	script := "echo \"$HOME\" 'x y'\nexit 3; `true` | cat > /dev/null"
	code, err := v.RunScriptInGuest(context.Background(), "/vms/a.vmx", testCreds, "/bin/bash", script)
	require.NoError(t, err)
	assert.Equal(t, 3, code)

	assert.Equal(t,
		[]string{"-gu", "builder", "-gp", "pa ss", "runScriptInGuest", "/vms/a.vmx", "/bin/bash", script},
		testutil.ReadStubArgs(t, argsFile))
}

func TestExec_ListParsesRealOutput(t *testing.T) {
	v := newStubVMRun(t, testutil.Stub{Stdout: "Total running VMs: 2\n/vms/a.vmx\n/vms/b c.vmx\n"})

	got, err := v.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/vms/a.vmx", "/vms/b c.vmx"}, got)
}

func TestExec_FailureCarriesExactStreams(t *testing.T) {
	v := newStubVMRun(t, testutil.Stub{
		Stdout:   "Error: Cannot open VM: /vms/missing.vmx\n",
		Stderr:   "warn: something\n",
		ExitCode: 255,
	})

	err := v.Start(context.Background(), "/vms/missing.vmx", GUIModeNoGUI)
	require.ErrorIs(t, err, process.ErrExecution)

	var execErr *process.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 255, execErr.ExitCode)
	assert.Equal(t, []byte("Error: Cannot open VM: /vms/missing.vmx\n"), execErr.Stdout)
	assert.Equal(t, []byte("warn: something\n"), execErr.Stderr)
}

func TestExec_PasswordNotInError(t *testing.T) {
	v := newStubVMRun(t, testutil.Stub{ExitCode: 1})

	err := v.CopyFileFromHostToGuest(context.Background(), "/vms/a.vmx", testCreds, "/tmp/a", "/tmp/b")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "pa ss")
	assert.Contains(t, err.Error(), "-gp ***")
}

func TestExec_StopUnpoweredVMIsNotAnError(t *testing.T) {
	v := newStubVMRun(t, testutil.Stub{Stdout: "Error: The virtual machine is not powered on: /vms/a.vmx\n", ExitCode: 255})

	res, err := v.Stop(context.Background(), "/vms/a.vmx")
	require.NoError(t, err)
	assert.Equal(t, 255, res.ExitCode)
	assert.False(t, res.Success())
}

func TestExec_CancelInterruptsRunningVMRun(t *testing.T) {
	v := newStubVMRun(t, testutil.Stub{Sleep: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := v.RunScriptInGuest(ctx, "/vms/a.vmx", testCreds, "/bin/sh", "sleep 600")
	assert.ErrorIs(t, err, process.ErrInterrupted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 30*time.Second)
}

func TestExec_MissingExecutable(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "no-such-vmrun"))

	_, err := v.List(context.Background())
	assert.ErrorIs(t, err, process.ErrLaunch)
}
