// Package vmrun drives VMware's vmrun executable.
//
// Each method builds the argument vector for one vmrun subcommand, runs it as
// a single blocking subprocess and interprets the result. There is no session
// or connection: guest credentials are sent again on every call.
//
// Most operations treat a non-zero exit status as a failure and return a
// *process.ExecutionError holding vmrun's output. Stop and RunScriptInGuest
// do not, because their exit status is information for the caller: stop is
// best effort, and runScriptInGuest reports the script's own exit status.
package vmrun

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xdg/vmctl/internal/clog"
	"github.com/xdg/vmctl/internal/process"
)

// DefaultExecutable is the vmrun binary looked up in PATH when no path is
// configured.
const DefaultExecutable = "vmrun"

// VMRun runs vmrun subcommands. It holds no mutable state and is safe for
// concurrent use.
type VMRun struct {
	executable string
	hostType   string
	runner     process.Runner
}

// Option configures a VMRun.
type Option func(*VMRun)

// WithRunner replaces the process runner, e.g. with a fake in tests.
func WithRunner(r process.Runner) Option {
	return func(v *VMRun) {
		v.runner = r
	}
}

// WithHostType passes "-T hostType" (ws, fusion, player, ...) ahead of every
// subcommand. By default no -T flag is sent and vmrun picks the host type.
func WithHostType(hostType string) Option {
	return func(v *VMRun) {
		v.hostType = hostType
	}
}

// New returns a VMRun for the executable at the given path. A path containing
// a separator is made absolute; a bare name is looked up in PATH when run.
func New(executable string, opts ...Option) *VMRun {
	v := &VMRun{
		executable: resolveExecutable(executable),
		runner:     process.NewExecRunner(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func resolveExecutable(executable string) string {
	if executable == "" {
		return DefaultExecutable
	}
	if !strings.ContainsRune(executable, '/') && !strings.ContainsRune(executable, os.PathSeparator) {
		return executable
	}
	abs, err := filepath.Abs(executable)
	if err != nil {
		return executable
	}
	return abs
}

// Executable returns the vmrun path or name that is invoked.
func (v *VMRun) Executable() string {
	return v.executable
}

// Guest binds a VM and guest credentials for repeated guest operations.
func (v *VMRun) Guest(vmx string, creds Credentials) *Guest {
	return &Guest{vmrun: v, vmx: vmx, creds: creds}
}

// Start powers on the VM described by vmx.
//
// Runs: vmrun start <vmx> gui|nogui
func (v *VMRun) Start(ctx context.Context, vmx string, gui GUIMode) error {
	token, err := gui.CommandLineValue()
	if err != nil {
		return err
	}
	vmx, err = absHostPath(vmx)
	if err != nil {
		return err
	}
	return v.runChecked(ctx, "start", vmx, token)
}

// Stop asks the guest OS to shut down. The result is returned whatever the
// exit status; an error means vmrun could not be run at all.
//
// Runs: vmrun stop <vmx> soft
func (v *VMRun) Stop(ctx context.Context, vmx string) (process.Result, error) {
	vmx, err := absHostPath(vmx)
	if err != nil {
		return process.Result{}, err
	}
	res, err := v.run(ctx, "stop", vmx, "soft")
	if err != nil {
		return res, err
	}
	if !res.Success() {
		clog.Debug("vmrun: stop %s exited with status %d", vmx, res.ExitCode)
	}
	return res, nil
}

// List returns the descriptor paths of the running VMs, in vmrun's order.
//
// Runs: vmrun list
func (v *VMRun) List(ctx context.Context) ([]string, error) {
	res, err := v.run(ctx, "list")
	if err != nil {
		return nil, err
	}
	if _, err := res.ExplodeOnError(); err != nil {
		return nil, err
	}

	paths, err := parseList(res.Stdout)
	if err != nil {
		return nil, err
	}
	clog.Debug("vmrun: %d running VMs", len(paths))
	return paths, nil
}

// RunScriptInGuest runs scriptBody with the interpreter at interpreterPath
// inside the guest and returns vmrun's exit status, which reflects the
// script's. A non-zero status is not an error.
//
// Runs: vmrun -gu <user> -gp <pass> runScriptInGuest <vmx> <interpreter> <script>
func (v *VMRun) RunScriptInGuest(ctx context.Context, vmx string, creds Credentials, interpreterPath, scriptBody string) (int, error) {
	vmx, err := absHostPath(vmx)
	if err != nil {
		return 0, err
	}
	res, err := v.runGuest(ctx, creds, "runScriptInGuest", vmx, interpreterPath, scriptBody)
	if err != nil {
		return 0, err
	}
	return res.ExitCode, nil
}

// CopyFileFromGuestToHost copies guestPath out of the guest to hostPath.
//
// Runs: vmrun -gu <user> -gp <pass> CopyFileFromGuestToHost <vmx> <guest> <host>
func (v *VMRun) CopyFileFromGuestToHost(ctx context.Context, vmx string, creds Credentials, guestPath, hostPath string) error {
	vmx, err := absHostPath(vmx)
	if err != nil {
		return err
	}
	dst, err := absHostPath(hostPath)
	if err != nil {
		return err
	}
	res, err := v.runGuest(ctx, creds, "CopyFileFromGuestToHost", vmx, guestPath, dst)
	if err != nil {
		return err
	}
	_, err = res.ExplodeOnError()
	return err
}

// CopyFileFromHostToGuest copies hostPath into the guest at guestPath.
//
// Runs: vmrun -gu <user> -gp <pass> CopyFileFromHostToGuest <vmx> <host> <guest>
func (v *VMRun) CopyFileFromHostToGuest(ctx context.Context, vmx string, creds Credentials, hostPath, guestPath string) error {
	vmx, err := absHostPath(vmx)
	if err != nil {
		return err
	}
	src, err := absHostPath(hostPath)
	if err != nil {
		return err
	}
	res, err := v.runGuest(ctx, creds, "CopyFileFromHostToGuest", vmx, src, guestPath)
	if err != nil {
		return err
	}
	_, err = res.ExplodeOnError()
	return err
}

// run invokes vmrun with args, prefixed by the host type flag if set.
func (v *VMRun) run(ctx context.Context, args ...string) (process.Result, error) {
	if v.hostType != "" {
		args = append([]string{"-T", v.hostType}, args...)
	}
	return v.runner.Run(ctx, v.executable, args...)
}

// runChecked is run followed by ExplodeOnError.
func (v *VMRun) runChecked(ctx context.Context, args ...string) error {
	res, err := v.run(ctx, args...)
	if err != nil {
		return err
	}
	_, err = res.ExplodeOnError()
	return err
}

// runGuest invokes a guest subcommand with authentication flags first.
func (v *VMRun) runGuest(ctx context.Context, creds Credentials, subcommand string, args ...string) (process.Result, error) {
	full := append(creds.args(), subcommand)
	full = append(full, args...)
	return v.run(ctx, full...)
}

// absHostPath makes a host-side path absolute. vmrun passes paths on to the
// VMware host service, which does not share our working directory.
func absHostPath(p string) (string, error) {
	if p == "" || filepath.IsAbs(p) {
		return p, nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", p, err)
	}
	return abs, nil
}

// parseList decodes vmrun list output: a header line, then one descriptor
// path per line.
func parseList(out []byte) ([]string, error) {
	// The whole output is in memory, so no line is ever too long to scan.
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 4096), max(len(out)+1, bufio.MaxScanTokenSize))

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &MalformedOutputError{Command: "list", Output: out, Err: err}
		}
		return nil, &MalformedOutputError{Command: "list", Output: out, Err: ErrNoHeaderLine}
	}

	paths := []string{}
	for scanner.Scan() {
		paths = append(paths, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &MalformedOutputError{Command: "list", Output: out, Err: err}
	}
	return paths, nil
}
