package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/xdg/vmctl/internal/clog"
)

// DefaultWaitDelay is how long [ExecRunner] waits for the output pipes to
// close after the process has been killed or has exited.
const DefaultWaitDelay = 5 * time.Second

// Runner runs a program to completion.
type Runner interface {
	// Run starts program with args, blocks until it exits and returns its
	// exit code and captured output. A non-zero exit status is not an error.
	// Errors are *LaunchError if the program could not be started and
	// *InterruptedError if ctx is done before the program exits.
	Run(ctx context.Context, program string, args ...string) (Result, error)
}

// ExecRunner runs programs with os/exec. Arguments are passed as a vector,
// never through a shell.
//
// When ctx is cancelled the process is killed. On Unix the process runs in
// its own process group and the whole group is killed, so helpers it spawned
// do not outlive it.
type ExecRunner struct {
	// Env holds extra environment variables set on top of the inherited
	// environment.
	Env map[string]string
	// WaitDelay bounds the wait for output pipes after the process is gone.
	// Zero means wait indefinitely.
	WaitDelay time.Duration
}

// NewExecRunner creates an ExecRunner with [DefaultWaitDelay].
func NewExecRunner() *ExecRunner {
	return &ExecRunner{WaitDelay: DefaultWaitDelay}
}

// Run implements [Runner].
func (r *ExecRunner) Run(ctx context.Context, program string, args ...string) (Result, error) {
	res := Result{Program: program, Args: Redact(args)}

	cmd := exec.CommandContext(ctx, program, args...)
	if len(r.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range r.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}
	cmd.WaitDelay = r.WaitDelay
	setKillGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	clog.Debug("process: run %s", commandLine(program, res.Args))
	start := time.Now()

	if err := cmd.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, &InterruptedError{Program: program, Args: res.Args, Err: ctxErr}
		}
		return res, &LaunchError{Program: program, Err: err}
	}

	waitErr := cmd.Wait()
	res.Stdout = stdout.Bytes()
	res.Stderr = stderr.Bytes()

	// A process that exited on its own keeps its exit status even when the
	// context ended before Wait returned. Only a process that was killed is
	// reported as interrupted.
	if waitErr != nil && ctx.Err() != nil && !exitedOnItsOwn(cmd.ProcessState) {
		clog.Debug("process: %s interrupted after %s", program, time.Since(start))
		return res, &InterruptedError{
			Program: program,
			Args:    res.Args,
			Stdout:  res.Stdout,
			Stderr:  res.Stderr,
			Err:     ctx.Err(),
		}
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
		res.ExitCode = 0
	case errors.As(waitErr, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	case errors.Is(waitErr, exec.ErrWaitDelay):
		// Exited, but a grandchild kept the output pipes open.
		res.ExitCode = cmd.ProcessState.ExitCode()
		clog.Warn("process: %s left output pipes open after exit", program)
	case exitedOnItsOwn(cmd.ProcessState):
		// Exited just as the context ended; Wait reports the context error.
		res.ExitCode = cmd.ProcessState.ExitCode()
	default:
		return res, fmt.Errorf("wait for %s: %w", program, waitErr)
	}

	clog.Debug("process: %s exited with status %d after %s", program, res.ExitCode, time.Since(start))
	return res, nil
}
