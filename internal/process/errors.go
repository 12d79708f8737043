package process

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for process execution. The typed errors below match them
// with errors.Is.
var (
	// ErrLaunch indicates the program could not be found or started.
	ErrLaunch = errors.New("process could not be started")

	// ErrInterrupted indicates the wait for the program was abandoned because
	// its context was cancelled or timed out.
	ErrInterrupted = errors.New("interrupted while waiting for process")

	// ErrExecution indicates the program exited with a non-zero status where
	// that is considered a failure.
	ErrExecution = errors.New("process exited with non-zero status")
)

// LaunchError is returned when the program could not be started, e.g. the
// executable is missing or not executable.
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Is implements the [errors.Is] interface.
func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunch
}

// InterruptedError is returned when the context passed to [Runner.Run] is
// done before the program exits. The program has been killed by the time
// this error is returned; Stdout and Stderr hold whatever it wrote before.
type InterruptedError struct {
	Program string
	Args    []string
	Stdout  []byte
	Stderr  []byte
	Err     error
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("%s interrupted: %v", commandLine(e.Program, e.Args), e.Err)
}

// Unwrap returns the context error that caused the interruption.
func (e *InterruptedError) Unwrap() error {
	return e.Err
}

// Is implements the [errors.Is] interface.
func (e *InterruptedError) Is(target error) bool {
	return target == ErrInterrupted
}

// ExecutionError is returned by [Result.ExplodeOnError] for a non-zero exit
// status. Stdout and Stderr are the captured streams, unmodified.
type ExecutionError struct {
	Program  string
	Args     []string
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", commandLine(e.Program, e.Args), e.ExitCode)
	if detail := e.diagnostic(); detail != "" {
		return msg + ": " + detail
	}
	return msg
}

// Is implements the [errors.Is] interface.
func (e *ExecutionError) Is(target error) bool {
	return target == ErrExecution
}

// diagnostic returns the most useful text the process printed. Some tools
// (vmrun among them) report errors on stdout, so stdout is used when stderr
// is empty.
func (e *ExecutionError) diagnostic() string {
	if s := bytes.TrimSpace(e.Stderr); len(s) > 0 {
		return string(s)
	}
	return string(bytes.TrimSpace(e.Stdout))
}

// commandLine renders program and args for error messages. It is not meant
// to be pasted into a shell.
func commandLine(program string, args []string) string {
	name := filepath.Base(program)
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
