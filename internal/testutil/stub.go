// Package testutil provides shared test helpers for vmctl tests.
//
// Its main helper turns the test binary itself into a fake vmrun: a package
// calls [RunStubIfRequested] from TestMain, and tests point the code under
// test at [StubExecutable] with a [Stub] describing what the fake should do.
package testutil

import (
	"encoding/json"
	"os"
	"strconv"
	"testing"
	"time"
)

// Environment variables understood by the stub process.
const (
	StubEnv         = "VMCTL_TEST_STUB"
	StubStdoutEnv   = "VMCTL_TEST_STUB_STDOUT"
	StubStderrEnv   = "VMCTL_TEST_STUB_STDERR"
	StubExitEnv     = "VMCTL_TEST_STUB_EXIT"
	StubSleepEnv    = "VMCTL_TEST_STUB_SLEEP"
	StubArgsFileEnv = "VMCTL_TEST_STUB_ARGS_FILE"
)

// RunStubIfRequested makes the current process behave as a stub and exit if
// StubEnv is set. It must be called at the start of TestMain, before m.Run.
func RunStubIfRequested() {
	if os.Getenv(StubEnv) != "1" {
		return
	}
	os.Exit(runStub(os.Args[1:]))
}

func runStub(args []string) int {
	if path := os.Getenv(StubArgsFileEnv); path != "" {
		data, err := json.Marshal(args)
		if err != nil {
			return 125
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return 125
		}
	}

	_, _ = os.Stdout.WriteString(os.Getenv(StubStdoutEnv))
	_, _ = os.Stderr.WriteString(os.Getenv(StubStderrEnv))

	if s := os.Getenv(StubSleepEnv); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 125
		}
		time.Sleep(d)
	}

	code, err := strconv.Atoi(os.Getenv(StubExitEnv))
	if err != nil {
		return 0
	}
	return code
}

// Stub describes how the fake vmrun behaves for one invocation.
type Stub struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Sleep    time.Duration
	// ArgsFile, if set, receives the stub's arguments as a JSON array.
	ArgsFile string
}

// Env returns the environment variables that select this behaviour. The
// result is meant for process.ExecRunner.Env.
func (s Stub) Env() map[string]string {
	env := map[string]string{
		StubEnv:       "1",
		StubStdoutEnv: s.Stdout,
		StubStderrEnv: s.Stderr,
		StubExitEnv:   strconv.Itoa(s.ExitCode),
	}
	if s.Sleep > 0 {
		env[StubSleepEnv] = s.Sleep.String()
	}
	if s.ArgsFile != "" {
		env[StubArgsFileEnv] = s.ArgsFile
	}
	return env
}

// StubExecutable returns the path of the running test binary.
func StubExecutable(t *testing.T) string {
	t.Helper()
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable() error = %v", err)
	}
	return exe
}

// ReadStubArgs returns the arguments recorded by a stub run with ArgsFile.
func ReadStubArgs(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stub args: %v", err)
	}
	var args []string
	if err := json.Unmarshal(data, &args); err != nil {
		t.Fatalf("decode stub args: %v", err)
	}
	return args
}
