package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xdg/vmctl/internal/process"
	"github.com/xdg/vmctl/internal/prompt"
	"github.com/xdg/vmctl/internal/term"
)

// fakeVMRun records vmrun invocations. It is safe for concurrent use.
type fakeVMRun struct {
	mu       sync.Mutex
	programs []string
	calls    [][]string
	// respond, if set, decides the result of each invocation.
	respond func(args []string) (process.Result, error)
}

func (f *fakeVMRun) Run(_ context.Context, program string, args ...string) (process.Result, error) {
	f.mu.Lock()
	f.programs = append(f.programs, program)
	f.calls = append(f.calls, args)
	f.mu.Unlock()

	var res process.Result
	var err error
	if f.respond != nil {
		res, err = f.respond(args)
	}
	res.Program = program
	res.Args = process.Redact(args)
	return res, err
}

func (f *fakeVMRun) recorded() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.calls...)
}

// subcommand returns the vmrun subcommand in args, skipping -T and
// credential flags.
func subcommand(args []string) string {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-T", "-gu", "-gp":
			i++
		default:
			return args[i]
		}
	}
	return ""
}

// cliEnv is an isolated vmctl invocation environment.
type cliEnv struct {
	t          *testing.T
	dir        string
	configPath string
	fake       *fakeVMRun
	passwords  *prompt.MockPasswordReader
	confirm    *prompt.MockConfirmer
	tty        bool
	stdin      string
}

// newCLIEnv writes configYAML (plus a log file setting) to a temp config file
// and wires the command seams to fakes.
func newCLIEnv(t *testing.T, configYAML string) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv(passwordEnv, "")
	_ = os.Unsetenv(passwordEnv)

	configPath := filepath.Join(dir, "config.yaml")
	content := configYAML + "\nlog:\n  file: " + filepath.Join(dir, "vmctl.log") + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliEnv{
		t:          t,
		dir:        dir,
		configPath: configPath,
		fake:       &fakeVMRun{},
		passwords:  prompt.NewMockPasswordReader(),
		confirm:    &prompt.MockConfirmer{},
	}
}

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// run executes vmctl with --config pointing at the env's config file.
func (e *cliEnv) run(args ...string) cliResult {
	e.t.Helper()
	return e.runRaw(append([]string{"--config", e.configPath}, args...)...)
}

// runRaw executes vmctl with exactly args.
func (e *cliEnv) runRaw(args ...string) cliResult {
	e.t.Helper()

	var stdout, stderr bytes.Buffer
	term.SetOutput(&stdout)
	term.SetErrOutput(&stderr)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	origRunner, origReader, origConfirmer, origTTY, origStdin := newRunner, passwordReader, confirmer, stdinIsTerminal, stdin
	newRunner = func() process.Runner { return e.fake }
	passwordReader = e.passwords
	confirmer = e.confirm
	stdinIsTerminal = func() bool { return e.tty }
	stdin = strings.NewReader(e.stdin)
	defer func() {
		newRunner, passwordReader, confirmer, stdinIsTerminal, stdin = origRunner, origReader, origConfirmer, origTTY, origStdin
		term.Reset()
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		loadedConfig = nil
	}()

	resetFlags(rootCmd)
	err := execute(context.Background(), args)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// resetFlags restores every flag in the command tree to its default, since
// the commands are package globals shared between tests.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
