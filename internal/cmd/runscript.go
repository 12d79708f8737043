package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/xdg/vmctl/internal/audit"
	"github.com/xdg/vmctl/internal/clog"
)

var (
	runScriptInterpreter string
	runScriptText        string
	runScriptFile        string
	runScriptGuest       guestFlags
)

// stdin is where run-script reads a piped script.
var stdin io.Reader = os.Stdin

var runScriptCmd = &cobra.Command{
	Use:   "run-script <vm>",
	Short: "Run a script inside a VM's guest OS",
	Long: `Run a script inside the guest with vmrun runScriptInGuest and exit with
the script's exit status.

The script text comes from --script, from --file (use - for stdin), or is
read from stdin when stdin is not a terminal. The interpreter defaults to
the VM's interpreter in the configuration file, then defaults.interpreter.

Examples:
  vmctl run-script build --script 'make -C /src test'
  vmctl run-script ~/vms/dev.vmx --interpreter /bin/bash --file setup.sh
  echo 'uname -a' | vmctl run-script build -u root`,
	Args: cobra.ExactArgs(1),
	RunE: runRunScript,
}

func init() {
	f := runScriptCmd.Flags()
	f.StringVarP(&runScriptInterpreter, "interpreter", "i", "", "guest interpreter path (default from config)")
	f.StringVar(&runScriptText, "script", "", "script text")
	f.StringVarP(&runScriptFile, "file", "f", "", "read the script from a host file, - for stdin")
	runScriptCmd.MarkFlagsMutuallyExclusive("script", "file")
	runScriptGuest.register(runScriptCmd)
	rootCmd.AddCommand(runScriptCmd)
}

func runRunScript(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args[0])
	if err != nil {
		return err
	}

	script, err := readScript(cmd)
	if err != nil {
		return err
	}

	interpreter := runScriptInterpreter
	if interpreter == "" {
		interpreter = target.Interpreter
	}

	creds, err := runScriptGuest.credentials(cmd, target)
	if err != nil {
		return err
	}

	began := time.Now()
	code, err := newVMRun().Guest(target.VMX, creds).RunScript(cmd.Context(), interpreter, script)
	record(&audit.Event{
		Op:          audit.OpRunScript,
		VM:          target.Name,
		VMX:         target.VMX,
		User:        creds.Username,
		Interpreter: interpreter,
		ScriptBytes: len(script),
		ExitCode:    code,
		Duration:    time.Since(began),
		Err:         err,
	})
	if err != nil {
		return fmt.Errorf("run script in %s: %w", displayName(target), err)
	}
	clog.Info("run-script %s as %s with %s: exit status %d", displayName(target), creds.Username, interpreter, code)
	if code != 0 {
		return NewExitCodeError(code)
	}
	return nil
}

// readScript returns the script text from --script, --file or stdin.
func readScript(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("script") {
		return runScriptText, nil
	}
	switch runScriptFile {
	case "":
		if stdinIsTerminal() {
			return "", errors.New("no script: pass --script or --file, or pipe it on stdin")
		}
		return readAll(stdin, "stdin")
	case "-":
		return readAll(stdin, "stdin")
	default:
		data, err := os.ReadFile(runScriptFile)
		if err != nil {
			return "", fmt.Errorf("read script: %w", err)
		}
		return string(data), nil
	}
}

func readAll(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read script from %s: %w", name, err)
	}
	return string(data), nil
}
