package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/xdg/vmctl/internal/audit"
	"github.com/xdg/vmctl/internal/clog"
	"github.com/xdg/vmctl/internal/config"
	"github.com/xdg/vmctl/internal/process"
	"github.com/xdg/vmctl/internal/term"
	"github.com/xdg/vmctl/internal/vmrun"
)

// defaultStopParallel bounds concurrent vmrun stop processes.
const defaultStopParallel = 4

var (
	stopAll      bool
	stopParallel int
	stopYes      bool
)

var stopCmd = &cobra.Command{
	Use:   "stop [vm...]",
	Short: "Shut down VMs",
	Long: `Ask the guest OS of each VM to shut down with vmrun stop soft.

A VM that vmrun cannot stop, for example one that is not running, is reported
as a warning and does not make vmctl fail. With --all every running VM is
stopped; several VMs are stopped concurrently, up to --parallel at a time.`,
	RunE: runStop,
}

func init() {
	stopCmd.Flags().BoolVarP(&stopAll, "all", "a", false, "stop every running VM")
	stopCmd.Flags().IntVar(&stopParallel, "parallel", defaultStopParallel, "maximum concurrent vmrun stop processes")
	stopCmd.Flags().BoolVarP(&stopYes, "yes", "y", false, "do not ask for confirmation with --all")
	rootCmd.AddCommand(stopCmd)
}

// stopOutcome is the result of stopping one VM.
type stopOutcome struct {
	target config.Target
	result process.Result
	err    error
}

func runStop(cmd *cobra.Command, args []string) error {
	switch {
	case stopAll && len(args) > 0:
		return errors.New("--all does not take VM arguments")
	case !stopAll && len(args) == 0:
		return errors.New("name a VM to stop, or pass --all")
	case stopParallel < 1:
		return fmt.Errorf("--parallel must be at least 1, got %d", stopParallel)
	}

	ctx := cmd.Context()
	vm := newVMRun()

	var targets []config.Target
	if stopAll {
		running, err := vm.List(ctx)
		if err != nil {
			return fmt.Errorf("list running VMs: %w", err)
		}
		if len(running) == 0 {
			term.Println("No running VMs.")
			return nil
		}
		for _, vmx := range running {
			targets = append(targets, config.Target{Name: loadedConfig.NameForVMX(vmx), VMX: vmx})
		}
		if !stopYes && stdinIsTerminal() {
			ok, err := confirmer.Confirm(fmt.Sprintf("Stop %d running VMs?", len(targets)), false)
			if err != nil {
				return err
			}
			if !ok {
				term.Println("Aborted.")
				return nil
			}
		}
	} else {
		for _, arg := range args {
			t, err := resolveTarget(arg)
			if err != nil {
				return err
			}
			targets = append(targets, t)
		}
	}

	outcomes := stopTargets(ctx, vm, targets, stopParallel)

	var errs []error
	for _, o := range outcomes {
		name := displayName(o.target)
		switch {
		case o.err != nil:
			errs = append(errs, fmt.Errorf("stop %s: %w", name, o.err))
		case !o.result.Success():
			term.Warn("%s was not stopped: vmrun exited with status %d%s", name, o.result.ExitCode, detail(o.result))
		default:
			term.Println("Stopped", name)
		}
	}
	return errors.Join(errs...)
}

// stopTargets stops each target in its own vmrun process, at most parallel
// at a time. Outcomes are in target order. One failure does not cancel the
// others.
func stopTargets(ctx context.Context, vm *vmrun.VMRun, targets []config.Target, parallel int) []stopOutcome {
	outcomes := make([]stopOutcome, len(targets))

	var g errgroup.Group
	g.SetLimit(parallel)
	for i, t := range targets {
		g.Go(func() error {
			began := time.Now()
			res, err := vm.Stop(ctx, t.VMX)
			record(&audit.Event{Op: audit.OpStop, VM: t.Name, VMX: t.VMX, ExitCode: res.ExitCode, Duration: time.Since(began), Err: err})
			outcomes[i] = stopOutcome{target: t, result: res, err: err}
			if err != nil {
				clog.Debug("stop %s: %v", t.VMX, err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// detail formats vmrun's own explanation of a failure, if it printed one.
func detail(res process.Result) string {
	msg := bytes.TrimSpace(res.Stdout)
	if len(msg) == 0 {
		msg = bytes.TrimSpace(res.Stderr)
	}
	if len(msg) == 0 {
		return ""
	}
	return ": " + string(msg)
}
