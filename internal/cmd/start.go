package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xdg/vmctl/internal/audit"
	"github.com/xdg/vmctl/internal/term"
	"github.com/xdg/vmctl/internal/vmrun"
)

var (
	startGUI   bool
	startNoGUI bool
)

var startCmd = &cobra.Command{
	Use:   "start <vm>",
	Short: "Power on a VM",
	Long: `Power on a VM with vmrun start.

Without --gui or --nogui the console window follows defaults.gui in the
configuration file.`,
	Args: cobra.ExactArgs(1),
	RunE: runStart,
}

func init() {
	startCmd.Flags().BoolVar(&startGUI, "gui", false, "open the VM console window")
	startCmd.Flags().BoolVar(&startNoGUI, "nogui", false, "start headless")
	startCmd.MarkFlagsMutuallyExclusive("gui", "nogui")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args[0])
	if err != nil {
		return err
	}

	mode, err := vmrun.ParseGUIMode(loadedConfig.Defaults.GUI)
	if err != nil {
		return err
	}
	switch {
	case startGUI:
		mode = vmrun.GUIModeGUI
	case startNoGUI:
		mode = vmrun.GUIModeNoGUI
	}

	began := time.Now()
	err = newVMRun().Start(cmd.Context(), target.VMX, mode)
	record(&audit.Event{Op: audit.OpStart, VM: target.Name, VMX: target.VMX, Duration: time.Since(began), Err: err})
	if err != nil {
		return fmt.Errorf("start %s: %w", displayName(target), err)
	}
	term.Printf("Started %s (%s)\n", displayName(target), mode)
	return nil
}
