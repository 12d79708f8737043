package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xdg/vmctl/internal/audit"
	"github.com/xdg/vmctl/internal/term"
)

var (
	copyToGuestFlags   guestFlags
	copyFromGuestFlags guestFlags
)

var copyToGuestCmd = &cobra.Command{
	Use:   "copy-to-guest <vm> <host-path> <guest-path>",
	Short: "Copy a file from the host into a VM's guest OS",
	Long: `Copy a host file into the guest with vmrun CopyFileFromHostToGuest.

A relative host path is taken relative to the current directory. The guest
path is passed to the guest unchanged.`,
	Args: cobra.ExactArgs(3),
	RunE: runCopyToGuest,
}

var copyFromGuestCmd = &cobra.Command{
	Use:   "copy-from-guest <vm> <guest-path> <host-path>",
	Short: "Copy a file out of a VM's guest OS to the host",
	Long: `Copy a guest file to the host with vmrun CopyFileFromGuestToHost.

A relative host path is taken relative to the current directory. The guest
path is passed to the guest unchanged.`,
	Args: cobra.ExactArgs(3),
	RunE: runCopyFromGuest,
}

func init() {
	copyToGuestFlags.register(copyToGuestCmd)
	copyFromGuestFlags.register(copyFromGuestCmd)
	rootCmd.AddCommand(copyToGuestCmd)
	rootCmd.AddCommand(copyFromGuestCmd)
}

func runCopyToGuest(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args[0])
	if err != nil {
		return err
	}
	creds, err := copyToGuestFlags.credentials(cmd, target)
	if err != nil {
		return err
	}

	hostPath, guestPath := args[1], args[2]
	began := time.Now()
	err = newVMRun().Guest(target.VMX, creds).CopyFileFromHost(cmd.Context(), hostPath, guestPath)
	record(&audit.Event{
		Op: audit.OpCopyToGuest, VM: target.Name, VMX: target.VMX, User: creds.Username,
		Src: hostPath, Dst: guestPath, Duration: time.Since(began), Err: err,
	})
	if err != nil {
		return fmt.Errorf("copy %s to %s: %w", hostPath, displayName(target), err)
	}
	term.Printf("Copied %s to %s:%s\n", hostPath, displayName(target), guestPath)
	return nil
}

func runCopyFromGuest(cmd *cobra.Command, args []string) error {
	target, err := resolveTarget(args[0])
	if err != nil {
		return err
	}
	creds, err := copyFromGuestFlags.credentials(cmd, target)
	if err != nil {
		return err
	}

	guestPath, hostPath := args[1], args[2]
	began := time.Now()
	err = newVMRun().Guest(target.VMX, creds).CopyFileToHost(cmd.Context(), guestPath, hostPath)
	record(&audit.Event{
		Op: audit.OpCopyFromGuest, VM: target.Name, VMX: target.VMX, User: creds.Username,
		Src: guestPath, Dst: hostPath, Duration: time.Since(began), Err: err,
	})
	if err != nil {
		return fmt.Errorf("copy %s from %s: %w", guestPath, displayName(target), err)
	}
	term.Printf("Copied %s:%s to %s\n", displayName(target), guestPath, hostPath)
	return nil
}
