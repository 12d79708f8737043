package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/vmctl/internal/term"
)

var listPaths bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List running VMs",
	Long: `List running VMs as reported by vmrun list.

The NAME column shows the configured name of each VM, if it has one. With
--paths only the .vmx paths are printed, one per line.`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().BoolVar(&listPaths, "paths", false, "print only .vmx paths")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	paths, err := newVMRun().List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list running VMs: %w", err)
	}

	if listPaths {
		for _, p := range paths {
			term.Println(p)
		}
		return nil
	}

	if len(paths) == 0 {
		term.Println("No running VMs.")
		return nil
	}

	tbl := term.NewTable("NAME", "PATH")
	for _, p := range paths {
		name := loadedConfig.NameForVMX(p)
		if name == "" {
			name = "-"
		}
		tbl.Row(name, p)
	}
	return tbl.Flush()
}
