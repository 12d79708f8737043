package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/vmctl/internal/config"
	"github.com/xdg/vmctl/internal/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Manage the vmctl configuration file.

The file is ~/.config/vmctl/config.yaml, or $XDG_CONFIG_HOME/vmctl/config.yaml
when XDG_CONFIG_HOME is set. --config selects another file.`,
	// The config commands must work while the file is broken, so they skip
	// the root's config loading.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		term.SetSilent(silent)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Print the effective configuration as YAML, with defaults filled in.

If no config file exists, shows the default configuration.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run:   runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default config file",
	Long: `Create a commented default configuration file if none exists.

An existing file is left unchanged.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the config file in $VISUAL or $EDITOR",
	Long: `Open the configuration file in your editor, creating the default file
first if needed. The file is checked after the editor exits.`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}
	data, err := config.MarshalConfig(cfg)
	if err != nil {
		return err
	}
	term.Print(string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	term.Println(configPathForDisplay())
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPathForDisplay()
	created, err := config.WriteDefaultConfig(path)
	if err != nil {
		return err
	}
	if !created {
		term.Printf("Config already exists at %s\n", path)
		return nil
	}
	term.Printf("Created default config at %s\n", path)
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	if err := config.EditConfig(configPathForDisplay()); err != nil {
		return fmt.Errorf("edit config: %w", err)
	}
	return nil
}
