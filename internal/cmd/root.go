// Package cmd implements the vmctl command line.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xdg/vmctl/internal/clog"
	"github.com/xdg/vmctl/internal/config"
	"github.com/xdg/vmctl/internal/process"
	"github.com/xdg/vmctl/internal/term"
	"github.com/xdg/vmctl/internal/version"
)

// Global flags.
var (
	configFile   string
	vmrunPath    string
	hostType     string
	debugLogging bool
	silent       bool
)

// loadedConfig is set by loadConfig before any command that needs it runs.
var loadedConfig *config.Config

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vmctl",
	Short: "Control VMware virtual machines through vmrun",
	Long: `vmctl starts, stops and lists VMware virtual machines and runs scripts
and copies files inside their guests, by invoking VMware's vmrun tool.

A VM is named either by a .vmx path or by a name defined in the vms section
of the configuration file.`,
	Version:           version.String(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.SetVersionTemplate("vmctl {{.Version}}\n")
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "configuration file (default "+config.DefaultPath()+")")
	pf.StringVar(&vmrunPath, "vmrun", "", "vmrun executable (overrides vmrun.path)")
	pf.StringVar(&hostType, "host-type", "", "vmrun host type passed as -T (overrides vmrun.host_type)")
	pf.BoolVar(&debugLogging, "debug", false, "log every vmrun invocation to stderr")
	pf.BoolVarP(&silent, "silent", "s", false, "suppress normal output")
}

// Main runs vmctl and returns its exit status: 0 on success, the guest's
// status when run-script fails, 130 when interrupted and 1 otherwise.
func Main() int {
	return exitStatus(Execute())
}

func exitStatus(err error) int {
	var exitErr *ExitCodeError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, process.ErrInterrupted):
		return 130
	default:
		return 1
	}
}

// Execute runs the root command with os.Args. SIGINT and SIGTERM cancel the
// running command, which kills any vmrun process it started.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return execute(ctx, os.Args[1:])
}

func execute(ctx context.Context, args []string) error {
	defer func() {
		closeAudit()
		_ = clog.Close()
	}()

	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *ExitCodeError
	if !errors.As(err, &exitErr) {
		term.Error("%v", explain(err))
	}
	return err
}

// loadConfig loads the configuration file and sets up output and logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	term.SetSilent(silent)

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if hostType != "" {
		flagCfg := config.Config{VMRun: config.VMRunConfig{HostType: hostType}}
		if err := config.ValidateConfig(&flagCfg); err != nil {
			return err
		}
	}

	level, _ := clog.ParseLevel(cfg.Log.Level)
	if debugLogging {
		level = clog.LevelDebug
	}
	if err := clog.Configure(cfg.Log.File, level); err != nil {
		term.Warn("logging to %s disabled: %v", cfg.Log.File, err)
	}
	if debugLogging {
		clog.Default().SetStderrLevel(clog.LevelDebug)
	}
	openAudit(cfg.Log.AuditFile)
	clog.Debug("vmctl %s: %s", version.Version, cmd.CommandPath())

	loadedConfig = cfg
	return nil
}
