// Package cli wires the skit command tree.
package cli

import (
	stdcontext "context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/skit/internal/config"
	"github.com/Paintersrp/skit/internal/proc"
)

// appContext carries the flag values and loaded configuration shared by all
// subcommands.
type appContext struct {
	configPath  string
	logLevel    string
	metricsAddr string

	cfg      *config.Config
	exitCode int
}

func newRootCommand() (*cobra.Command, *appContext) {
	appCtx := &appContext{}

	root := &cobra.Command{
		Use:           "skit",
		Short:         "Launch scripts and bridge their JSONL sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := appCtx.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if appCtx.logLevel != "" {
				cfg.LogLevel = appCtx.logLevel
			}
			appCtx.cfg = cfg
			configureLogging(cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&appCtx.configPath, "config", "", "config file (default ~/.skit/config.yaml)")
	root.PersistentFlags().StringVar(&appCtx.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(newRunCommand(appCtx))
	root.AddCommand(newDoctorCommand(appCtx))

	return root, appCtx
}

// configureLogging applies the effective level and picks the plain logfmt
// formatter when stderr is not a terminal.
func configureLogging(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		logger.SetFormatter(log.LogfmtFormatter)
	}
	log.SetDefault(logger)
}

// Execute runs the CLI. Interrupt and SIGTERM cancel the command context so
// sessions shut down gracefully; KillAll sweeps any process group a failed
// path left behind before the launcher exits.
func Execute() {
	ctx, stop := signal.NotifyContext(stdcontext.Background(), os.Interrupt, syscall.SIGTERM)

	root, appCtx := newRootCommand()
	err := root.ExecuteContext(ctx)

	stop()
	proc.KillAll()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if appCtx.exitCode != 0 {
		os.Exit(appCtx.exitCode)
	}
}
