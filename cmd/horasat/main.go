// Package main provides the horasat CLI: a Thai 7-Numbers-9-Bases chart
// and reading engine. See docs/ARCHITECTURE.md § CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/horasat/internal/logging"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	debug     bool
}

var flags rootFlags

// logger is the process-wide logger, initialized before any subcommand
// runs.
var logger = zap.NewNop()

// newRootCmd creates the top-level "horasat" command with global flags
// and all subcommands registered.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "horasat",
		Short: "A Thai 7-Numbers-9-Bases chart and reading engine",
		Long: `Horasat derives the four traditional base sequences from a birth
date and resolves interpretive readings against them from a local
corpus.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(flags.debug)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .horasat)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .horasat-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newChartCmd())
	root.AddCommand(newReadingCmd())
	root.AddCommand(newHousesCmd())

	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the config directory from flag, env, or
// default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("HORASAT_CONFIG_DIR"); v != "" {
		return v
	}
	return ".horasat"
}
