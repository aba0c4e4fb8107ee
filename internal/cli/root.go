// Package cli wires the monitor roles into a cobra command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/qcsc/slurmled/internal/config"
	"github.com/qcsc/slurmled/internal/logger"
	"github.com/spf13/cobra"
)

// Persistent flags shared by every command.
var (
	configFlag   string
	verboseFlag  bool
	simulateFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "slurmled",
	Short: "Drive cluster-status LEDs from live slurm state",
	Long: `slurmled polls a slurm cluster and renders its activity onto physical
indicator hardware: discrete partition LEDs, a small text matrix, and a
per-node light panel.

Two monitor roles exist, one per host:

  queue   watches the local job listing and drives the partition
          indicators and the text matrix
  nodes   watches per-node allocation on the controller host (over SSH)
          and drives the node light panel

Both roles keep showing the last confirmed state when a query fails, and
drive every output off on shutdown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: .slurmled.yaml, then ~/.config/slurmled/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&simulateFlag, "simulate", false, "no hardware I/O; log what would be displayed")
}

// Execute runs the CLI. Configuration and hardware-claim failures exit
// non-zero before any loop starts; a signal-triggered shutdown exits 0.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig builds the validated runtime configuration for a command:
// defaults, then the config file, then explicit flags, then the role's
// default interval where none was given.
func loadConfig(cmd *cobra.Command, roleInterval interval) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	applyCommonFlags(cmd, cfg)

	if cfg.Interval == 0 {
		cfg.Interval = roleInterval.fallback
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger from the persistent flags.
func newLogger() logger.Logger {
	return logger.New(verboseFlag)
}
