package cli

import (
	"fmt"
	"time"

	"github.com/qcsc/slurmled/internal/config"
	"github.com/spf13/cobra"
)

// interval carries a role's default poll cadence into loadConfig.
type interval struct {
	fallback time.Duration
}

// Monitor flags shared by the queue and nodes commands. Only one command
// runs per process, so one set of variables is enough.
var (
	intervalFlag   time.Duration
	containerFlag  string
	slurmUserFlag  string
	noMatrixFlag   bool
	brightnessFlag float64
	writeConfig    bool
)

// addMonitorFlags registers the flags common to both monitor roles.
func addMonitorFlags(cmd *cobra.Command, defaultInterval time.Duration) {
	cmd.Flags().DurationVarP(&intervalFlag, "interval", "i", defaultInterval, "poll interval")
	cmd.Flags().StringVarP(&containerFlag, "container", "c", "login", "container running the slurm client tools")
	cmd.Flags().BoolVar(&noMatrixFlag, "no-matrix", false, "disable the text matrix")
	cmd.Flags().Float64Var(&brightnessFlag, "brightness", 0.5, "matrix brightness (0.0-1.0)")
	cmd.Flags().BoolVar(&writeConfig, "write-config", false, "write the default config file and exit")
}

// handleWriteConfig writes the default config file when --write-config was
// given. Returns true when the command should exit afterwards.
func handleWriteConfig(cmd *cobra.Command) (bool, error) {
	if !writeConfig {
		return false, nil
	}
	path := configFlag
	if path == "" {
		path = config.ConfigFileName
	}
	if err := config.WriteDefault(path); err != nil {
		return true, err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return true, nil
}

// applyCommonFlags overrides config values with explicitly set flags.
// Flag > config file > default.
func applyCommonFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.Interval = intervalFlag
	}
	if flags.Changed("container") {
		cfg.Container = containerFlag
	}
	if flags.Changed("slurm-user") {
		cfg.SlurmUser = slurmUserFlag
	}
	if flags.Changed("no-matrix") {
		cfg.Matrix.Enabled = !noMatrixFlag
	}
	if flags.Changed("brightness") {
		cfg.Matrix.Brightness = brightnessFlag
	}
	if simulateFlag {
		cfg.Simulate = true
	}
}
