package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qcsc/slurmled/internal/config"
	"github.com/qcsc/slurmled/internal/display"
	"github.com/qcsc/slurmled/internal/driver"
)

var introCmd = &cobra.Command{
	Use:   "intro",
	Short: "Play the matrix splash sequence once and exit",
	Long: `Runs the demo sequence on the text matrix: a couple of timed words, a
scrolling banner, and the final two-color composite, then blanks the
matrix. Useful for checking orientation and brightness after wiring.`,
	Example: `  slurmled intro
  slurmled intro --brightness 0.2
  slurmled intro --simulate -v`,
	RunE: runIntro,
}

func init() {
	introCmd.Flags().BoolVar(&noMatrixFlag, "no-matrix", false, "disable the text matrix")
	introCmd.Flags().Float64Var(&brightnessFlag, "brightness", 0.5, "matrix brightness (0.0-1.0)")
	rootCmd.AddCommand(introCmd)
}

func runIntro(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, interval{config.DefaultQueueInterval})
	if err != nil {
		return err
	}
	log := newLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	matrix, err := buildMatrix(cfg, log)
	if err != nil {
		return err
	}
	defer matrix.Close()

	err = runSequence(ctx, matrix)
	if errors.Is(err, context.Canceled) {
		// Interrupted mid-sequence; the deferred Close blanks the matrix.
		return nil
	}
	if err != nil {
		return err
	}
	return matrix.Clear()
}

func runSequence(ctx context.Context, matrix *driver.Matrix) error {
	if err := matrix.ShowText(ctx, "HPC", display.ColorWhite, 3, 2*time.Second); err != nil {
		return err
	}
	if err := matrix.ShowText(ctx, "Q", display.ColorQuantum, 9, 2*time.Second); err != nil {
		return err
	}
	if err := matrix.ScrollText(ctx, "Quantum Centric Super Computing", display.ColorQuantum, 60*time.Millisecond); err != nil {
		return err
	}
	segments := []display.Segment{
		{Text: "QC", Color: display.ColorQuantum, X: 1},
		{Text: "SC", Color: display.ColorWhite, X: 13},
	}
	return matrix.ShowSegments(ctx, segments, 10*time.Second)
}
