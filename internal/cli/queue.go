package cli

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qcsc/slurmled/internal/config"
	"github.com/qcsc/slurmled/internal/driver"
	"github.com/qcsc/slurmled/internal/poll"
	"github.com/qcsc/slurmled/internal/slurm"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Monitor the local job listing and drive the partition indicators",
	Long: `Polls the running-job listing from the slurm container on this host and
drives the two partition indicator LEDs plus the text matrix:

  classical job running  ->  indicator A on, matrix shows HPC
  quantum job running    ->  indicator B on, matrix shows Q
  both                   ->  both on, matrix shows QC SC

When a poll fails the previous state keeps showing; on SIGINT or SIGTERM
every output is driven off before exit.`,
	Example: `  # poll every 30s against the default container
  slurmled queue

  # only count one user's jobs, poll faster
  slurmled queue -s alice -i 10s

  # no hardware attached
  slurmled queue --simulate -v`,
	RunE: runQueue,
}

func init() {
	addMonitorFlags(queueCmd, config.DefaultQueueInterval)
	queueCmd.Flags().StringVarP(&slurmUserFlag, "slurm-user", "s", "", "only count jobs belonging to this user")
	rootCmd.AddCommand(queueCmd)
}

func runQueue(cmd *cobra.Command, args []string) error {
	if done, err := handleWriteConfig(cmd); done {
		return err
	}

	cfg, err := loadConfig(cmd, interval{config.DefaultQueueInterval})
	if err != nil {
		return err
	}
	log := newLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	req := lineRequester(cfg, log)

	indicators, err := driver.NewIndicators(req, cfg.Indicators.ClassicalPin, cfg.Indicators.QuantumPin, log)
	if err != nil {
		return err
	}
	defer indicators.Close()

	matrix, err := buildMatrix(cfg, log)
	if err != nil {
		return err
	}
	defer matrix.Close()

	jobs := slurm.NewJobQuery(cfg.Container, cfg.SlurmUser, queryTimeout(cfg.Interval))

	log.Info("queue monitor: container=%s interval=%s", cfg.Container, cfg.Interval)

	loop := poll.New(poll.Options{
		Jobs:             jobs,
		Drivers:          []poll.Driver{indicators, matrix},
		Interval:         cfg.Interval,
		QuantumPartition: cfg.QuantumPartition,
		Log:              log,
		FailureLogEvery:  time.Minute,
	})
	err = loop.Run(ctx)

	log.Info("shutting down, clearing outputs")
	return err
}

// queryTimeout bounds a single poll so a hung command can never stall the
// loop past its next tick.
func queryTimeout(interval time.Duration) time.Duration {
	if interval < 2*time.Second {
		return interval
	}
	timeout := interval / 2
	if timeout > 15*time.Second {
		timeout = 15 * time.Second
	}
	return timeout
}
