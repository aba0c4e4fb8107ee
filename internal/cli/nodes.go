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
	"github.com/qcsc/slurmled/pkg/sshexec"
)

var (
	hostFlag     string
	userFlag     string
	selfTestFlag bool
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Monitor per-node allocation on the controller and drive the node panel",
	Long: `Polls per-node allocation state from the controller host over SSH and
drives one light per configured node:

  allocated or mixed  ->  light on
  idle or down        ->  light off
  unknown             ->  light keeps its last confirmed state

The running-job listing is also polled remotely so this host's matrix can
show the same partition text as the primary monitor. A query failure keeps
the previous state showing; on SIGINT or SIGTERM every output is driven
off before exit.`,
	Example: `  # poll the controller every 5s
  slurmled nodes --host controller

  # verify panel wiring, one node at a time, then exit
  slurmled nodes --host controller --self-test

  # no hardware attached
  slurmled nodes --host controller --simulate -v`,
	RunE: runNodes,
}

func init() {
	addMonitorFlags(nodesCmd, config.DefaultNodesInterval)
	nodesCmd.Flags().StringVar(&hostFlag, "host", "", "controller hostname, IP, or ssh alias")
	nodesCmd.Flags().StringVar(&userFlag, "user", "", "remote user (default: ssh config, then $USER)")
	nodesCmd.Flags().BoolVarP(&selfTestFlag, "self-test", "t", false, "walk each node light on and off, then exit")
	rootCmd.AddCommand(nodesCmd)
}

func runNodes(cmd *cobra.Command, args []string) error {
	if done, err := handleWriteConfig(cmd); done {
		return err
	}

	cfg, err := loadConfig(cmd, interval{config.DefaultNodesInterval})
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Remote.Host = hostFlag
	}
	if flags.Changed("user") {
		cfg.Remote.User = userFlag
	}
	if err := config.ValidateRemote(cfg); err != nil {
		return err
	}
	log := newLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	req := lineRequester(cfg, log)

	panel, err := driver.NewPanel(req, cfg.Panel.Nodes, log)
	if err != nil {
		return err
	}
	defer panel.Close()

	if selfTestFlag {
		log.Info("panel self-test: %d nodes", len(panel.Nodes()))
		return panel.SelfTest(300 * time.Millisecond)
	}

	matrix, err := buildMatrix(cfg, log)
	if err != nil {
		return err
	}
	defer matrix.Close()

	remote := slurm.NewRemoteQuery(cfg.Remote.Host, cfg.Remote.User, cfg.Container, cfg.Remote.Timeout)
	defer sshexec.CloseAgent()

	log.Info("nodes monitor: host=%s container=%s interval=%s",
		cfg.Remote.Host, cfg.Container, cfg.Interval)

	loop := poll.New(poll.Options{
		Jobs:             remote,
		Nodes:            remote,
		Drivers:          []poll.Driver{panel, matrix},
		Interval:         cfg.Interval,
		QuantumPartition: cfg.QuantumPartition,
		Log:              log,
		FailureLogEvery:  time.Minute,
	})
	err = loop.Run(ctx)

	log.Info("shutting down, clearing outputs")
	return err
}
