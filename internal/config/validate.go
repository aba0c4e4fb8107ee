package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/qcsc/slurmled/internal/errors"
)

// Validate checks settings common to every monitor role. Invalid
// configuration is fatal before the loop starts.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Container) == "" {
		return errors.New(errors.ErrConfig,
			"No container configured",
			"Set --container to the container running the slurm client tools.")
	}
	if strings.TrimSpace(cfg.QuantumPartition) == "" {
		return errors.New(errors.ErrConfig,
			"Quantum partition name is empty",
			"Set quantum_partition in the config file; the default is 'quantum'.")
	}
	if cfg.Interval != 0 && cfg.Interval < time.Second {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Poll interval %s is too short", cfg.Interval),
			"Use at least 1s; the scheduler is queried on every tick.")
	}
	if cfg.Matrix.Brightness < 0 || cfg.Matrix.Brightness > 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Matrix brightness %.2f is out of range", cfg.Matrix.Brightness),
			"Brightness must be between 0.0 and 1.0.")
	}
	if cfg.Matrix.Width <= 0 || cfg.Matrix.Height <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Matrix size %dx%d is invalid", cfg.Matrix.Width, cfg.Matrix.Height),
			"Width and height must both be positive.")
	}
	if cfg.Indicators.ClassicalPin == cfg.Indicators.QuantumPin {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Both indicators map to GPIO %d", cfg.Indicators.ClassicalPin),
			"The classical and quantum indicators need distinct pins.")
	}
	return nil
}

// ValidateRemote checks the settings the nodes role additionally needs.
func ValidateRemote(cfg *Config) error {
	if strings.TrimSpace(cfg.Remote.Host) == "" {
		return errors.New(errors.ErrConfig,
			"No controller host configured",
			"Set --host to the machine running the scheduler controller.")
	}
	if cfg.Remote.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			"Remote timeout must be positive",
			"Set remote.timeout to a short bound like 5s.")
	}
	if len(cfg.Panel.Nodes) == 0 {
		return errors.New(errors.ErrConfig,
			"No panel nodes configured",
			"Map node ids to GPIO offsets under panel.nodes in the config file.")
	}
	seen := make(map[int]string, len(cfg.Panel.Nodes))
	for node, pin := range cfg.Panel.Nodes {
		if other, dup := seen[pin]; dup {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Nodes '%s' and '%s' both map to GPIO %d", other, node, pin),
				"Each panel node needs its own pin.")
		}
		seen[pin] = node
	}
	return nil
}
