// Package config defines the runtime configuration for the monitors and
// its validation. All behavior variance comes through this structure: it
// is built once at startup from defaults, an optional YAML file, and
// command-line flags, then validated before any loop starts.
package config

import "time"

// Config is the complete monitor configuration.
type Config struct {
	// Interval between polls. Zero selects the per-role default.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Container is the docker container holding the slurm client tools
	// (the monitored scope).
	Container string `yaml:"container" mapstructure:"container"`

	// SlurmUser optionally restricts the job listing to one user.
	SlurmUser string `yaml:"slurm_user" mapstructure:"slurm_user"`

	// QuantumPartition is the partition name whose jobs count as quantum;
	// every other partition counts as classical.
	QuantumPartition string `yaml:"quantum_partition" mapstructure:"quantum_partition"`

	// Simulate replaces all hardware backends with recording no-ops.
	Simulate bool `yaml:"simulate" mapstructure:"simulate"`

	// GPIOChip is the gpiochip device name for the binary outputs.
	GPIOChip string `yaml:"gpio_chip" mapstructure:"gpio_chip"`

	Matrix     MatrixConfig     `yaml:"matrix" mapstructure:"matrix"`
	Indicators IndicatorsConfig `yaml:"indicators" mapstructure:"indicators"`
	Panel      PanelConfig      `yaml:"panel" mapstructure:"panel"`
	Remote     RemoteConfig     `yaml:"remote" mapstructure:"remote"`
}

// MatrixConfig controls the text matrix.
type MatrixConfig struct {
	// Enabled gates all matrix writes; disabled leaves the panel blank.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Brightness scales all rendered colors, 0.0–1.0.
	Brightness float64 `yaml:"brightness" mapstructure:"brightness"`

	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// IndicatorsConfig holds the two discrete indicator outputs (BCM offsets).
type IndicatorsConfig struct {
	ClassicalPin int `yaml:"classical_pin" mapstructure:"classical_pin"`
	QuantumPin   int `yaml:"quantum_pin" mapstructure:"quantum_pin"`
}

// PanelConfig maps node ids to their panel outputs (BCM offsets).
type PanelConfig struct {
	Nodes map[string]int `yaml:"nodes" mapstructure:"nodes"`
}

// RemoteConfig describes the controller host queried over the remote
// execution channel (secondary monitor role only).
type RemoteConfig struct {
	// Host is the controller hostname, IP, or ssh alias.
	Host string `yaml:"host" mapstructure:"host"`

	// User is the remote user; empty resolves from ~/.ssh/config or $USER.
	User string `yaml:"user" mapstructure:"user"`

	// Timeout bounds connect plus command execution for one query.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Per-role default poll intervals. The queue monitor watches a slow-moving
// job listing; the nodes monitor tracks allocation changes more closely.
const (
	DefaultQueueInterval = 30 * time.Second
	DefaultNodesInterval = 5 * time.Second
)

// Default returns a Config with the documented defaults.
func Default() *Config {
	return &Config{
		Container:        "login",
		QuantumPartition: "quantum",
		GPIOChip:         "gpiochip0",
		Matrix: MatrixConfig{
			Enabled:    true,
			Brightness: 0.5,
			Width:      24,
			Height:     8,
		},
		Indicators: IndicatorsConfig{
			ClassicalPin: 17,
			QuantumPin:   27,
		},
		Panel: PanelConfig{
			Nodes: map[string]int{
				"c1": 17,
				"c2": 27,
				"c3": 22,
				"c4": 23,
				"q1": 24,
				"q2": 25,
			},
		},
		Remote: RemoteConfig{
			Timeout: 5 * time.Second,
		},
	}
}
