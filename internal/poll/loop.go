// Package poll runs the observe→aggregate→map→render pipeline on a fixed
// cadence. The loop is single-threaded: ticks execute strictly one at a
// time, and a tick that overruns the interval delays the next tick rather
// than overlapping it.
package poll

import (
	"context"
	"time"

	"github.com/qcsc/slurmled/internal/display"
	"github.com/qcsc/slurmled/internal/logger"
	"github.com/qcsc/slurmled/internal/slurm"
	"github.com/qcsc/slurmled/internal/snapshot"
)

// JobSource lists running jobs. Implementations isolate their own failures
// and return them as errors; they must return within a bounded time.
type JobSource interface {
	Jobs(ctx context.Context) ([]slurm.Job, error)
}

// NodeSource lists per-node allocation states under the same contract.
type NodeSource interface {
	Nodes(ctx context.Context) ([]slurm.NodeState, error)
}

// Driver renders directives onto one output device. Apply must be
// idempotent so the loop can re-render unchanged state every tick.
type Driver interface {
	Apply(d display.Directives) error
}

// Options configures a Loop. Jobs and Nodes may each be nil when a monitor
// role doesn't observe that source.
type Options struct {
	Jobs             JobSource
	Nodes            NodeSource
	Drivers          []Driver
	Interval         time.Duration
	QuantumPartition string
	Log              logger.Logger

	// FailureLogEvery is the minimum gap between log lines for repeated
	// failures of the same class. Zero means every failure logs.
	FailureLogEvery time.Duration
}

// lastKnownGood holds the most recently successfully computed sub-results.
// A failure in one sub-source never overwrites the other's value; absence
// of fresh data keeps showing what was last confirmed true.
type lastKnownGood struct {
	classical  bool
	quantum    bool
	nodeActive map[string]bool
}

// Loop owns the last-known-good state and drives the tick pipeline.
type Loop struct {
	opts Options
	lkg  lastKnownGood
	gate *failureGate
}

// New creates a poll loop. Last-known-good starts empty: outputs show the
// no-data blank state until the first successful query of each sub-source.
func New(opts Options) *Loop {
	if opts.Log == nil {
		opts.Log = logger.Noop()
	}
	return &Loop{
		opts: opts,
		lkg:  lastKnownGood{nodeActive: make(map[string]bool)},
		gate: newFailureGate(opts.FailureLogEvery, opts.Log),
	}
}

// Seed installs a prior snapshot as the last-known-good state.
// Tests use this to exercise fallback behavior from arbitrary histories.
func (l *Loop) Seed(snap snapshot.Snapshot) {
	l.lkg.classical = snap.ClassicalActive
	l.lkg.quantum = snap.QuantumActive
	l.lkg.nodeActive = make(map[string]bool, len(snap.NodeActive))
	for node, active := range snap.NodeActive {
		l.lkg.nodeActive[node] = active
	}
}

// Run ticks immediately, then on every interval until the context ends.
// Returns nil on cancellation; per-tick failures never terminate the loop.
func (l *Loop) Run(ctx context.Context) error {
	l.Tick(ctx)

	ticker := time.NewTicker(l.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Tick(ctx)
		}
	}
}

// Tick runs one poll cycle: query sources, substitute last-known-good for
// failed sub-sources, aggregate, map, render, and retain newly successful
// sub-results.
func (l *Loop) Tick(ctx context.Context) {
	snap := snapshot.Snapshot{}

	if l.opts.Jobs != nil {
		jobs, err := l.opts.Jobs.Jobs(ctx)
		if err != nil {
			l.gate.report("job query", err)
			snap.ClassicalActive = l.lkg.classical
			snap.QuantumActive = l.lkg.quantum
		} else {
			classical, quantum := snapshot.AggregateJobs(jobs, l.opts.QuantumPartition)
			snap.ClassicalActive = classical
			snap.QuantumActive = quantum
			l.lkg.classical = classical
			l.lkg.quantum = quantum
			l.gate.recovered("job query")
		}
	}

	if l.opts.Nodes != nil {
		nodes, err := l.opts.Nodes.Nodes(ctx)
		if err != nil {
			l.gate.report("node query", err)
		} else {
			// Fresh entries overlay the retained map; nodes the query
			// didn't cover keep their last confirmed value.
			for node, active := range snapshot.AggregateNodes(nodes) {
				l.lkg.nodeActive[node] = active
			}
			l.gate.recovered("node query")
		}
		snap.NodeActive = make(map[string]bool, len(l.lkg.nodeActive))
		for node, active := range l.lkg.nodeActive {
			snap.NodeActive[node] = active
		}
	}

	directives := display.Map(snap)
	for _, drv := range l.opts.Drivers {
		if err := drv.Apply(directives); err != nil {
			l.gate.report("render", err)
		}
	}
}
