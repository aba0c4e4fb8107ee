// Package snapshot reduces raw scheduler facts into the canonical state
// used for display decisions. Aggregation is pure: it never consults prior
// state, so the poll loop can substitute last-known-good values per
// sub-source without this package knowing.
package snapshot

import "github.com/qcsc/slurmled/internal/slurm"

// Snapshot is the minimal derived cluster state. It is replaced wholesale
// each tick, never partially mutated.
type Snapshot struct {
	// ClassicalActive is true iff any job runs outside the quantum partition.
	ClassicalActive bool

	// QuantumActive is true iff any job runs in the quantum partition.
	QuantumActive bool

	// NodeActive holds an entry per node whose state was informative:
	// true for allocated/mixed, false for idle/down. Nodes in an unknown
	// state are absent, so downstream can fall back to last-known-good
	// instead of defaulting to off.
	NodeActive map[string]bool
}

// Aggregate reduces a job listing and node state listing into a Snapshot.
// quantumPartition names the partition whose jobs count as quantum.
func Aggregate(jobs []slurm.Job, nodes []slurm.NodeState, quantumPartition string) Snapshot {
	classical, quantum := AggregateJobs(jobs, quantumPartition)
	return Snapshot{
		ClassicalActive: classical,
		QuantumActive:   quantum,
		NodeActive:      AggregateNodes(nodes),
	}
}

// AggregateJobs derives the partition-class activity pair from a job listing.
func AggregateJobs(jobs []slurm.Job, quantumPartition string) (classical, quantum bool) {
	for _, job := range jobs {
		if job.Partition == quantumPartition {
			quantum = true
		} else {
			classical = true
		}
	}
	return classical, quantum
}

// AggregateNodes derives per-node activity booleans from a node listing.
// Unknown states produce no entry.
func AggregateNodes(nodes []slurm.NodeState) map[string]bool {
	active := make(map[string]bool, len(nodes))
	for _, ns := range nodes {
		switch ns.State {
		case slurm.StateAllocated, slurm.StateMixed:
			active[ns.Node] = true
		case slurm.StateIdle, slurm.StateDown:
			active[ns.Node] = false
		}
	}
	return active
}
