// Package slurm queries and parses the job scheduler's introspection
// commands. All queries are read-only; each is wrapped so that a failure
// never escapes past its own boundary as anything but an error return.
package slurm

// Job is one running job as reported by squeue. Produced fresh each poll,
// never persisted.
type Job struct {
	ID        string
	Partition string
	Name      string
}

// NodeStateToken is the canonical allocation state of one compute node.
type NodeStateToken string

const (
	StateIdle      NodeStateToken = "idle"
	StateAllocated NodeStateToken = "allocated"
	StateMixed     NodeStateToken = "mixed"
	StateDown      NodeStateToken = "down"
	StateUnknown   NodeStateToken = "unknown"
)

// NodeState is one node's allocation state as reported by sinfo.
// Produced fresh each poll.
type NodeState struct {
	Node  string
	State NodeStateToken
}
