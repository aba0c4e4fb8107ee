package slurm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobs(t *testing.T) {
	out := []byte("101|hpc|train-model\n102|quantum|vqe run 4\n")

	jobs := ParseJobs(out)

	require.Len(t, jobs, 2)
	assert.Equal(t, Job{ID: "101", Partition: "hpc", Name: "train-model"}, jobs[0])
	assert.Equal(t, Job{ID: "102", Partition: "quantum", Name: "vqe run 4"}, jobs[1])
}

func TestParseJobsSkipsMalformedRows(t *testing.T) {
	out := []byte("101|hpc|ok\ngarbage line\n102|quantum\n\n103|hpc|also ok\n")

	jobs := ParseJobs(out)

	require.Len(t, jobs, 2)
	assert.Equal(t, "101", jobs[0].ID)
	assert.Equal(t, "103", jobs[1].ID)
}

func TestParseJobsLowercasesPartition(t *testing.T) {
	jobs := ParseJobs([]byte("1|Quantum|job\n"))
	require.Len(t, jobs, 1)
	assert.Equal(t, "quantum", jobs[0].Partition)
}

func TestParseJobsKeepsPipesInName(t *testing.T) {
	// Only the first two delimiters split; the name may contain pipes.
	jobs := ParseJobs([]byte("1|hpc|stage|train|eval\n"))
	require.Len(t, jobs, 1)
	assert.Equal(t, "stage|train|eval", jobs[0].Name)
}

func TestParseJobsEmptyOutput(t *testing.T) {
	assert.Empty(t, ParseJobs(nil))
	assert.Empty(t, ParseJobs([]byte("\n\n")))
}

func TestParseNodeStates(t *testing.T) {
	out := []byte("c1 allocated\nc2 idle\nC3 mixed\nq1 down\n")

	states := ParseNodeStates(out)

	require.Len(t, states, 4)
	assert.Equal(t, NodeState{Node: "c1", State: StateAllocated}, states[0])
	assert.Equal(t, NodeState{Node: "c2", State: StateIdle}, states[1])
	assert.Equal(t, NodeState{Node: "c3", State: StateMixed}, states[2], "node names are lowercased")
	assert.Equal(t, NodeState{Node: "q1", State: StateDown}, states[3])
}

func TestParseNodeStatesSkipsMalformedRows(t *testing.T) {
	out := []byte("c1 idle\nnostatehere\n\nc2 mixed\n")

	states := ParseNodeStates(out)

	require.Len(t, states, 2)
	assert.Equal(t, "c1", states[0].Node)
	assert.Equal(t, "c2", states[1].Node)
}

func TestParseStateToken(t *testing.T) {
	tests := []struct {
		raw  string
		want NodeStateToken
	}{
		{"idle", StateIdle},
		{"idle*", StateIdle},
		{"idle~", StateIdle},
		{"allocated", StateAllocated},
		{"alloc", StateAllocated},
		{"allocated+", StateAllocated},
		{"completing", StateAllocated},
		{"mixed", StateMixed},
		{"mix", StateMixed},
		{"down", StateDown},
		{"down*", StateDown},
		{"drained", StateDown},
		{"draining", StateDown},
		{"drng", StateDown},
		{"fail", StateDown},
		{"maint", StateDown},
		{"IDLE", StateIdle},
		{"unknown", StateUnknown},
		{"future", StateUnknown},
		{"", StateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseStateToken(tt.raw))
		})
	}
}
