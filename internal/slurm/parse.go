package slurm

import (
	"bufio"
	"bytes"
	"strings"
)

// squeueFormat asks for pipe-delimited (job id, partition, name) rows with
// no header. Pipe delimiting survives spaces in job names.
const squeueFormat = "%i|%P|%j"

// sinfoFormat asks for whitespace-delimited (node, state) rows, one per
// node, with no header.
const sinfoFormat = "%N %T"

// ParseJobs parses squeue output in squeueFormat into Job records.
// Malformed rows are skipped rather than failing the whole listing.
func ParseJobs(out []byte) []Job {
	var jobs []Job
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) < 3 {
			continue
		}
		jobs = append(jobs, Job{
			ID:        strings.TrimSpace(parts[0]),
			Partition: strings.TrimSpace(strings.ToLower(parts[1])),
			Name:      strings.TrimSpace(parts[2]),
		})
	}
	return jobs
}

// ParseNodeStates parses sinfo output in sinfoFormat into NodeState records.
// Node names are lowercased; malformed rows are skipped.
func ParseNodeStates(out []byte) []NodeState {
	var states []NodeState
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		states = append(states, NodeState{
			Node:  strings.ToLower(fields[0]),
			State: parseStateToken(fields[1]),
		})
	}
	return states
}

// parseStateToken maps a raw sinfo state to a canonical token.
// sinfo appends flag suffixes to the base state (idle* for unresponsive,
// idle~ for powered down, and so on); those are stripped before matching.
func parseStateToken(raw string) NodeStateToken {
	s := strings.ToLower(strings.TrimRight(raw, "*~#!%$@+-"))
	switch {
	case s == "idle":
		return StateIdle
	case strings.HasPrefix(s, "alloc"), strings.HasPrefix(s, "comp"):
		// completing still occupies the node
		return StateAllocated
	case strings.HasPrefix(s, "mix"):
		return StateMixed
	case strings.HasPrefix(s, "down"), strings.HasPrefix(s, "drain"),
		strings.HasPrefix(s, "drng"), strings.HasPrefix(s, "fail"),
		strings.HasPrefix(s, "maint"):
		return StateDown
	default:
		return StateUnknown
	}
}
