package slurm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/qcsc/slurmled/internal/errors"
	"github.com/qcsc/slurmled/internal/exec"
)

// captureFunc runs a local command and captures its output.
// Matches exec.Capture; replaceable in tests.
type captureFunc func(ctx context.Context, cmd string) (stdout, stderr []byte, exitCode int, err error)

// JobQuery lists running jobs by executing squeue inside the monitored
// container on the local host.
type JobQuery struct {
	Container string        // docker container holding the slurm client tools
	User      string        // optional: restrict listing to one user
	Timeout   time.Duration // bound on one query

	capture captureFunc
}

// NewJobQuery creates a local job query scoped to the given container.
// user may be empty to list all users.
func NewJobQuery(container, user string, timeout time.Duration) *JobQuery {
	return &JobQuery{
		Container: container,
		User:      user,
		Timeout:   timeout,
		capture:   exec.Capture,
	}
}

// Jobs returns the currently running jobs. It is a pure read: any execution
// failure (nonzero exit, timeout) comes back as an error with no side
// effects, and the call returns within the configured timeout.
func (q *JobQuery) Jobs(ctx context.Context) ([]Job, error) {
	ctx, cancel := context.WithTimeout(ctx, q.Timeout)
	defer cancel()

	userFilter := ""
	if q.User != "" {
		userFilter = " -u " + q.User
	}
	cmd := fmt.Sprintf("docker exec %s squeue -h -t RUNNING%s -o '%s'",
		q.Container, userFilter, squeueFormat)

	stdout, stderr, exitCode, err := q.capture(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if exitCode != 0 {
		return nil, errors.New(errors.ErrExec,
			fmt.Sprintf("squeue exited with code %d", exitCode),
			firstLine(stderr))
	}

	return ParseJobs(stdout), nil
}

// firstLine trims stderr down to its first line for use as a suggestion.
func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		s = s[:idx]
	}
	return s
}
