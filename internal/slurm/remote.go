package slurm

import (
	"context"
	"fmt"
	"time"

	"github.com/qcsc/slurmled/internal/errors"
	"github.com/qcsc/slurmled/pkg/sshexec"
)

// DialFunc opens a remote execution channel. Replaceable in tests.
type DialFunc func(host, user string, timeout time.Duration) (sshexec.Runner, error)

// RemoteQuery runs scheduler introspection commands on the controller host
// through the remote execution channel. A fresh connection is opened per
// call and closed afterwards, so a restarted or reimaged controller needs no
// special handling — the next poll simply reconnects.
type RemoteQuery struct {
	Host      string        // controller hostname, IP, or ssh alias
	User      string        // remote user, empty for resolved default
	Container string        // docker container holding the slurm client tools
	Timeout   time.Duration // bound on connect + command

	dial DialFunc
}

// NewRemoteQuery creates a remote query against the given controller host.
func NewRemoteQuery(host, user, container string, timeout time.Duration) *RemoteQuery {
	return &RemoteQuery{
		Host:      host,
		User:      user,
		Container: container,
		Timeout:   timeout,
		dial: func(host, user string, timeout time.Duration) (sshexec.Runner, error) {
			return sshexec.Dial(host, user, timeout)
		},
	}
}

// Nodes returns the per-node allocation states from the controller.
func (q *RemoteQuery) Nodes(ctx context.Context) ([]NodeState, error) {
	cmd := fmt.Sprintf("docker exec %s sinfo -N -h -o '%s'", q.Container, sinfoFormat)
	out, err := q.run(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return ParseNodeStates(out), nil
}

// Jobs returns the running jobs from the controller.
func (q *RemoteQuery) Jobs(ctx context.Context) ([]Job, error) {
	cmd := fmt.Sprintf("docker exec %s squeue -h -t RUNNING -o '%s'", q.Container, squeueFormat)
	out, err := q.run(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return ParseJobs(out), nil
}

// run executes one command over a fresh channel and returns its stdout.
// The configured timeout bounds connect plus command execution, so a wedged
// remote command delays the caller's next tick by at most the timeout.
func (q *RemoteQuery) run(ctx context.Context, cmd string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, q.Timeout)
	defer cancel()

	client, err := q.dial(q.Host, q.User, q.Timeout)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	stdout, stderr, exitCode, err := client.Exec(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if exitCode != 0 {
		return nil, errors.New(errors.ErrExec,
			fmt.Sprintf("remote command exited with code %d", exitCode),
			firstLine(stderr))
	}

	return stdout, nil
}
