package sshexec

import "context"

// Runner defines the interface for remote command execution.
// Both the real Client and mock implementations satisfy this interface,
// enabling tests of SSH-dependent code without a live connection.
type Runner interface {
	// Exec runs a command and returns stdout, stderr, and exit code.
	// Exit code is -1 if the command couldn't be executed at all.
	// A non-zero exit code with nil error means the command ran but failed.
	// The context bounds the command's runtime; on expiry the command is
	// aborted and an error returned, so a hung remote command can never
	// stall the caller indefinitely.
	Exec(ctx context.Context, cmd string) (stdout, stderr []byte, exitCode int, err error)

	// Close closes the connection.
	Close() error

	// Target returns the original host/alias used to connect.
	Target() string
}
