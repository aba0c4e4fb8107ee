// Package exec runs commands on the local host.
// It provides the same (stdout, stderr, exit code) shape as the SSH
// execution channel so callers can treat both sources uniformly.
package exec

import (
	"bytes"
	"context"
	"os"
	osexec "os/exec"

	"github.com/qcsc/slurmled/internal/errors"
)

// Capture runs a command locally through the shell and captures all output.
// Returns stdout, stderr, exit code, and any execution error.
// Exit code is -1 if the command couldn't be executed at all; a non-zero
// exit code with nil error means the command ran but failed.
// The context bounds the command's runtime; on expiry the process is killed
// and a wrapped EXEC error is returned.
func Capture(ctx context.Context, cmd string) (stdout, stderr []byte, exitCode int, err error) {
	// Use shell to interpret the command (handles pipes, quoting, etc.)
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	command := osexec.CommandContext(ctx, shell, "-c", cmd)

	var stdoutBuf, stderrBuf bytes.Buffer
	command.Stdout = &stdoutBuf
	command.Stderr = &stderrBuf

	runErr := command.Run()
	if runErr != nil {
		if ctx.Err() != nil {
			return stdoutBuf.Bytes(), stderrBuf.Bytes(), -1, errors.WrapWithCode(ctx.Err(), errors.ErrExec,
				"Command timed out: "+cmd,
				"The command exceeded its deadline. Increase the poll interval or check the host load.")
		}
		if exitErr, ok := runErr.(*osexec.ExitError); ok {
			return stdoutBuf.Bytes(), stderrBuf.Bytes(), exitErr.ExitCode(), nil
		}
		return stdoutBuf.Bytes(), stderrBuf.Bytes(), -1, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run the command locally",
			"Make sure the command exists and is executable.")
	}

	return stdoutBuf.Bytes(), stderrBuf.Bytes(), 0, nil
}
