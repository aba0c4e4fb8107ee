// Package testing provides a mock implementation of the sshexec.Runner
// interface for exercising remote-query code without a live SSH connection.
package testing

import (
	"context"
	"errors"
	"regexp"
	"sync"
)

// CommandResponse defines a canned response for a specific command pattern.
type CommandResponse struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Error    error
}

// MockRunner simulates a remote execution channel for testing.
// Commands are matched first exactly, then against registered regexp
// patterns. Unmatched commands return exit code 127.
type MockRunner struct {
	mu       sync.Mutex
	target   string
	closed   bool
	commands map[string]CommandResponse // pattern -> response
	Calls    []string                   // every command passed to Exec, in order
}

// NewMockRunner creates a mock channel identifying as the given target.
func NewMockRunner(target string) *MockRunner {
	return &MockRunner{
		target:   target,
		commands: make(map[string]CommandResponse),
	}
}

// Respond registers a canned response for a command or regexp pattern.
func (m *MockRunner) Respond(pattern string, resp CommandResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[pattern] = resp
}

// Exec implements sshexec.Runner.
func (m *MockRunner) Exec(ctx context.Context, cmd string) (stdout, stderr []byte, exitCode int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, nil, -1, errors.New("connection closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, -1, err
	}
	m.Calls = append(m.Calls, cmd)

	if resp, ok := m.commands[cmd]; ok {
		return resp.Stdout, resp.Stderr, resp.ExitCode, resp.Error
	}
	for pattern, resp := range m.commands {
		if matched, _ := regexp.MatchString(pattern, cmd); matched {
			return resp.Stdout, resp.Stderr, resp.ExitCode, resp.Error
		}
	}

	return nil, []byte("command not found\n"), 127, nil
}

// Close implements sshexec.Runner.
func (m *MockRunner) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Target implements sshexec.Runner.
func (m *MockRunner) Target() string {
	return m.target
}
