package sshexec

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSettingsPlainHost(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USER", "pi")

	s := resolveSettings("192.168.4.160")

	assert.Equal(t, "192.168.4.160", s.hostname)
	assert.Equal(t, "22", s.port)
	assert.Equal(t, "pi", s.user)
	assert.Equal(t, "192.168.4.160:22", s.address())
}

func TestResolveSettingsUserAtHost(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USER", "pi")

	s := resolveSettings("admin@controller")

	assert.Equal(t, "controller", s.hostname)
	assert.Equal(t, "admin", s.user)
}

func TestResolveSettingsHostWithPort(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s := resolveSettings("controller:2222")

	assert.Equal(t, "controller", s.hostname)
	assert.Equal(t, "2222", s.port)
}

func TestResolveSettingsNonNumericPortIsHostname(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s := resolveSettings("weird:name")

	assert.Equal(t, "weird:name", s.hostname)
	assert.Equal(t, "22", s.port)
}

func TestResolveSettingsSSHConfigAlias(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USER", "pi")

	sshDir := filepath.Join(home, ".ssh")
	require.NoError(t, os.MkdirAll(sshDir, 0o700))
	cfg := `Host controller
  HostName 192.168.4.161
  Port 2200
  User slurm
  IdentityFile ~/.ssh/id_cluster
`
	require.NoError(t, os.WriteFile(filepath.Join(sshDir, "config"), []byte(cfg), 0o600))

	s := resolveSettings("controller")

	assert.Equal(t, "192.168.4.161", s.hostname)
	assert.Equal(t, "2200", s.port)
	assert.Equal(t, "slurm", s.user)
	assert.Equal(t, filepath.Join(home, ".ssh", "id_cluster"), s.identityFile)
}

func TestResolveSettingsExplicitUserBeatsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	sshDir := filepath.Join(home, ".ssh")
	require.NoError(t, os.MkdirAll(sshDir, 0o700))
	cfg := "Host controller\n  User slurm\n"
	require.NoError(t, os.WriteFile(filepath.Join(sshDir, "config"), []byte(cfg), 0o600))

	// user@host syntax is resolved before the config lookup, but the
	// config's User still wins within resolveSettings; Dial's explicit
	// user parameter is what overrides everything.
	s := resolveSettings("admin@controller")
	assert.Equal(t, "slurm", s.user)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/pi")

	assert.Equal(t, "/home/pi/.ssh/id_cluster", expandPath("~/.ssh/id_cluster"))
	assert.Equal(t, "/etc/keys/id", expandPath("/etc/keys/id"))
}

func TestSuggestionForDialError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "refused",
			err:  stderrors.New("dial tcp 1.2.3.4:22: connect: connection refused"),
			want: "Is SSH running",
		},
		{
			name: "no route",
			err:  stderrors.New("dial tcp 1.2.3.4:22: connect: no route to host"),
			want: "Can't route",
		},
		{
			name: "timeout",
			err:  stderrors.New("dial tcp 1.2.3.4:22: i/o timeout"),
			want: "timed out",
		},
		{
			name: "anything else",
			err:  stderrors.New("some other failure"),
			want: "reachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, suggestionForDialError(tt.err), tt.want)
		})
	}
}
