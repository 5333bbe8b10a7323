package server

import (
	"bufio"
	"context"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"webterm/internal/catalog"
	"webterm/internal/errors"
	"webterm/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, users ...string) *Server {
	t.Helper()
	m := session.NewManager(catalog.Default(), session.DefaultOptions(), 0)
	s, err := New(Config{
		HostKeyPath:  filepath.Join(t.TempDir(), "host_ed25519"),
		AllowedUsers: users,
	}, m)
	require.NoError(t, err)
	return s
}

func TestAllowed(t *testing.T) {
	s := newServer(t, "guest", "team-*")

	tests := []struct {
		user string
		want bool
	}{
		{"guest", true},
		{"team-a", true},
		{"team-", true},
		{"root", false},
		{"guests", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Allowed(tt.user), tt.user)
	}
}

func TestAllowedEmptyListRejectsEveryone(t *testing.T) {
	s := newServer(t)
	assert.False(t, s.Allowed("guest"))
}

func TestNewRejectsBadPattern(t *testing.T) {
	m := session.NewManager(catalog.Default(), session.DefaultOptions(), 0)
	_, err := New(Config{AllowedUsers: []string{"[unclosed"}}, m)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestAddress(t *testing.T) {
	s := newServer(t, "*")
	assert.Equal(t, DefaultAddress, s.Address())

	m := session.NewManager(catalog.Default(), session.DefaultOptions(), 0)
	s, err := New(Config{
		Address:     "0.0.0.0:2323",
		HostKeyPath: filepath.Join(t.TempDir(), "host_ed25519"),
	}, m)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:2323", s.Address())
}

func TestServeAndShutdown(t *testing.T) {
	s := newServer(t, "*")

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, l) }()

	conn, err := net.DialTimeout("tcp", l.Addr().String(), 2*time.Second)
	require.NoError(t, err)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	banner, err := bufio.NewReader(conn).ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(banner, "SSH-2.0-"), banner)
	conn.Close()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}
