// Package server exposes sessions over SSH. Every connection gets its own
// session from the manager and a Bubble Tea view rendered for its terminal.
package server

import (
	"context"
	"net"
	"time"

	"webterm/internal/errors"
	"webterm/internal/log"
	"webterm/internal/session"
	"webterm/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/gobwas/glob"
)

// DefaultAddress binds the loopback interface on a free port
const DefaultAddress = "127.0.0.1:0"

type sessionKey struct{}

// Config holds the SSH server settings
type Config struct {
	// Address is the host:port to listen on (default: 127.0.0.1:0)
	Address string
	// HostKeyPath is the ed25519 host key, generated when missing
	HostKeyPath string
	// AllowedUsers are glob patterns matched against the SSH user name
	AllowedUsers []string
	// IdleTimeout closes quiet connections (0 = never)
	IdleTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration
}

// Server serves sessions from a manager over SSH
type Server struct {
	cfg     Config
	manager *session.Manager
	allowed []glob.Glob
	srv     *ssh.Server
	logger  *log.Logger
}

// New creates a server for m. It fails when an allowed user pattern does not
// compile or the host key cannot be loaded.
func New(cfg Config, m *session.Manager) (*Server, error) {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		cfg:     cfg,
		manager: m,
		logger:  log.LogWithFields(log.F("component", "ssh")),
	}
	for _, pattern := range cfg.AllowedUsers {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewConfigError("invalid allowed user pattern", pattern, errors.InvalidConfig, err)
		}
		s.allowed = append(s.allowed, g)
	}

	opts := []ssh.Option{
		wish.WithAddress(s.Address()),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithPasswordAuth(s.passwordHandler),
		wish.WithMiddleware(
			bm.Middleware(s.teaHandler),
			s.sessionMiddleware(),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(log.Default().Std()),
		),
	}
	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	srv, err := wish.NewServer(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SSH server")
	}
	s.srv = srv
	return s, nil
}

// Address returns the configured listen address
func (s *Server) Address() string {
	return s.cfg.Address
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", s.Address())
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.Address())
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is done, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(l)
	}()
	s.logger.With(log.F("address", l.Addr().String())).Info("SSH server started")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return errors.Wrap(err, "serve error")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		s.logger.WithError(err).Error("shutdown error")
		return err
	}
	s.logger.Info("SSH server stopped")
	return nil
}

// Allowed reports whether user matches one of the allowed patterns.
func (s *Server) Allowed(user string) bool {
	for _, g := range s.allowed {
		if g.Match(user) {
			return true
		}
	}
	return false
}

func (s *Server) passwordHandler(ctx ssh.Context, _ string) bool {
	return s.authenticate(ctx.User(), "password")
}

func (s *Server) publicKeyHandler(ctx ssh.Context, _ ssh.PublicKey) bool {
	return s.authenticate(ctx.User(), "publickey")
}

func (s *Server) authenticate(user, method string) bool {
	if !s.Allowed(user) {
		s.logger.With(log.F("user", user), log.F("method", method)).Warn("rejected user")
		return false
	}
	return true
}

// sessionMiddleware opens a webterm session for the connection and closes
// it when the connection ends.
func (s *Server) sessionMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			ws, err := s.manager.Open(sess.User())
			if err != nil {
				wish.Fatalln(sess, err)
				return
			}
			defer s.manager.Close(ws.ID())

			sess.Context().SetValue(sessionKey{}, ws)
			next(sess)
		}
	}
}

func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	ws, ok := sess.Context().Value(sessionKey{}).(*session.Session)
	if !ok {
		return nil, nil
	}
	return tui.New(ws, bm.MakeRenderer(sess)), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}
