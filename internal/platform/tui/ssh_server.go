package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/neon-arena/internal/arena"
	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/config"
	"github.com/vovakirdan/neon-arena/internal/storage"
)

// SSHServer serves the arena over SSH via Wish. Every connection gets its
// own shell and a silent audio session; plays go to one shared ledger.
type SSHServer struct {
	cfg    config.AppConfig
	server *ssh.Server
	ledger *storage.Ledger
	logger *log.Logger

	mu     sync.Mutex
	shells map[ssh.Session]*arena.Shell
}

// NewSSHServer creates a server listening on cfg.SSH.Address. logger may
// be nil.
func NewSSHServer(cfg config.AppConfig, ledger *storage.Ledger, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arena-ssh",
		})
	}

	srv := &SSHServer{
		cfg:    cfg,
		ledger: ledger,
		logger: logger,
		shells: make(map[ssh.Session]*arena.Shell),
	}

	// Ensure host key directory exists
	if dir := filepath.Dir(cfg.SSH.HostKey); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("cannot create host key directory: %w", err)
		}
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.SSH.Address),
		wish.WithHostKeyPath(cfg.SSH.HostKey),
		wish.WithIdleTimeout(cfg.SSH.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a portal model for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sess.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	a := audio.NewSession(audio.OpenDiscard, s.logger)
	arena.ConfigureAudio(a, s.cfg.Audio)
	shell := arena.New(a, s.cfg,
		arena.WithLedger(s.ledger),
		arena.WithLogger(s.logger.With("user", sess.User())),
	)

	model, err := NewModel(shell, Options{})
	if err != nil {
		s.logger.Error("cannot create model", "err", err)
		return nil, nil
	}

	s.mu.Lock()
	s.shells[sess] = shell
	s.mu.Unlock()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// sessionMiddleware logs SSH session events and releases the session's
// shell once the program has exited.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.release(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// release records an unfinished round and closes the connection's audio.
func (s *SSHServer) release(sess ssh.Session) {
	s.mu.Lock()
	shell, ok := s.shells[sess]
	delete(s.shells, sess)
	s.mu.Unlock()
	if !ok {
		return
	}

	shell.Teardown()
	if c, ok := shell.Audio().(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			s.logger.Debug("closing audio", "err", err)
		}
	}
}

// Sessions returns the number of connected players.
func (s *SSHServer) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shells)
}

// ListenAndServe starts the SSH server and blocks until an interrupt or
// ctx is done.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.cfg.SSH.Address)

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.cfg.SSH.Address
}
