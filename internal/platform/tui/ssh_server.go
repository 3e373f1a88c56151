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
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the frame rate of each session.
	TickRate int

	// Game is the snake configuration sessions play with until replaced
	// by SetGameConfig.
	Game config.SnakeConfig

	// LogLevel filters the server log.
	LogLevel log.Level
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.snake/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
		Game:        config.DefaultSnakeConfig(),
		LogLevel:    log.InfoLevel,
	}
}

// SSHServer serves one snake game per SSH session.
type SSHServer struct {
	config    SSHServerConfig
	server    *ssh.Server
	store     *storage.Store
	logger    *log.Logger
	stopWatch func()

	mu   sync.RWMutex
	game config.SnakeConfig // Config for sessions started from now on
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-ssh",
		Level:           cfg.LogLevel,
	})

	if err := cfg.Game.Validate(); err != nil {
		return nil, fmt.Errorf("tui: game config: %w", err)
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
		game:   cfg.Game,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	// Middleware runs last to first: logging wraps the PTY check, which
	// wraps the game.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a snake program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewModel(snake.New(s.GameConfig()), s.store, cfg,
		WithPlayer(sess.User()),
		WithLogger(s.logger.With("user", sess.User())),
		WithRenderer(bubbletea.MakeRenderer(sess)),
	)
	go model.saveWhenDone(sess.Context())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// GameConfig returns the config new sessions will play with.
func (s *SSHServer) GameConfig() config.SnakeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game
}

// SetGameConfig replaces the config for sessions started after the call.
// Running sessions keep the config they started with.
func (s *SSHServer) SetGameConfig(cfg config.SnakeConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("tui: game config: %w", err)
	}
	s.mu.Lock()
	s.game = cfg
	s.mu.Unlock()
	return nil
}

// WatchConfig applies every config reloaded by w to new sessions until
// the server shuts down. The server takes ownership of w.
func (s *SSHServer) WatchConfig(w *config.Watcher) {
	ctx, cancel := context.WithCancel(context.Background())
	s.stopWatch = func() {
		cancel()
		w.Close()
	}

	s.logger.Info("watching config", "path", w.Path())
	go w.Run(ctx,
		func(cfg config.SnakeConfig) {
			if err := s.SetGameConfig(cfg); err != nil {
				s.logger.Warn("config reload rejected", "error", err)
				return
			}
			s.logger.Info("config reloaded", "path", w.Path(), "period", cfg.Clock.Period)
		},
		func(err error) {
			s.logger.Warn("config reload failed", "error", err)
		},
	)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		if s.stopWatch != nil {
			s.stopWatch()
		}
		s.closeStore()
		return fmt.Errorf("tui: serve: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.stopWatch != nil {
		s.stopWatch()
		s.stopWatch = nil
	}

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

// closeStore releases the scores database, if open.
func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("could not close scores database", "error", err)
	}
	s.store = nil
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
