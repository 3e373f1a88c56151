package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func newTestServerConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	return cfg
}

func TestNewSSHServer(t *testing.T) {
	cfg := newTestServerConfig(t)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	t.Cleanup(srv.closeStore)

	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if srv.store == nil {
		t.Error("Server should have opened the scores database")
	}
	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("Host key directory should exist: %v", err)
	}
}

func TestNewSSHServerRejectsInvalidGame(t *testing.T) {
	cfg := newTestServerConfig(t)
	cfg.Game.Grid.Cols = 0

	if _, err := NewSSHServer(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestSetGameConfig(t *testing.T) {
	srv, err := NewSSHServer(newTestServerConfig(t))
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	t.Cleanup(srv.closeStore)

	next := config.DefaultSnakeConfig()
	next.Grid.Rows = 9
	if err := srv.SetGameConfig(next); err != nil {
		t.Fatalf("SetGameConfig failed: %v", err)
	}
	if got := srv.GameConfig().Grid.Rows; got != 9 {
		t.Errorf("Rows = %d, expected 9", got)
	}

	bad := next
	bad.Clock.Period = 0
	if err := srv.SetGameConfig(bad); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
	if got := srv.GameConfig().Clock.Period; got != next.Clock.Period {
		t.Errorf("Rejected config should not replace the current one, period = %v", got)
	}
}
