package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatcher(t *testing.T, path string, preset DifficultyPreset) (<-chan SnakeConfig, <-chan error) {
	t.Helper()
	w, err := NewWatcher(path, preset)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		w.Close()
	})

	changes := make(chan SnakeConfig, 16)
	errs := make(chan error, 16)
	go w.Run(ctx,
		func(cfg SnakeConfig) {
			select {
			case changes <- cfg:
			default:
			}
		},
		func(err error) {
			select {
			case errs <- err:
			default:
			}
		},
	)
	return changes, errs
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  rows: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changes, _ := startWatcher(t, path, DifficultyHard)

	if err := os.WriteFile(path, []byte("grid:\n  rows: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Grid.Rows != 9 {
				continue
			}
			if cfg.Clock.Period != PeriodForPreset(DifficultyHard) {
				t.Errorf("Period = %v, expected the preset to be reapplied", cfg.Clock.Period)
			}
			return
		case <-timeout:
			t.Fatal("Timed out waiting for reload")
		}
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  rows: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, errs := startWatcher(t, path, "")

	if err := os.WriteFile(path, []byte("grid:\n  cols: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errs:
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Expected ErrInvalid, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for reload error")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  rows: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changes, errs := startWatcher(t, path, "")

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("not: [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changes:
		t.Errorf("Unexpected reload: %+v", cfg)
	case err := <-errs:
		t.Errorf("Unexpected error: %v", err)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if got := ResolvePath("custom.yaml"); got != "custom.yaml" {
		t.Errorf("ResolvePath(custom) = %q", got)
	}
	if got := ResolvePath(""); got != "" {
		t.Errorf("ResolvePath without files = %q, expected embedded", got)
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join("configs", "snake.yaml")
	if err := os.WriteFile(local, []byte("grid:\n  rows: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := ResolvePath(""); got != local {
		t.Errorf("ResolvePath = %q, expected %q", got, local)
	}
}
