package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a snake config file whenever it changes on disk.
type Watcher struct {
	path    string
	preset  DifficultyPreset
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching path. The preset is applied to every reload,
// the same way it is applied at startup.
func NewWatcher(path string, preset DifficultyPreset) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	// Watch the directory: editors often replace the file rather than write it.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, preset: preset, watcher: fw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls onChange with each config reloaded from disk until ctx is done
// or the watcher is closed. Failed reloads go to onError and the caller keeps
// its previous config.
func (w *Watcher) Run(ctx context.Context, onChange func(SnakeConfig), onError func(error)) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, changed, err := w.reload()
			if err != nil {
				onError(err)
				continue
			}
			if changed {
				onChange(cfg)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			onError(err)
		}
	}
}

// reload reads and validates the file. An empty file is a truncation in
// progress and is skipped.
func (w *Watcher) reload() (SnakeConfig, bool, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return SnakeConfig{}, false, fmt.Errorf("failed to read config %s: %w", w.path, err)
	}
	if len(data) == 0 {
		return SnakeConfig{}, false, nil
	}

	cfg, err := ParseSnake(data)
	if err != nil {
		return SnakeConfig{}, false, fmt.Errorf("failed to parse config %s: %w", w.path, err)
	}
	if err := ApplySnakePreset(&cfg, w.preset); err != nil {
		return SnakeConfig{}, false, err
	}
	return cfg, true, nil
}

// Close stops watching. Run returns once the watcher is closed.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
