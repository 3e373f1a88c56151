// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Window WindowConfig `yaml:"window"`
	Grid   GridConfig   `yaml:"grid"`
	Clock  ClockConfig  `yaml:"clock"`
	Head   HeadConfig   `yaml:"head"`
	Apple  AppleConfig  `yaml:"apple"`
}

// WindowConfig defines presentation settings.
type WindowConfig struct {
	Title string `yaml:"title"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	CellSize float64 `yaml:"cell_size"` // World units per cell
}

// ClockConfig defines the game clock.
type ClockConfig struct {
	Period time.Duration `yaml:"period"` // Time between head moves
}

// HeadConfig defines the snake head's starting state.
type HeadConfig struct {
	StartCol int    `yaml:"start_col"` // Relative to the centre cell
	StartRow int    `yaml:"start_row"`
	Facing   string `yaml:"facing"` // up, right, down or left
}

// AppleConfig defines apple spawning.
type AppleConfig struct {
	AvoidHead bool `yaml:"avoid_head"`
}

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Cols, c.Grid.Rows)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %v", ErrInvalid, c.Grid.CellSize)
	}
	if c.Clock.Period <= 0 {
		return fmt.Errorf("%w: clock period must be positive, got %v", ErrInvalid, c.Clock.Period)
	}
	switch strings.ToLower(strings.TrimSpace(c.Head.Facing)) {
	case "up", "right", "down", "left":
	default:
		return fmt.Errorf("%w: unknown head facing %q", ErrInvalid, c.Head.Facing)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PeriodForPreset returns the clock period for a difficulty preset.
// Unknown presets return 0, meaning "keep the configured period".
func PeriodForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 750 * time.Millisecond
	case DifficultyNormal:
		return 500 * time.Millisecond
	case DifficultyHard:
		return 250 * time.Millisecond
	default:
		return 0
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	period := PeriodForPreset(preset)
	if period == 0 {
		return fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, preset)
	}
	cfg.Clock.Period = period
	return nil
}
