package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Window: WindowConfig{
			Title: "Snake!",
		},
		Grid: GridConfig{
			Cols:     13,
			Rows:     13,
			CellSize: 20,
		},
		Clock: ClockConfig{
			Period: 500 * time.Millisecond,
		},
		Head: HeadConfig{
			Facing: "right",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
