// snake is a tick-driven Snake game for the terminal.
//
// Usage:
//
//	snake                - Play locally (same as "snake play")
//	snake play           - Play locally
//	snake serve          - Start SSH server for remote play
//	snake scores         - Show high scores
//	snake config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Use a custom snake YAML config
//	--difficulty <preset> - Clock preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a tick-driven snake for your terminal",
	Long: `Snake moves one cell every clock period. Steer it onto the apple
to score a point; a new apple appears on the next tick.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard
  snake serve --ssh :2222
  snake scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Clock preset: easy, normal, hard")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the snake configuration from --config and
// applies the --difficulty preset on top.
func loadGameConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplySnakePreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// fatalf prints an error to stderr and exits with status 1.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
