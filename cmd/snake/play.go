package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLogPath string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake locally",
	Long: `Start a local game of snake.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Esc            - Pause
  R                - Restart (saves the current score)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit (saves the current score)

Difficulty options:
  easy   - Snake advances every 750ms
  normal - Snake advances every 500ms
  hard   - Snake advances every 250ms

Examples:
  snake play
  snake play --difficulty easy
  snake play --config ./my-snake.yaml
  snake play --log ./snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags shared by "snake" and "snake play".
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLogPath, "log", "", "Write game events to this file")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with scores (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		fatalf("%v", err)
	}
}

// playGame runs a local game. Every resource it opens is released before
// it returns, so the caller may exit straight away.
func playGame() error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger, closeLog, err := openEventLog(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(snake.New(gameCfg), store, cfg,
		tui.WithLogger(logger),
		tui.WithPlayer(playerName()),
	); err != nil {
		logger.Error("game failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openEventLog returns a debug logger writing to path, or a discarding
// logger when path is empty. The terminal belongs to the game, so events
// never go to stderr during play.
func openEventLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// playerName returns the --player flag or the current user's name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
