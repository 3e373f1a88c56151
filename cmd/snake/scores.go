package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top snake scores.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --interactive
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored snake scores")
}

func runScores(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fatalf("%v", err)
	}
	title := gameCfg.Window.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(snake.GameID); err != nil {
			store.Close()
			fatalf("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, snake.GameID, title, width, height); err != nil {
			store.Close()
			fatalf("running scoreboard: %v", err)
		}
		return
	}

	scores, err := store.TopScores(snake.GameID, flagLimit)
	if err != nil {
		store.Close()
		fatalf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %s\n", i+1, player, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(snake.GameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
