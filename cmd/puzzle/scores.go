package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzle/internal/registry"
	"github.com/vovakirdan/tui-puzzle/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <grid>",
	Short: "Show high scores for a grid",
	Long: `Display the top 10 scores for the specified grid.

Examples:
  puzzle scores 3x3
  puzzle scores 5x5
  puzzle scores 4x4 --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the grid")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Custom grids have no registry entry unless played in this run.
	title := "Image Puzzle " + gameID
	if registry.Exists(gameID) {
		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}
		title = game.Title()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening puzzle database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Scores for %s cleared.\n", gameID)
		return nil
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'puzzle play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.Moves, dateStr)
	}

	// Show stats
	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Fewest moves: %d  Solved: %d  Average: %.0f\n",
			stats.HighScore, stats.BestMoves, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
