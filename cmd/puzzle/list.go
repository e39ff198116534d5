package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzle/internal/picture"
	"github.com/vovakirdan/tui-puzzle/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available grids",
	Long:  `Shows the puzzle grids from the config and the built-in picture patterns.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No grids available.")
		return
	}

	fmt.Println("Available grids:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print grids
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Printf("Picture: %s\n", pictureName())
	fmt.Printf("Patterns: %v\n", picture.Patterns())
	fmt.Println()
	fmt.Println("Run 'puzzle play <id>' to play a grid.")
}

func pictureName() string {
	if puzzleCfg.Image.Path != "" {
		return puzzleCfg.Image.Path
	}
	return "pattern " + puzzleCfg.Image.Pattern
}
