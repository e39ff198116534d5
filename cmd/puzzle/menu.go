package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzle/internal/core"
	"github.com/vovakirdan/tui-puzzle/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzle/internal/registry"
	"github.com/vovakirdan/tui-puzzle/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a grid picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a grid.
Esc in a puzzle returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select grid
  Tab          - Scoreboard
  L            - Saved puzzles
  Q            - Quit

Examples:
  puzzle menu
  puzzle menu --fps 60
  puzzle menu --db ./puzzle.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open storage
	store := openStore()
	logger := openFileLogger()
	cfg := runtimeConfig()

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		var game registry.Game
		slot := ""
		switch {
		case menuResult.Quit:
			// Cleanup
			closeStore(store)
			return

		case menuResult.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				closeStore(store)
				return
			}
			continue

		case menuResult.WantsSaves:
			resume, goBack, svErr := tui.RunSaves(store, cfg.ScreenW, cfg.ScreenH)
			if svErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", svErr)
			}
			if resume == "" {
				if !goBack {
					closeStore(store)
					return
				}
				continue
			}
			if err := registerSaved(store, resume); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			game, err = tui.ResumeGame(store, resume)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			slot = resume

		case menuResult.GameID != "":
			game, err = registry.Create(menuResult.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				continue
			}

		default:
			closeStore(store)
			return
		}

		if !playOnce(game, store, cfg, slot, logger) {
			break
		}
		// Loop back to menu
	}

	closeStore(store)
}

// playOnce runs one puzzle and reports whether to go back to the menu.
func playOnce(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, slot string, logger *log.Logger) bool {
	// Update seed for each game
	if flagSeed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	back, err := tui.Run(game, tui.Options{
		Store:  store,
		Config: cfg,
		Slot:   slot,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return false
	}
	return back
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
