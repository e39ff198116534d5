package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzle/internal/games/imgpuzzle"
	"github.com/vovakirdan/tui-puzzle/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzle/internal/registry"
	"github.com/vovakirdan/tui-puzzle/internal/storage"
)

var (
	flagRows   int
	flagCols   int
	flagImage  string
	flagResume string
	flagSlot   string
)

var playCmd = &cobra.Command{
	Use:   "play [grid]",
	Short: "Play a puzzle",
	Long: `Start a puzzle with the given grid, or the config's default grid.

Controls:
  Arrows/hjkl    - Move the cursor
  Enter/Space    - Pick the piece under the cursor (mouse clicks work too)
  T              - Hint: put one piece home
  S              - Shuffle again
  G              - Next grid size
  W/Ctrl+S       - Save the puzzle
  P              - Pause
  R              - New puzzle (after solving)
  Q/Ctrl+C       - Quit

Examples:
  puzzle play
  puzzle play 4x4
  puzzle play --rows 2 --cols 6
  puzzle play 3x3 --image ./cat.png
  puzzle play --resume 4x4`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Custom number of rows (with --cols)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Custom number of columns (with --rows)")
	playCmd.Flags().StringVar(&flagImage, "image", "", "Picture file (png, jpeg, gif, bmp, tiff, webp)")
	playCmd.Flags().StringVar(&flagResume, "resume", "", "Resume the puzzle saved in this slot")
	playCmd.Flags().StringVar(&flagSlot, "slot", "", "Save slot name (default: the grid id)")
}

func runPlay(_ *cobra.Command, args []string) error {
	if flagImage != "" {
		puzzleCfg.Image.Path = flagImage
		imgpuzzle.Register(puzzleCfg, true)
	}

	// Open storage
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game, slot, err := pickGame(store, args)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Store:  store,
		Config: runtimeConfig(),
		Slot:   slot,
		Logger: openFileLogger(),
	}

	// Run the game
	if _, err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("running puzzle: %w", err)
	}
	return nil
}

// pickGame creates the game from --resume, --rows/--cols or the grid
// argument, in that order, and returns it with its save slot.
func pickGame(store *storage.Store, args []string) (registry.Game, string, error) {
	if flagResume != "" {
		if err := registerSaved(store, flagResume); err != nil {
			return nil, "", err
		}
		game, err := tui.ResumeGame(store, flagResume)
		if err != nil {
			return nil, "", err
		}
		return game, flagResume, nil
	}

	var gameID string
	switch {
	case flagRows != 0 || flagCols != 0:
		if flagRows <= 0 || flagCols <= 0 {
			return nil, "", errors.New("--rows and --cols must both be positive")
		}
		gameID = fmt.Sprintf("%dx%d", flagRows, flagCols)
	case len(args) == 1:
		gameID = args[0]
	default:
		gameID = fmt.Sprintf("%dx%d", puzzleCfg.Grid.Rows, puzzleCfg.Grid.Cols)
	}

	// Check if the grid exists
	if !registry.Exists(gameID) && !imgpuzzle.RegisterGrid(puzzleCfg, gameID) {
		return nil, "", fmt.Errorf("unknown grid %q; run 'puzzle list' to see available grids", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return nil, "", err
	}
	return game, flagSlot, nil
}

// registerSaved makes sure the grid of a saved puzzle is registered, so
// custom grids can be resumed by a later run.
func registerSaved(store *storage.Store, slot string) error {
	if store == nil {
		return errors.New("cannot resume without a database")
	}
	entry, err := store.LoadState(slot)
	if err != nil {
		return err
	}
	if !registry.Exists(entry.GameID) {
		imgpuzzle.RegisterGrid(puzzleCfg, entry.GameID)
	}
	return nil
}
