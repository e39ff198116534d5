// puzzle is a terminal image puzzle: a picture is cut into a grid of pieces,
// shuffled, and put back together by swapping pairs of pieces.
//
// Usage:
//
//	puzzle list              - List available grids
//	puzzle play <grid>       - Play a puzzle
//	puzzle menu              - Start menu to pick grids interactively
//	puzzle serve             - Start SSH server for remote play
//	puzzle scores <grid>     - Show high scores for a grid
//	puzzle saves             - List, export or delete saved puzzles
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible shuffles
//	--db <path>          - Set database path (default: ~/.puzzle/puzzle.db)
//	--config <path>      - Use a custom puzzle config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-puzzle/internal/config"
	"github.com/vovakirdan/tui-puzzle/internal/core"
	"github.com/vovakirdan/tui-puzzle/internal/games/imgpuzzle"
	"github.com/vovakirdan/tui-puzzle/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Loaded by the root command before any subcommand runs.
	puzzleCfg config.PuzzleConfig
	logger    = log.New(os.Stderr)
	logFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Image Puzzle - put a shuffled picture back together in your terminal",
	Long: `Image Puzzle cuts a picture into a grid of pieces and shuffles them.
Swap pairs of pieces until the picture is whole again.

Available commands:
  list     - Show all available grids
  play     - Play a specific grid directly
  menu     - Interactive grid picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  saves    - Manage saved puzzles

Examples:
  puzzle list
  puzzle play 4x4
  puzzle play --rows 2 --cols 6 --image ./cat.jpg
  puzzle menu
  puzzle serve --ssh :2222
  puzzle scores 3x3`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puzzle/puzzle.db", "Path to puzzle database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
}

// setup loads the puzzle config and binds its presets to the registry.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	cfg, err := config.LoadPuzzle(flagConfig)
	if err != nil {
		return err
	}
	puzzleCfg = cfg
	imgpuzzle.Register(cfg, true)
	return nil
}

// openFileLogger sends logs to ~/.puzzle/puzzle.log while Bubble Tea owns the
// terminal. Logging is discarded if the file cannot be opened.
func openFileLogger() *log.Logger {
	dir := config.UserDir()
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "puzzle.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	logFile = f

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "puzzle",
		Level:           logger.GetLevel(),
	})
	return l
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the puzzle database. Interactive commands keep working
// without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open puzzle database: %v\n", err)
		return nil
	}
	return store
}
