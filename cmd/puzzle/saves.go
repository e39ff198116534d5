package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
	"github.com/vovakirdan/tui-puzzle/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved puzzles",
	Long: `List the puzzles saved with W or Ctrl+S during play.

Examples:
  puzzle saves
  puzzle saves export 4x4 > 4x4.json
  puzzle saves delete 4x4
  puzzle play --resume 4x4`,
	Args: cobra.NoArgs,
	RunE: runSavesList,
}

var savesExportCmd = &cobra.Command{
	Use:   "export <slot>",
	Short: "Print a saved puzzle as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesExport,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a saved puzzle",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesExportCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}

func runSavesList(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening puzzle database: %w", err)
	}
	defer store.Close()

	saves, err := store.ListStates()
	if err != nil {
		return err
	}
	if len(saves) == 0 {
		fmt.Println("No saved puzzles.")
		return nil
	}

	// Calculate column widths
	maxSlotLen := 4 // "Slot" header
	for _, s := range saves {
		maxSlotLen = max(maxSlotLen, len(s.Slot))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxSlotLen, "Slot", "Grid", "Saved")
	fmt.Printf("  %-*s  %-6s  %s\n", maxSlotLen, "----", "----", "-----")
	for _, s := range saves {
		grid := fmt.Sprintf("%dx%d", s.Rows, s.Cols)
		fmt.Printf("  %-*s  %-6s  %s\n", maxSlotLen, s.Slot, grid, s.UpdatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'puzzle play --resume <slot>' to continue a puzzle.")
	return nil
}

func runSavesExport(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening puzzle database: %w", err)
	}
	defer store.Close()

	entry, err := store.LoadState(args[0])
	if err != nil {
		return err
	}
	state, err := puzzle.DecodeState(entry.State)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func runSavesDelete(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening puzzle database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteState(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s.\n", args[0])
	return nil
}
