package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzle/internal/registry"
	"github.com/vovakirdan/tui-puzzle/internal/storage"
)

// ResumeGame creates the game stored in slot and restores its state. The
// game must be registered and implement registry.Saver.
func ResumeGame(store *storage.Store, slot string) (registry.Game, error) {
	if store == nil {
		return nil, fmt.Errorf("resume %q: no database", slot)
	}
	entry, err := store.LoadState(slot)
	if err != nil {
		return nil, err
	}

	game, err := registry.Create(entry.GameID)
	if err != nil {
		return nil, fmt.Errorf("resume %q: %w", slot, err)
	}
	saver, ok := game.(registry.Saver)
	if !ok {
		return nil, fmt.Errorf("resume %q: game %s cannot restore saves", slot, entry.GameID)
	}
	if err := saver.RestoreState(entry.State); err != nil {
		return nil, fmt.Errorf("resume %q: %w", slot, err)
	}
	return game, nil
}
