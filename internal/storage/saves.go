package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoSave is returned when a save slot does not exist.
var ErrNoSave = errors.New("storage: no such save")

// SaveEntry is a stored puzzle in a named slot.
type SaveEntry struct {
	Slot      string
	GameID    string
	Rows      int
	Cols      int
	State     []byte // Encoded puzzle state
	UpdatedAt time.Time
}

// SaveState stores a puzzle state in slot, replacing what was there.
func (s *Store) SaveState(slot, gameID string, rows, cols int, state []byte) error {
	if slot == "" {
		return fmt.Errorf("storage: empty save slot")
	}
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, game_id, rows, cols, state)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
			game_id = excluded.game_id,
			rows = excluded.rows,
			cols = excluded.cols,
			state = excluded.state,
			updated_at = CURRENT_TIMESTAMP`,
		slot, gameID, rows, cols, string(state),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save state %q: %w", slot, err)
	}
	return nil
}

// LoadState returns the puzzle stored in slot, or ErrNoSave.
func (s *Store) LoadState(slot string) (*SaveEntry, error) {
	var e SaveEntry
	var state string
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT slot, game_id, rows, cols, state, updated_at FROM saves WHERE slot = ?`,
		slot,
	).Scan(&e.Slot, &e.GameID, &e.Rows, &e.Cols, &state, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: load %q: %w", slot, ErrNoSave)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load state %q: %w", slot, err)
	}

	e.State = []byte(state)
	e.UpdatedAt = parseTime(updatedAt)
	return &e, nil
}

// ListStates returns every save, most recently updated first. State is not
// loaded.
func (s *Store) ListStates() ([]SaveEntry, error) {
	rows, err := s.db.Query(
		`SELECT slot, game_id, rows, cols, updated_at
		 FROM saves
		 ORDER BY updated_at DESC, slot ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var entries []SaveEntry
	for rows.Next() {
		var e SaveEntry
		var updatedAt any
		if err := rows.Scan(&e.Slot, &e.GameID, &e.Rows, &e.Cols, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteState removes a save slot. Deleting a missing slot returns ErrNoSave.
func (s *Store) DeleteState(slot string) error {
	res, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot delete state %q: %w", slot, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete state %q: %w", slot, err)
	}
	if n == 0 {
		return fmt.Errorf("storage: delete %q: %w", slot, ErrNoSave)
	}
	return nil
}
