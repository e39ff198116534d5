package puzzle

import (
	"encoding/json"
	"fmt"
)

// State is the persisted form of a puzzle: the grid and the current pairs.
// The image is not part of it; it is supplied again on restore.
type State struct {
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Pairs []Pair `json:"pairs"`
}

// MarshalJSON encodes a pair as a two-element array [cell, item].
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Cell, p.Item})
}

// UnmarshalJSON decodes a pair from a two-element array [cell, item].
func (p *Pair) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("puzzle: pair has %d elements, want 2", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Cell); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &p.Item)
}

// StateOf extracts the persisted state of data.
func StateOf(data Data) State {
	return State{
		Rows:  data.Rows,
		Cols:  data.Cols,
		Pairs: clonePairs(data.Pairs),
	}
}

// Data rebuilds puzzle data for image from the state.
func (s State) Data(image Image) Data {
	return Data{
		Image: image,
		Rows:  s.Rows,
		Cols:  s.Cols,
		Pairs: clonePairs(s.Pairs),
	}
}

// Validate checks that the state describes a permutation of rows×cols items.
func (s State) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("puzzle: state grid %dx%d: %w", s.Rows, s.Cols, ErrConfiguration)
	}
	n := s.Rows * s.Cols
	if len(s.Pairs) != n {
		return fmt.Errorf("puzzle: state has %d pairs for a %dx%d grid: %w", len(s.Pairs), s.Rows, s.Cols, ErrState)
	}

	seen := make([]bool, n)
	for i, pair := range s.Pairs {
		pos := pair.Item.Position
		if pos < 0 || pos >= n || seen[pos] {
			return fmt.Errorf("puzzle: state pair %d has position %d: %w", i, pos, ErrState)
		}
		seen[pos] = true
		if pair.Cell.Row != i/s.Cols || pair.Cell.Col != i%s.Cols {
			return fmt.Errorf("puzzle: state pair %d holds cell %d,%d: %w", i, pair.Cell.Row, pair.Cell.Col, ErrState)
		}
	}
	return nil
}

// EncodeState serialises a state as JSON.
func EncodeState(s State) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("puzzle: encode state: %w", err)
	}
	return b, nil
}

// DecodeState parses and validates a JSON state.
func DecodeState(b []byte) (State, error) {
	var s State
	if err := json.Unmarshal(b, &s); err != nil {
		return State{}, fmt.Errorf("puzzle: decode state: %w", err)
	}
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// State returns the persisted form of the last computed data.
func (p *Puzzle) State() State {
	return StateOf(p.last)
}

// Restore runs the puzzle from a saved state on image. The geometry is
// recomputed for the image size and the saved item positions are kept, so a
// state saved for one picture size can be restored on another.
func (p *Puzzle) Restore(s State, image Image) (Data, error) {
	if err := s.Validate(); err != nil {
		return Data{}, err
	}

	data := Data{Image: image, Rows: s.Rows, Cols: s.Cols}
	sorted, err := Sorted(data.Options())
	if err != nil {
		return Data{}, err
	}

	pairs := make([]Pair, len(sorted))
	for i, pair := range s.Pairs {
		pairs[i] = Pair{Cell: sorted[i].Cell, Item: sorted[pair.Item.Position].Item}
	}
	return p.Run(data.withPairs(pairs))
}
