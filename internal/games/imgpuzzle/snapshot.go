package imgpuzzle

import "github.com/vovakirdan/tui-puzzle/internal/puzzle"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Rows      int
	Cols      int
	Cursor    int
	Selected  []int
	Positions []int // Item position held by each slot
	Misplaced int
	Moves     int
	Hints     int
	Score     int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.solved:
		state = StateSolved
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:   g.tick,
		Cursor: g.cursor,
		Moves:  g.moves,
		Hints:  g.hints,
		Score:  g.score,
		State:  state,
	}
	if g.tracker != nil {
		snap.Selected = g.tracker.Selected()
	}
	if g.hasData {
		snap.Rows = g.data.Rows
		snap.Cols = g.data.Cols
		snap.Positions = puzzle.Positions(g.data.Pairs)
		snap.Misplaced = len(puzzle.Misplaced(g.data))
	}
	return snap
}
