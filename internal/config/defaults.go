package config

import (
	_ "embed"
)

//go:embed defaults/puzzle.yaml
var defaultPuzzleYAML []byte

// DefaultPuzzleConfig returns the default puzzle configuration.
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		Grid: GridConfig{
			Rows: 3,
			Cols: 3,
		},
		Image: ImageConfig{
			Width:   48,
			Height:  24,
			Pattern: "sunset",
		},
		Display: DisplayConfig{
			ShowNumbers: false,
			ShowHints:   true,
		},
		Scoring: ScoringConfig{
			Base:        1000,
			MovePenalty: 10,
			HintPenalty: 50,
		},
		Presets: DefaultPresets(),
	}
}

// DefaultPresets returns the built-in board sizes.
func DefaultPresets() []Preset {
	return []Preset{
		{ID: "3x3", Rows: 3, Cols: 3},
		{ID: "4x4", Rows: 4, Cols: 4},
		{ID: "5x5", Rows: 5, Cols: 5},
	}
}
