// Package config provides YAML-based puzzle configuration loading and
// preset management for the puzzle platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

// PuzzleConfig contains all configuration for the image puzzle.
type PuzzleConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Image   ImageConfig   `yaml:"image"`
	Display DisplayConfig `yaml:"display"`
	Scoring ScoringConfig `yaml:"scoring"`
	Presets []Preset      `yaml:"presets"`
}

// GridConfig defines the default board dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ImageConfig defines where the picture comes from and its size in pixels.
// One pixel is one terminal column wide and half a terminal row high.
type ImageConfig struct {
	Path    string `yaml:"path"`    // Empty uses Pattern
	Width   int    `yaml:"width"`   // Pixels
	Height  int    `yaml:"height"`  // Pixels, should be even
	Pattern string `yaml:"pattern"` // Built-in picture name
}

// DisplayConfig toggles optional overlays.
type DisplayConfig struct {
	ShowNumbers bool `yaml:"show_numbers"` // Print each piece's target index
	ShowHints   bool `yaml:"show_hints"`   // Show misplaced count in HUD
}

// ScoringConfig defines how a solved puzzle is scored.
type ScoringConfig struct {
	Base        int `yaml:"base"`
	MovePenalty int `yaml:"move_penalty"`
	HintPenalty int `yaml:"hint_penalty"`
}

// Preset is a named board size selectable from the CLI and menu.
type Preset struct {
	ID   string `yaml:"id"`
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
}

// Title returns a display name for the preset.
func (p Preset) Title() string {
	return fmt.Sprintf("Image Puzzle %dx%d", p.Rows, p.Cols)
}

// Score returns the score for a puzzle solved in the given number of moves
// and hints. It never drops below 1.
func (s ScoringConfig) Score(moves, hints int) int {
	return max(1, s.Base-moves*s.MovePenalty-hints*s.HintPenalty)
}

// Validate checks the configuration for values the engine cannot work with.
func (c PuzzleConfig) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("config: grid %dx%d: %w", c.Grid.Rows, c.Grid.Cols, puzzle.ErrConfiguration)
	}
	if c.Image.Width <= 0 || c.Image.Height <= 0 {
		return fmt.Errorf("config: image %dx%d: %w", c.Image.Width, c.Image.Height, puzzle.ErrConfiguration)
	}
	if c.Scoring.Base < 0 || c.Scoring.MovePenalty < 0 || c.Scoring.HintPenalty < 0 {
		return fmt.Errorf("config: negative scoring value: %w", puzzle.ErrConfiguration)
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.ID == "" {
			return fmt.Errorf("config: preset without id: %w", puzzle.ErrConfiguration)
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate preset %q: %w", p.ID, puzzle.ErrConfiguration)
		}
		seen[p.ID] = true
		if p.Rows <= 0 || p.Cols <= 0 {
			return fmt.Errorf("config: preset %q is %dx%d: %w", p.ID, p.Rows, p.Cols, puzzle.ErrConfiguration)
		}
	}
	return nil
}

// Preset returns the preset with the given id.
func (c PuzzleConfig) Preset(id string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// WithGrid returns a copy of the config using the given board size.
func (c PuzzleConfig) WithGrid(rows, cols int) PuzzleConfig {
	c.Grid = GridConfig{Rows: rows, Cols: cols}
	return c
}
