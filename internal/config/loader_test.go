package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test writes.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadPuzzle("")
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultPuzzleConfig(), cfg); diff != "" {
		t.Errorf("embedded default differs (-want +got):\n%s", diff)
	}
}

func TestCustomPathOverridesOnlyGivenKeys(t *testing.T) {
	_, wd := isolate(t)
	path := filepath.Join(wd, "custom.yaml")
	writeFile(t, path, "grid:\n  rows: 4\n  cols: 6\nimage:\n  pattern: rings\n")

	cfg, err := LoadPuzzle(path)
	require.NoError(t, err)
	assert.Equal(t, GridConfig{Rows: 4, Cols: 6}, cfg.Grid)
	assert.Equal(t, "rings", cfg.Image.Pattern)
	assert.Equal(t, 48, cfg.Image.Width)
	assert.Equal(t, 1000, cfg.Scoring.Base)
	assert.Equal(t, DefaultPresets(), cfg.Presets)
}

func TestCustomPathErrors(t *testing.T) {
	_, wd := isolate(t)

	_, err := LoadPuzzle(filepath.Join(wd, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(wd, "bad.yaml")
	writeFile(t, bad, "grid: [not, a, map")
	_, err = LoadPuzzle(bad)
	assert.Error(t, err)

	invalid := filepath.Join(wd, "invalid.yaml")
	writeFile(t, invalid, "grid:\n  rows: 0\n  cols: 3\n")
	_, err = LoadPuzzle(invalid)
	assert.ErrorIs(t, err, puzzle.ErrConfiguration)
}

func TestSearchOrder(t *testing.T) {
	home, wd := isolate(t)
	writeFile(t, filepath.Join(wd, "configs", "puzzle.yaml"), "grid:\n  rows: 5\n  cols: 5\n")

	cfg, err := LoadPuzzle("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Grid.Rows, "local configs dir should be used")

	writeFile(t, filepath.Join(home, ".puzzle", "configs", "puzzle.yaml"), "grid:\n  rows: 2\n  cols: 7\n")
	cfg, err = LoadPuzzle("")
	require.NoError(t, err)
	assert.Equal(t, GridConfig{Rows: 2, Cols: 7}, cfg.Grid, "user config should win over local")
}

func TestInvalidUserConfigFallsThrough(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".puzzle", "configs", "puzzle.yaml"), "grid:\n  rows: -1\n")

	cfg, err := LoadPuzzle("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Grid.Rows)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PuzzleConfig)
		ok     bool
	}{
		{"default", func(*PuzzleConfig) {}, true},
		{"zero cols", func(c *PuzzleConfig) { c.Grid.Cols = 0 }, false},
		{"zero width", func(c *PuzzleConfig) { c.Image.Width = 0 }, false},
		{"negative penalty", func(c *PuzzleConfig) { c.Scoring.MovePenalty = -1 }, false},
		{"preset without id", func(c *PuzzleConfig) { c.Presets = append(c.Presets, Preset{Rows: 2, Cols: 2}) }, false},
		{"duplicate preset", func(c *PuzzleConfig) { c.Presets = append(c.Presets, Preset{ID: "3x3", Rows: 2, Cols: 2}) }, false},
		{"bad preset size", func(c *PuzzleConfig) { c.Presets = []Preset{{ID: "x", Rows: 3, Cols: 0}} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPuzzleConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, puzzle.ErrConfiguration)
			}
		})
	}
}

func TestPresetLookup(t *testing.T) {
	cfg := DefaultPuzzleConfig()

	p, ok := cfg.Preset("4x4")
	require.True(t, ok)
	assert.Equal(t, 4, p.Rows)
	assert.Equal(t, "Image Puzzle 4x4", p.Title())

	_, ok = cfg.Preset("9x9")
	assert.False(t, ok)
}

func TestScore(t *testing.T) {
	s := ScoringConfig{Base: 1000, MovePenalty: 10, HintPenalty: 50}

	assert.Equal(t, 1000, s.Score(0, 0))
	assert.Equal(t, 850, s.Score(10, 1))
	assert.Equal(t, 1, s.Score(500, 0))
}

func TestWithGrid(t *testing.T) {
	cfg := DefaultPuzzleConfig().WithGrid(2, 4)
	assert.Equal(t, GridConfig{Rows: 2, Cols: 4}, cfg.Grid)
	assert.Equal(t, 3, DefaultPuzzleConfig().Grid.Rows)
}
