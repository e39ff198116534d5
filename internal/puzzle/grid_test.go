package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridRowMajor(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		rows, cols    int
	}{
		{"square 3x3", 48, 24, 3, 3},
		{"wide 2x4", 100, 50, 2, 4},
		{"single cell", 10, 10, 1, 1},
		{"fractional", 10, 10, 3, 3},
		{"tall 5x2", 20, 90, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := Grid(tt.width, tt.height, tt.rows, tt.cols)
			require.NoError(t, err)
			require.Len(t, cells, tt.rows*tt.cols)

			cellW := tt.width / float64(tt.cols)
			cellH := tt.height / float64(tt.rows)
			for i, c := range cells {
				assert.Equal(t, i/tt.cols, c.Row, "row of cell %d", i)
				assert.Equal(t, i%tt.cols, c.Col, "col of cell %d", i)
				assert.Equal(t, cellW, c.Width)
				assert.Equal(t, cellH, c.Height)
				assert.InDelta(t, cellW*float64(c.Col), c.X, 1e-9)
				assert.InDelta(t, cellH*float64(c.Row), c.Y, 1e-9)
				assert.Equal(t, i, c.Index(tt.cols))
			}
		})
	}
}

func TestGridRejectsEmptyGrid(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{0, 3},
		{3, 0},
		{-1, 2},
		{0, 0},
	}

	for _, tt := range tests {
		cells, err := Grid(10, 10, tt.rows, tt.cols)
		require.ErrorIs(t, err, ErrConfiguration, "Grid(%d, %d)", tt.rows, tt.cols)
		assert.Nil(t, cells)
	}
}

func TestNewCell(t *testing.T) {
	c := NewCell(16, 8, 2, 1)

	assert.Equal(t, 16.0, c.X)
	assert.Equal(t, 16.0, c.Y)
	assert.Equal(t, 7, c.Index(3))
}
