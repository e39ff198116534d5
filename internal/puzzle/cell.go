// Package puzzle implements the image puzzle engine: grid geometry, sorted and
// shuffled piece collections, the per-puzzle state (run, update, flip, win) and
// the two-step selection tracker.
//
// The package has no UI dependencies. Front ends render through the observer
// hooks installed on a Puzzle.
package puzzle

// Cell is the geometry of one fixed grid slot.
type Cell struct {
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// NewCell returns the cell at (row, col) for the given cell size.
func NewCell(width, height float64, row, col int) Cell {
	return Cell{
		Row:    row,
		Col:    col,
		Width:  width,
		Height: height,
		X:      width * float64(col),
		Y:      height * float64(row),
	}
}

// Index returns the row-major index of the cell in a grid with cols columns.
func (c Cell) Index(cols int) int {
	return c.Row*cols + c.Col
}
