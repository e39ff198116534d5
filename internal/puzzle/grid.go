package puzzle

import "fmt"

// Grid partitions a width×height area into rows×cols cells, returned in
// row-major order. Sizes that do not divide evenly produce fractional cells.
func Grid(width, height float64, rows, cols int) ([]Cell, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("puzzle: grid %dx%d: %w", rows, cols, ErrConfiguration)
	}

	cellW := width / float64(cols)
	cellH := height / float64(rows)

	cells := make([]Cell, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			cells = append(cells, NewCell(cellW, cellH, row, col))
		}
	}
	return cells, nil
}
