package puzzle

import "fmt"

// Image references the picture a puzzle is cut from. Only its size takes
// part in the geometry; Source is carried for the front end.
type Image struct {
	Source string
	Width  float64
	Height float64
}

// Data is one puzzle's configuration and current state. A nil Pairs slice
// means no assignment has been generated yet.
type Data struct {
	Image Image
	Rows  int
	Cols  int
	Pairs []Pair
}

// Options returns the collection options derived from the image and the grid.
func (d Data) Options() Options {
	return Options{
		Width:  d.Image.Width,
		Height: d.Image.Height,
		Rows:   d.Rows,
		Cols:   d.Cols,
	}
}

// Size returns rows×cols.
func (d Data) Size() int {
	return d.Rows * d.Cols
}

// Validate checks the grid and, when pairs are present, that their number
// matches the grid.
func (d Data) Validate() error {
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("puzzle: grid %dx%d: %w", d.Rows, d.Cols, ErrConfiguration)
	}
	if d.Pairs != nil && len(d.Pairs) != d.Size() {
		return fmt.Errorf("puzzle: %d pairs for a %dx%d grid: %w", len(d.Pairs), d.Rows, d.Cols, ErrState)
	}
	return nil
}

// withPairs returns a copy of d holding pairs.
func (d Data) withPairs(pairs []Pair) Data {
	d.Pairs = pairs
	return d
}

// clonePairs copies a pairs slice so that callers never share backing arrays.
func clonePairs(pairs []Pair) []Pair {
	if pairs == nil {
		return nil
	}
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	return out
}
