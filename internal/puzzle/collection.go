package puzzle

import (
	"fmt"
	"math/rand"
)

// Options describes the area and the grid a collection is built for.
type Options struct {
	Width  float64
	Height float64
	Rows   int
	Cols   int
}

// Size returns the number of pieces (rows×cols).
func (o Options) Size() int {
	return o.Rows * o.Cols
}

// Validate checks that the grid and the area are usable.
func (o Options) Validate() error {
	if o.Rows <= 0 || o.Cols <= 0 {
		return fmt.Errorf("puzzle: grid %dx%d: %w", o.Rows, o.Cols, ErrConfiguration)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("puzzle: image %gx%g: %w", o.Width, o.Height, ErrConfiguration)
	}
	return nil
}

// Pair assigns an item to a cell: the cell is the fixed slot, the item is the
// piece currently shown there.
type Pair struct {
	Cell Cell
	Item Item
}

// Sorted returns the solved collection: Pair[i] holds Cell[i] and the item
// whose position is i.
func Sorted(opts Options) ([]Pair, error) {
	cells, items, err := cellsAndItems(opts)
	if err != nil {
		return nil, err
	}
	return zip(cells, items), nil
}

// Random returns the cells in row-major order zipped with a uniformly shuffled
// sequence of items.
func Random(opts Options, rng *rand.Rand) ([]Pair, error) {
	cells, items, err := cellsAndItems(opts)
	if err != nil {
		return nil, err
	}
	shuffle(items, rng)
	return zip(cells, items), nil
}

// cellsAndItems builds the grid and the identity items for it.
func cellsAndItems(opts Options) ([]Cell, []Item, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	cells, err := Grid(opts.Width, opts.Height, opts.Rows, opts.Cols)
	if err != nil {
		return nil, nil, err
	}

	items := make([]Item, len(cells))
	for i, c := range cells {
		items[i] = ItemFor(c, i)
	}
	return cells, items, nil
}

// shuffle permutes items in place (Fisher-Yates).
func shuffle(items []Item, rng *rand.Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func zip(cells []Cell, items []Item) []Pair {
	pairs := make([]Pair, len(cells))
	for i := range cells {
		pairs[i] = Pair{Cell: cells[i], Item: items[i]}
	}
	return pairs
}

// Positions returns the item positions of pairs in order.
func Positions(pairs []Pair) []int {
	out := make([]int, len(pairs))
	for i, p := range pairs {
		out[i] = p.Item.Position
	}
	return out
}
