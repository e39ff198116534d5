package puzzle

import (
	"fmt"
	"math/rand"
)

// Observer receives the data to draw. A nil argument asks the front end to
// draw nothing, which happens when a puzzle is torn down before a rebuild.
type Observer func(data *Data)

// Puzzle owns the state of one active puzzle. It is not safe for concurrent
// use; each session creates its own.
type Puzzle struct {
	rng      *rand.Rand
	last     Data
	running  bool
	onRender Observer
	onUpdate Observer
}

// New creates a puzzle drawing its shuffles from rng.
func New(rng *rand.Rand) *Puzzle {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Puzzle{rng: rng}
}

// OnRender installs the observer called after Run.
func (p *Puzzle) OnRender(fn Observer) {
	p.onRender = fn
}

// OnUpdate installs the observer called after Update, Flip and teardown.
func (p *Puzzle) OnUpdate(fn Observer) {
	p.onUpdate = fn
}

// Run starts the puzzle. When data has no pairs a random assignment is
// generated from the image size; otherwise the given pairs are used as they
// are, as long as their number matches the grid.
func (p *Puzzle) Run(data Data) (Data, error) {
	if err := data.Validate(); err != nil {
		return data, err
	}

	if data.Pairs == nil {
		pairs, err := Random(data.Options(), p.rng)
		if err != nil {
			return data, err
		}
		data = data.withPairs(pairs)
	} else {
		data = data.withPairs(clonePairs(data.Pairs))
	}

	p.SetLast(data)
	p.running = true
	p.notify(p.onRender, &data)
	return data, nil
}

// Update replaces the pairs of data with a fresh random assignment.
func (p *Puzzle) Update(data Data) (Data, error) {
	if err := data.Validate(); err != nil {
		return data, err
	}

	pairs, err := Random(data.Options(), p.rng)
	if err != nil {
		return data, err
	}
	data = data.withPairs(pairs)

	p.SetLast(data)
	p.running = true
	p.notify(p.onUpdate, &data)
	return data, nil
}

// Flip exchanges the items at indices a and b, leaving the cells in place.
// Flipping an index with itself changes nothing.
func (p *Puzzle) Flip(a, b int, data Data) (Data, error) {
	n := len(data.Pairs)
	if a < 0 || a >= n || b < 0 || b >= n {
		return data, fmt.Errorf("puzzle: flip %d,%d of %d pairs: %w", a, b, n, ErrBounds)
	}

	if a != b {
		pairs := clonePairs(data.Pairs)
		pairs[a].Item, pairs[b].Item = pairs[b].Item, pairs[a].Item
		data = data.withPairs(pairs)
	}

	p.SetLast(data)
	p.notify(p.onUpdate, &data)
	return data, nil
}

// Win reports whether every item is back in its original slot. Only a fully
// populated collection can win.
func (p *Puzzle) Win(data Data) bool {
	return Solved(data)
}

// Solved is Win without a receiver.
func Solved(data Data) bool {
	if len(data.Pairs) == 0 || len(data.Pairs) != data.Size() {
		return false
	}
	for i, pair := range data.Pairs {
		if pair.Item.Position != i {
			return false
		}
	}
	return true
}

// Last returns the most recently computed data and whether Run was called.
func (p *Puzzle) Last() (Data, bool) {
	return p.last, p.running
}

// SetLast records data as the most recent state.
func (p *Puzzle) SetLast(data Data) {
	p.last = data
}

// Reshuffle applies Update to the last state.
func (p *Puzzle) Reshuffle() (Data, error) {
	if !p.running {
		return p.last, fmt.Errorf("puzzle: reshuffle before run: %w", ErrState)
	}
	return p.Update(p.last)
}

// Rebuild tears the current puzzle down and runs a new one with the same
// image and the given grid.
func (p *Puzzle) Rebuild(rows, cols int) (Data, error) {
	next := Data{Image: p.last.Image, Rows: rows, Cols: cols}
	if err := next.Options().Validate(); err != nil {
		return p.last, err
	}

	p.notify(p.onUpdate, nil)
	return p.Run(next)
}

// FlipLast applies Flip to the last state.
func (p *Puzzle) FlipLast(a, b int) (Data, error) {
	return p.Flip(a, b, p.last)
}

func (p *Puzzle) notify(fn Observer, data *Data) {
	if fn != nil {
		fn(data)
	}
}
