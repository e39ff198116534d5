package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type trackerSpy struct {
	pairs   [][2]int
	updates int
}

func newSpiedTracker() (*Tracker, *trackerSpy) {
	spy := &trackerSpy{}
	tr := NewTracker(
		func(a, b int) { spy.pairs = append(spy.pairs, [2]int{a, b}) },
		func() { spy.updates++ },
	)
	return tr, spy
}

func TestTrackerCompletesPair(t *testing.T) {
	tr, spy := newSpiedTracker()

	tr.Select(2)
	assert.Equal(t, []int{2}, tr.Selected())
	assert.True(t, tr.IsSelected(2))
	assert.Empty(t, spy.pairs)

	tr.Select(5)
	assert.Equal(t, [][2]int{{2, 5}}, spy.pairs)
	assert.Empty(t, tr.Selected())
	assert.False(t, tr.IsSelected(2))
	// one update per selection plus one after the reset
	assert.Equal(t, 3, spy.updates)
}

func TestTrackerSameIndexCancels(t *testing.T) {
	tr, spy := newSpiedTracker()

	tr.Select(2)
	tr.Select(2)

	assert.Empty(t, spy.pairs)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 2, spy.updates)
}

func TestTrackerSequence(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		pairs [][2]int
		left  []int
	}{
		{"two pairs", []int{0, 1, 2, 3}, [][2]int{{0, 1}, {2, 3}}, []int{}},
		{"cancel then pair", []int{4, 4, 1, 7}, [][2]int{{1, 7}}, []int{}},
		{"dangling", []int{3, 8, 6}, [][2]int{{3, 8}}, []int{6}},
		{"reverse order kept", []int{8, 0}, [][2]int{{8, 0}}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, spy := newSpiedTracker()
			for _, i := range tt.input {
				tr.Select(i)
			}
			assert.Equal(t, tt.pairs, spy.pairs)
			assert.Equal(t, tt.left, tr.Selected())
		})
	}
}

func TestTrackerNilCallbacks(t *testing.T) {
	tr := NewTracker(nil, nil)

	tr.Select(1)
	tr.Select(2)
	tr.Select(3)
	tr.Reset()

	assert.Equal(t, 0, tr.Len())
}

func TestTrackerDrivesFlip(t *testing.T) {
	p := newTestPuzzle(1)
	data := sortedData(t, 2, 2)
	_, err := p.Run(data)
	assert.NoError(t, err)

	tr := NewTracker(func(a, b int) {
		_, err := p.FlipLast(a, b)
		assert.NoError(t, err)
	}, nil)

	tr.Select(1)
	tr.Select(3)

	last, _ := p.Last()
	assert.Equal(t, []int{0, 3, 2, 1}, Positions(last.Pairs))
	assert.False(t, p.Win(last))

	tr.Select(3)
	tr.Select(1)

	last, _ = p.Last()
	assert.True(t, p.Win(last))
}
