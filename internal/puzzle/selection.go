package puzzle

import "slices"

// Tracker accumulates selected piece indices two at a time. It knows nothing
// about puzzle data: the caller composes it with Flip in the select callback.
type Tracker struct {
	selection []int
	onSelect  func(a, b int)
	onUpdate  func()
}

// NewTracker creates a tracker. onSelect receives each completed pair;
// onUpdate is called whenever the selection changes. Either may be nil.
func NewTracker(onSelect func(a, b int), onUpdate func()) *Tracker {
	return &Tracker{
		selection: make([]int, 0, 2),
		onSelect:  onSelect,
		onUpdate:  onUpdate,
	}
}

// Select adds index to the selection. Selecting an index that is already
// selected cancels the selection without calling onSelect.
func (t *Tracker) Select(index int) {
	if t.IsSelected(index) {
		t.clean()
		return
	}

	t.selection = append(t.selection, index)
	t.update()

	if len(t.selection) == 2 {
		a, b := t.selection[0], t.selection[1]
		if t.onSelect != nil {
			t.onSelect(a, b)
		}
		t.clean()
	}
}

// IsSelected reports whether index is part of the current selection.
func (t *Tracker) IsSelected(index int) bool {
	return slices.Contains(t.selection, index)
}

// Selected returns a copy of the current selection.
func (t *Tracker) Selected() []int {
	return slices.Clone(t.selection)
}

// Len returns the number of selected indices (0 or 1 between calls).
func (t *Tracker) Len() int {
	return len(t.selection)
}

// Reset drops the selection and notifies the update callback.
func (t *Tracker) Reset() {
	t.clean()
}

func (t *Tracker) clean() {
	t.selection = t.selection[:0]
	t.update()
}

func (t *Tracker) update() {
	if t.onUpdate != nil {
		t.onUpdate()
	}
}
