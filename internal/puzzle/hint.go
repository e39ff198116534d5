package puzzle

// Misplaced returns the indices whose item is not in its original slot.
func Misplaced(data Data) []int {
	var out []int
	for i, pair := range data.Pairs {
		if pair.Item.Position != i {
			out = append(out, i)
		}
	}
	return out
}

// Hint returns a flip that moves at least one item home: the first misplaced
// slot and the slot currently holding its item. ok is false when nothing is
// misplaced or the pairs do not form a permutation.
func Hint(data Data) (a, b int, ok bool) {
	for i, pair := range data.Pairs {
		if pair.Item.Position == i {
			continue
		}
		for j, other := range data.Pairs {
			if other.Item.Position == i {
				return i, j, true
			}
		}
		return 0, 0, false
	}
	return 0, 0, false
}
