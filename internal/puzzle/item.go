package puzzle

// Item is a piece of the picture. Position is the piece's original 0-based
// slot; BgX/BgY are the negated offsets of that slot, so that a cell-sized
// viewport shifted by them shows the right region of the picture.
type Item struct {
	Position int     `json:"position"`
	BgX      float64 `json:"bgX"`
	BgY      float64 `json:"bgY"`
}

// ItemFor returns the item originally placed in cell at the given index.
func ItemFor(cell Cell, index int) Item {
	return Item{
		Position: index,
		BgX:      -cell.X,
		BgY:      -cell.Y,
	}
}

// Origin returns the top-left corner of the item's region in the picture.
func (it Item) Origin() (x, y float64) {
	return -it.BgX, -it.BgY
}
