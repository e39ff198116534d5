package imgpuzzle

import (
	"math"

	"github.com/vovakirdan/tui-puzzle/internal/core"
)

const (
	hudHeight    = 2 // Title line and separator
	footerHeight = 1 // Notice line
)

// layout places the board for the current screen size. A picture pixel is
// one column wide and half a row high.
func (g *Game) layout() {
	if g.pic == nil {
		return
	}
	w := g.pic.Width()
	h := (g.pic.Height() + 1) / 2

	g.tooSmall = g.screenW < w || g.screenH < h+hudHeight+footerHeight
	if g.tooSmall {
		g.board = core.Rect{}
		return
	}

	avail := g.screenH - hudHeight - footerHeight
	g.board = core.NewRect((g.screenW-w)/2, hudHeight+(avail-h)/2, w, h)
}

// resize updates the layout when the screen changed size.
func (g *Game) resize(w, h int) {
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW, g.screenH = w, h
	g.layout()
}

// cellSize returns the size of one slot in picture pixels.
func (g *Game) cellSize() (w, h float64) {
	return g.data.Image.Width / float64(g.data.Cols), g.data.Image.Height / float64(g.data.Rows)
}

// slotAt returns the slot index covering picture pixel (px, py).
func (g *Game) slotAt(px, py int) int {
	cw, ch := g.cellSize()
	col := core.Clamp(int((float64(px)+0.5)/cw), 0, g.data.Cols-1)
	row := core.Clamp(int((float64(py)+0.5)/ch), 0, g.data.Rows-1)
	return row*g.data.Cols + col
}

// pieceAt hit-tests a screen position against the board.
func (g *Game) pieceAt(x, y int) (int, bool) {
	if !g.hasData || g.board.Empty() || !g.board.Contains(x, y) {
		return 0, false
	}
	return g.slotAt(x-g.board.X, (y-g.board.Y)*2), true
}

// slotRect returns the screen rectangle covering slot i.
func (g *Game) slotRect(i int) core.Rect {
	cell := g.data.Pairs[i].Cell
	x0 := int(math.Floor(cell.X))
	x1 := int(math.Ceil(cell.X + cell.Width))
	y0 := int(math.Floor(cell.Y / 2))
	y1 := int(math.Ceil((cell.Y + cell.Height) / 2))
	return core.NewRect(g.board.X+x0, g.board.Y+y0, x1-x0, y1-y0)
}

// pixel returns the colour shown at picture pixel (px, py) of the board:
// the pixel of the picture region owned by the item in that slot.
func (g *Game) pixel(px, py int) (core.RGB, int) {
	slot := g.slotAt(px, py)
	pair := g.data.Pairs[slot]
	ox, oy := pair.Item.Origin()
	sx := ox + float64(px) - pair.Cell.X
	sy := oy + float64(py) - pair.Cell.Y
	return g.pic.At(int(math.Floor(sx+0.5)), int(math.Floor(sy+0.5))), slot
}
