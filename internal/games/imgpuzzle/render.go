package imgpuzzle

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-puzzle/internal/core"
	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

const selectedDim = 0.45

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.resize(dst.Width(), dst.Height())

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if !g.hasData {
		g.renderOverlay(dst, "No puzzle", g.notice)
		return
	}

	g.renderBoard(dst)
	g.renderMarks(dst)
	g.renderFooter(dst)

	switch {
	case g.solved:
		g.renderOverlay(dst, "Solved!", fmt.Sprintf("Score %d in %d moves - R for a new one", g.score, g.moves))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Moves: %d", g.Title(), g.moves)
	if g.hasData {
		hud = fmt.Sprintf(" Image Puzzle %dx%d  Moves: %d", g.data.Rows, g.data.Cols, g.moves)
		if g.cfg.Display.ShowHints {
			hud += fmt.Sprintf("  Hints: %d  Misplaced: %d", g.hints, len(puzzle.Misplaced(g.data)))
		}
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderBoard draws the pieces, two picture rows per screen row.
func (g *Game) renderBoard(dst *core.Screen) {
	picH := g.pic.Height()
	for y := 0; y < g.board.H; y++ {
		for x := 0; x < g.board.W; x++ {
			top := g.shade(x, 2*y)
			var bottom core.RGB
			if 2*y+1 < picH {
				bottom = g.shade(x, 2*y+1)
			}
			dst.SetPixels(g.board.X+x, g.board.Y+y, top, bottom)
		}
	}

	if g.cfg.Display.ShowNumbers {
		for i, pair := range g.data.Pairs {
			r := g.slotRect(i)
			dst.DrawTextColored(r.X, r.Y, strconv.Itoa(pair.Item.Position+1), core.ColorBrightWhite)
		}
	}
}

// shade returns the board pixel, dimmed when its slot is selected.
func (g *Game) shade(px, py int) core.RGB {
	c, slot := g.pixel(px, py)
	if g.tracker.IsSelected(slot) {
		return c.Dim(selectedDim)
	}
	return c
}

// renderMarks outlines the selected pieces and the cursor.
func (g *Game) renderMarks(dst *core.Screen) {
	if g.solved {
		return
	}
	for _, i := range g.tracker.Selected() {
		if i != g.cursor {
			dst.DrawBox(g.slotRect(i), core.ColorBrightCyan)
		}
	}
	dst.DrawBox(g.slotRect(g.cursor), core.ColorBrightYellow)
}

// renderFooter draws the notice line under the board.
func (g *Game) renderFooter(dst *core.Screen) {
	if g.notice == "" {
		return
	}
	dst.DrawTextCentered(g.board.Bottom(), g.notice, core.ColorYellow)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	inner := box.Inset(1)
	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < inner.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightGreen)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
