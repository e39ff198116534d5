package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-puzzle/internal/core"
)

// paletteCodes maps core.Color to ANSI colour codes.
var paletteCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// cellStyle identifies the styling of a screen cell, so that runs of
// identically styled cells can be rendered with one escape sequence.
type cellStyle struct {
	pixel bool
	color core.Color
	fg    core.RGB
	bg    core.RGB
}

func styleOf(c core.ScreenCell) cellStyle {
	if c.Pixel {
		return cellStyle{pixel: true, fg: c.Fg, bg: c.Bg}
	}
	return cellStyle{color: c.Color}
}

// ScreenRenderer converts Screen buffers to styled strings for one output.
// Each SSH session gets its own so colours match the client's terminal.
// It is not safe for concurrent use.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	styles map[cellStyle]lipgloss.Style
}

// NewScreenRenderer creates a renderer for r, or for the default output when
// r is nil.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{r: r, styles: make(map[cellStyle]lipgloss.Style)}
}

func (sr *ScreenRenderer) style(cs cellStyle) lipgloss.Style {
	if st, ok := sr.styles[cs]; ok {
		return st
	}

	st := sr.r.NewStyle()
	switch {
	case cs.pixel:
		st = st.Foreground(lipgloss.Color(cs.fg.Hex())).Background(lipgloss.Color(cs.bg.Hex()))
	case cs.color != core.ColorDefault:
		st = st.Foreground(lipgloss.Color(paletteCodes[cs.color]))
	}
	sr.styles[cs] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			start := styleOf(s.GetCell(x, y))

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if styleOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultRenderer *ScreenRenderer

// RenderScreen renders s for the local terminal.
func RenderScreen(s *core.Screen) string {
	if defaultRenderer == nil {
		defaultRenderer = NewScreenRenderer(nil)
	}
	return defaultRenderer.Render(s)
}
