package picture

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/fogleman/gg"
)

// DefaultPattern is used when neither a path nor a pattern is configured.
const DefaultPattern = "sunset"

type painter func(dc *gg.Context, w, h float64)

var patterns = map[string]painter{
	"sunset":  paintSunset,
	"rings":   paintRings,
	"mosaic":  paintMosaic,
	"compass": paintCompass,
}

// Patterns returns the names of the built-in pictures, sorted.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate paints a built-in picture. Every pattern is asymmetric enough that
// each piece of a 5x5 grid is distinguishable.
func Generate(pattern string, w, h int) (*Picture, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	paint, ok := patterns[pattern]
	if !ok {
		return nil, fmt.Errorf("picture: unknown pattern %q", pattern)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("picture: invalid size %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	paint(dc, float64(w), float64(h))
	return FromImage(pattern, dc.Image(), w, h), nil
}

func paintSunset(dc *gg.Context, w, h float64) {
	sky := gg.NewLinearGradient(0, 0, 0, h)
	sky.AddColorStop(0, color.RGBA{R: 20, G: 24, B: 82, A: 255})
	sky.AddColorStop(0.6, color.RGBA{R: 235, G: 110, B: 60, A: 255})
	sky.AddColorStop(1, color.RGBA{R: 250, G: 200, B: 90, A: 255})
	dc.SetFillStyle(sky)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetRGB(1, 0.85, 0.35)
	dc.DrawCircle(w*0.68, h*0.55, h*0.18)
	dc.Fill()

	dc.SetRGB(0.16, 0.12, 0.22)
	dc.MoveTo(0, h)
	dc.LineTo(0, h*0.7)
	dc.LineTo(w*0.2, h*0.5)
	dc.LineTo(w*0.38, h*0.72)
	dc.LineTo(w*0.55, h*0.58)
	dc.LineTo(w*0.8, h*0.8)
	dc.LineTo(w, h*0.62)
	dc.LineTo(w, h)
	dc.ClosePath()
	dc.Fill()

	dc.SetRGB(0.05, 0.2, 0.15)
	dc.DrawRectangle(0, h*0.88, w, h*0.12)
	dc.Fill()
}

func paintRings(dc *gg.Context, w, h float64) {
	dc.SetRGB(0.08, 0.08, 0.1)
	dc.Clear()

	cx, cy := w*0.4, h*0.45
	maxR := math.Hypot(w, h)
	for i := 0; float64(i)*4 < maxR; i++ {
		t := float64(i) / (maxR / 4)
		dc.SetRGB(0.5+0.5*math.Sin(t*6), 0.5+0.5*math.Sin(t*6+2), 0.5+0.5*math.Sin(t*6+4))
		dc.SetLineWidth(2)
		dc.DrawCircle(cx, cy, float64(i)*4)
		dc.Stroke()
	}
}

func paintMosaic(dc *gg.Context, w, h float64) {
	const tiles = 7
	tw, th := w/tiles, h/tiles
	for row := 0; row < tiles; row++ {
		for col := 0; col < tiles; col++ {
			hue := float64(row*tiles+col) / (tiles * tiles)
			dc.SetColor(hsv(hue, 0.65, 0.55+0.4*float64(col)/tiles))
			dc.DrawRectangle(float64(col)*tw, float64(row)*th, tw+1, th+1)
			dc.Fill()
		}
	}
}

func paintCompass(dc *gg.Context, w, h float64) {
	bg := gg.NewRadialGradient(w/2, h/2, 0, w/2, h/2, math.Max(w, h)/1.4)
	bg.AddColorStop(0, color.RGBA{R: 240, G: 230, B: 200, A: 255})
	bg.AddColorStop(1, color.RGBA{R: 60, G: 80, B: 110, A: 255})
	dc.SetFillStyle(bg)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	r := math.Min(w, h) * 0.45
	dc.SetRGB(0.7, 0.1, 0.1)
	dc.DrawRegularPolygon(3, w/2, h/2-r/2, r/2, 0)
	dc.Fill()
	dc.SetRGB(0.1, 0.3, 0.6)
	dc.DrawRegularPolygon(4, w/2+r, h/2+r/3, r/3, math.Pi/4)
	dc.Fill()
	dc.SetRGB(0.2, 0.5, 0.2)
	dc.DrawRegularPolygon(5, w/2-r, h/2+r/3, r/3, 0)
	dc.Fill()
}

// hsv converts hue/saturation/value in [0,1] to a colour.
func hsv(h, s, v float64) color.Color {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}
