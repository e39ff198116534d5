// Package picture loads, generates and scales the images puzzles are cut
// from. Pictures are kept as RGBA at the exact pixel size the board is drawn
// at, so sampling a piece is a plain pixel lookup.
package picture

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/vovakirdan/tui-puzzle/internal/core"
)

// Picture is an RGBA image with the name it was loaded or generated from.
type Picture struct {
	Source string
	img    *image.RGBA
}

// Width returns the picture width in pixels.
func (p *Picture) Width() int {
	return p.img.Bounds().Dx()
}

// Height returns the picture height in pixels.
func (p *Picture) Height() int {
	return p.img.Bounds().Dy()
}

// At returns the pixel at (x, y), clamped to the picture edges.
func (p *Picture) At(x, y int) core.RGB {
	b := p.img.Bounds()
	x = core.Clamp(x, b.Min.X, b.Max.X-1)
	y = core.Clamp(y, b.Min.Y, b.Max.Y-1)
	c := p.img.RGBAAt(x, y)
	return core.RGB{R: c.R, G: c.G, B: c.B}
}

// Image exposes the underlying image.
func (p *Picture) Image() image.Image {
	return p.img
}

// Spec says where a picture comes from and the size it is drawn at.
type Spec struct {
	Path    string // Image file; empty selects Pattern
	Pattern string // Generated pattern name
	Width   int    // Pixels; one terminal column each
	Height  int    // Pixels; two per terminal row
}

// Open builds the picture described by spec at its requested size.
func Open(spec Spec) (*Picture, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("picture: invalid size %dx%d", spec.Width, spec.Height)
	}

	if spec.Path == "" {
		return Generate(spec.Pattern, spec.Width, spec.Height)
	}

	src, err := Load(spec.Path)
	if err != nil {
		return nil, err
	}
	return &Picture{
		Source: filepath.Base(spec.Path),
		img:    Fit(src, spec.Width, spec.Height),
	}, nil
}

// Load decodes an image file in any registered format
// (PNG, JPEG, GIF, BMP, TIFF, WebP).
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("picture: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("picture: cannot decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("picture: %s (%s) is empty", path, format)
	}
	return img, nil
}

// Fit scales src to exactly w×h pixels with Catmull-Rom resampling.
func Fit(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// FromImage wraps an in-memory image, scaled to w×h.
func FromImage(source string, src image.Image, w, h int) *Picture {
	return &Picture{Source: source, img: Fit(src, w, h)}
}
