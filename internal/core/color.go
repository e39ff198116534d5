package core

import "image/color"

// Color is a palette foreground colour for text cells, mapped to ANSI codes
// by the platform renderer.
type Color uint8

// Palette colours.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGB is a 24-bit colour used for picture pixels.
type RGB struct {
	R, G, B uint8
}

// RGBOf converts any colour to RGB, dropping alpha.
func RGBOf(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	buf := [7]byte{'#'}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		buf[1+2*i] = digits[v>>4]
		buf[2+2*i] = digits[v&0x0f]
	}
	return string(buf[:])
}

// Dim returns the colour scaled towards black by factor (0..1).
func (c RGB) Dim(factor float64) RGB {
	factor = Clamp(factor, 0, 1)
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
