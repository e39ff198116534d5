package picture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-puzzle/internal/core"
)

func writePNG(t *testing.T, w, h int, fill color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	path := filepath.Join(t.TempDir(), "pic.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestOpenFileScales(t *testing.T) {
	path := writePNG(t, 200, 100, color.RGBA{R: 10, G: 200, B: 30, A: 255})

	pic, err := Open(Spec{Path: path, Width: 48, Height: 24})
	require.NoError(t, err)
	assert.Equal(t, 48, pic.Width())
	assert.Equal(t, 24, pic.Height())
	assert.Equal(t, "pic.png", pic.Source)
	assert.Equal(t, core.RGB{R: 10, G: 200, B: 30}, pic.At(20, 10))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(Spec{Path: filepath.Join(t.TempDir(), "nope.png"), Width: 10, Height: 10})
	assert.Error(t, err)
}

func TestOpenInvalidSize(t *testing.T) {
	_, err := Open(Spec{Width: 0, Height: 10})
	assert.Error(t, err)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGeneratePatterns(t *testing.T) {
	for _, name := range Patterns() {
		t.Run(name, func(t *testing.T) {
			pic, err := Generate(name, 60, 36)
			require.NoError(t, err)
			assert.Equal(t, 60, pic.Width())
			assert.Equal(t, 36, pic.Height())
			assert.Equal(t, name, pic.Source)
		})
	}
}

func TestGenerateDefaultAndUnknown(t *testing.T) {
	pic, err := Generate("", 30, 20)
	require.NoError(t, err)
	assert.Equal(t, DefaultPattern, pic.Source)

	_, err = Generate("plaid", 30, 20)
	assert.Error(t, err)
}

func TestSunsetIsNotUniform(t *testing.T) {
	pic, err := Generate("sunset", 48, 24)
	require.NoError(t, err)
	assert.NotEqual(t, pic.At(0, 0), pic.At(0, 23))
}

func TestAtClampsToEdges(t *testing.T) {
	pic, err := Generate("mosaic", 20, 10)
	require.NoError(t, err)
	assert.Equal(t, pic.At(0, 0), pic.At(-5, -5))
	assert.Equal(t, pic.At(19, 9), pic.At(100, 100))
}

func TestFitSameSizeCopies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 2, color.RGBA{R: 255, A: 255})

	dst := Fit(src, 4, 4)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, dst.RGBAAt(1, 2))
}
