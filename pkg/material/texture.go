package material

import (
	"github.com/abbydoag/diorama/pkg/core"
)

// Texture is a decoded image held as raw 8-bit RGBA bytes.
// len(Pix) == Width*Height*4. Read-only after construction.
type Texture struct {
	Pix    []uint8 // row-major RGBA: Pix[(y*Width+x)*4]
	Width  int
	Height int
}

// NewTexture wraps raw RGBA pixel bytes as a texture
func NewTexture(width, height int, pix []uint8) *Texture {
	return &Texture{Pix: pix, Width: width, Height: height}
}

// Sample returns the texel color at (u, v) using nearest-neighbor lookup.
// Pixel indices are clamped to the valid range, so out-of-range UVs read
// the nearest edge texel rather than going out of bounds.
func (t *Texture) Sample(u, v float64) core.Color {
	x := int(clamp(u*float64(t.Width), 0, float64(t.Width-1)))
	y := int(clamp(v*float64(t.Height), 0, float64(t.Height-1)))

	i := (y*t.Width + x) * 4
	return core.NewColor(t.Pix[i], t.Pix[i+1], t.Pix[i+2])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
