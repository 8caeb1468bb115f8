package renderer

import (
	"image"

	"github.com/abbydoag/diorama/pkg/core"
)

// Framebuffer is a width x height RGBA pixel buffer. The raw Pix slice
// is laid out for direct display (ebiten WritePixels) and image encoding.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint8 // row-major RGBA
}

// NewFramebuffer creates an opaque black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	pix := make([]uint8, width*height*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 255
	}
	return &Framebuffer{Width: width, Height: height, Pix: pix}
}

// Set writes a color at (x, y). Out-of-bounds writes are dropped.
func (f *Framebuffer) Set(x, y int, c core.Color) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 4
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
	f.Pix[i+3] = 255
}

// At returns the color at (x, y)
func (f *Framebuffer) At(x, y int) core.Color {
	i := (y*f.Width + x) * 4
	return core.NewColor(f.Pix[i], f.Pix[i+1], f.Pix[i+2])
}

// Image wraps the buffer as an NRGBA image sharing the same pixel memory
func (f *Framebuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    f.Pix,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}
