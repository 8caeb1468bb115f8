package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "github.com/ftrvxmtrx/tga" // TGA decoder
	xdraw "golang.org/x/image/draw"

	"github.com/abbydoag/diorama/pkg/core"
	"github.com/abbydoag/diorama/pkg/material"
)

// MaxTextureSize caps texture dimensions; larger images are downscaled
// preserving aspect ratio. The shader does nearest-neighbor lookups, so
// oversized textures only cost memory.
const MaxTextureSize = 1024

// LoadTexture loads an image file as a texture. A failed load is
// reported through the logger and yields nil, which materials treat as
// "no texture"; it is never a fatal condition.
func LoadTexture(filename string, logger core.Logger) *material.Texture {
	tex, err := loadTexture(filename)
	if err != nil {
		if logger != nil {
			logger.Printf("texture %s: %v (rendering without it)", filename, err)
		}
		return nil
	}
	return tex
}

func loadTexture(filename string) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Auto-detects PNG/JPEG/TGA from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxTextureSize || bounds.Dy() > MaxTextureSize {
		img = downscale(img, MaxTextureSize)
		bounds = img.Bounds()
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)

	return material.NewTexture(bounds.Dx(), bounds.Dy(), nrgba.Pix), nil
}

// downscale resizes img so its longer side equals max
func downscale(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	scale := float64(max) / float64(w)
	if h > w {
		scale = float64(max) / float64(h)
	}
	dw := int(float64(w)*scale + 0.5)
	dh := int(float64(h)*scale + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
