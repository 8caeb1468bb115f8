package renderer

import (
	"math"
	"runtime"
	"sync"

	"github.com/abbydoag/diorama/pkg/core"
	"github.com/abbydoag/diorama/pkg/geometry"
)

// fov is the vertical field of view of the pinhole projection
const fov = math.Pi / 3

// Renderer casts one primary ray per pixel. Pixels are independent, so
// rows can be split across workers without locking; a worker count of 1
// gives the sequential reference path with identical output.
type Renderer struct {
	workers int
}

// NewRenderer creates a renderer. workers <= 0 uses one worker per CPU.
func NewRenderer(workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{workers: workers}
}

// Render casts a ray through every pixel of the framebuffer and writes
// the shaded colors
func (r *Renderer) Render(fb *Framebuffer, solids []geometry.Solid, camera *Camera, light Light) {
	if r.workers <= 1 || fb.Height < 2 {
		r.renderRows(fb, solids, camera, light, 0, fb.Height)
		return
	}

	rowsPerWorker := (fb.Height + r.workers - 1) / r.workers
	var wg sync.WaitGroup
	for y := 0; y < fb.Height; y += rowsPerWorker {
		end := y + rowsPerWorker
		if end > fb.Height {
			end = fb.Height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			r.renderRows(fb, solids, camera, light, y0, y1)
		}(y, end)
	}
	wg.Wait()
}

// renderRows renders the half-open row range [y0, y1)
func (r *Renderer) renderRows(fb *Framebuffer, solids []geometry.Solid, camera *Camera, light Light, y0, y1 int) {
	width := float64(fb.Width)
	height := float64(fb.Height)
	aspectRatio := width / height
	perspectiveScale := math.Tan(fov * 0.5)

	for y := y0; y < y1; y++ {
		screenY := (1 - 2*float64(y)/height) * perspectiveScale
		for x := 0; x < fb.Width; x++ {
			screenX := (2*float64(x)/width - 1) * aspectRatio * perspectiveScale

			direction := core.NewVec3(screenX, screenY, -1).Normalize()
			ray := core.NewRay(camera.Eye, camera.BaseChange(direction))

			fb.Set(x, y, CastRay(ray, solids, light))
		}
	}
}
