// Command viewer opens an interactive window on the diorama. Arrow keys
// orbit the camera, W/S zoom, L toggles day and night, Escape quits.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/abbydoag/diorama/pkg/renderer"
	"github.com/abbydoag/diorama/pkg/scene"
)

// rotationSpeed is the orbit step per tick while an arrow key is held
const rotationSpeed = math.Pi / 10

type game struct {
	scene    *scene.Scene
	renderer *renderer.Renderer
	fb       *renderer.Framebuffer
	frame    *ebiten.Image
	night    bool
}

func newGame(width, height, workers int, textureDir string) *game {
	return &game{
		scene:    scene.NewDioramaScene(textureDir, log.Default()),
		renderer: renderer.NewRenderer(workers),
		fb:       renderer.NewFramebuffer(width, height),
		frame:    ebiten.NewImage(width, height),
	}
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	camera := g.scene.Camera
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		camera.Orbit(rotationSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		camera.Orbit(-rotationSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		camera.Orbit(0, -rotationSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		camera.Orbit(0, rotationSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		camera.Zoom(0.9)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		camera.Zoom(1.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.night = !g.night
		g.scene.SetNight(g.night)
	}

	g.renderer.Render(g.fb, g.scene.Solids, camera, g.scene.Light)
	g.frame.WritePixels(g.fb.Pix)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}

func main() {
	width := flag.Int("width", 800, "Window width in pixels")
	height := flag.Int("height", 600, "Window height in pixels")
	textureDir := flag.String("textures", "textures", "Directory with texture images")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU)")
	flag.Parse()

	g := newGame(*width, *height, *workers, *textureDir)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Diorama")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
