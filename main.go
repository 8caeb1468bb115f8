package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"github.com/abbydoag/diorama/pkg/renderer"
	"github.com/abbydoag/diorama/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "diorama", "Scene type: 'diorama'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	out := flag.String("out", filepath.Join("output", "diorama.png"), "Output image path (.png or .webp)")
	textureDir := flag.String("textures", "textures", "Directory with texture images")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU)")
	night := flag.Bool("night", false, "Render with the night light intensity")
	yaw := flag.Float64("yaw", 0, "Initial camera orbit yaw in degrees")
	pitch := flag.Float64("pitch", 0, "Initial camera orbit pitch in degrees")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Diorama renderer")
		fmt.Println("Usage: diorama [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("The output format follows the file extension: .png or .webp")
		return
	}

	s, err := createScene(*sceneType, *textureDir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	s.SetNight(*night)
	s.Camera.Orbit(*yaw*math.Pi/180, *pitch*math.Pi/180)

	fb := renderer.NewFramebuffer(*width, *height)

	startTime := time.Now()
	renderer.NewRenderer(*workers).Render(fb, s.Solids, s.Camera, s.Light)
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v (%dx%d, %d solids)\n", renderTime, *width, *height, len(s.Solids))

	if err := saveImage(fb, *out); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *out)
}

// createScene builds a scene by name
func createScene(sceneType, textureDir string) (*scene.Scene, error) {
	switch sceneType {
	case "diorama":
		return scene.NewDioramaScene(textureDir, log.Default()), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}

// saveImage writes the framebuffer as PNG or WebP depending on the
// file extension
func saveImage(fb *renderer.Framebuffer, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return nativewebp.Encode(file, fb.Image(), nil)
	default:
		return png.Encode(file, fb.Image())
	}
}
