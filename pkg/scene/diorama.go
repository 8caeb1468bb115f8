package scene

import (
	"path/filepath"

	"github.com/abbydoag/diorama/pkg/core"
	"github.com/abbydoag/diorama/pkg/geometry"
	"github.com/abbydoag/diorama/pkg/loaders"
	"github.com/abbydoag/diorama/pkg/material"
	"github.com/abbydoag/diorama/pkg/renderer"
)

// Day and night intensities of the diorama's sun/moon light
const (
	DayIntensity   = 1.7
	NightIntensity = 0.2
)

// NewDioramaScene builds the diorama: a grassy base with four block
// trees, a house with emissive windows, a lake with a wooden dock, and
// an emissive moon cube overhead. Textures are loaded from textureDir;
// any that fail to load are logged and rendered as plain diffuse color.
func NewDioramaScene(textureDir string, logger core.Logger) *Scene {
	tex := func(name string) *material.Texture {
		return loaders.LoadTexture(filepath.Join(textureDir, name), logger)
	}

	wood := material.New(
		core.NewColor(101, 62, 4),
		20.0,
		[2]float64{0.6, 0.2},
		tex("wood.png"),
		core.NewColor(0, 0, 0),
	)
	grass := material.New(
		core.NewColor(29, 60, 14),
		7.0,
		[2]float64{0.7, 0.1},
		tex("grass.png"),
		core.NewColor(0, 0, 0),
	)
	leaves := material.New(
		core.NewColor(29, 60, 14),
		7.0,
		[2]float64{0.7, 0.1},
		tex("leaves.png"),
		core.NewColor(0, 0, 0),
	)
	wall := material.New(
		core.NewColor(206, 100, 0),
		15.0,
		[2]float64{0.6, 0.3},
		tex("wall.png"),
		core.NewColor(0, 0, 0),
	)
	roof := material.New(
		core.NewColor(38, 55, 71),
		14.0,
		[2]float64{0.6, 0.2},
		tex("roof.png"),
		core.NewColor(0, 0, 0),
	)
	water := material.New(
		core.NewColor(61, 133, 198),
		5.0,
		[2]float64{0.7, 0.04},
		tex("water.png"),
		core.NewColor(0, 0, 0),
	)
	// Window panes glow on their own
	windows := material.New(
		core.NewColor(253, 237, 191),
		0.0,
		[2]float64{1.0, 0.0},
		nil,
		core.NewColor(253, 237, 191).Scale(2.0),
	)
	moon := material.New(
		core.NewColor(228, 246, 255).Scale(1.5),
		11.0,
		[2]float64{0.5, 0.5},
		tex("moon.png"),
		core.NewColor(228, 246, 255).Scale(1.5),
	)

	solids := []geometry.Solid{
		// Moon
		geometry.NewCube(core.NewVec3(0, 5, -5), 1.0, moon),
	}

	// Leaf clusters, one slice per tree
	leafClusters := []core.Vec3{
		core.NewVec3(1.7, 1.2, -3.2),
		core.NewVec3(1.0, 1.3, -2.8),
		core.NewVec3(0.8, 0.9, -3.4),
		core.NewVec3(0.5, 1.2, -3.5),
		core.NewVec3(1.2, 1.6, -3.3),
		core.NewVec3(1.0, 1.1, -3.8),

		core.NewVec3(-3.3, 0.8, -4.3),
		core.NewVec3(-3.0, 1.5, -4.0),
		core.NewVec3(-2.9, 1.2, -4.2),
		core.NewVec3(-2.6, 1.1, -3.61),
		core.NewVec3(-3.4, 1.0, -3.7),

		core.NewVec3(-1.2, 0.7, -1.8),
		core.NewVec3(-1.3, 1.3, -2.2),
		core.NewVec3(-1.92, 1.1, -2.2),
		core.NewVec3(-1.0, 1.0, -2.75),
		core.NewVec3(-1.7, 0.9, -2.4),

		core.NewVec3(-1.0, 0.7, -5.8),
		core.NewVec3(-1.0, 1.7, -6.0),
		core.NewVec3(-1.5, 1.4, -6.1),
		core.NewVec3(-0.5, 1.2, -6.2),
		core.NewVec3(-1.3, 1.1, -5.9),
		core.NewVec3(-0.3, 1.0, -5.95),
	}
	for _, center := range leafClusters {
		solids = append(solids, geometry.NewCube(center, 0.74, leaves))
	}

	// Roof edge blocks, front row then back row
	for _, z := range []float64{2.3, -1.7} {
		solids = append(solids,
			geometry.NewCube(core.NewVec3(3.5, 0.45, z), 0.4, wood),
			geometry.NewCube(core.NewVec3(3.9, 0.6, z), 0.4, wood),
			geometry.NewCube(core.NewVec3(4.3, 0.7, z), 0.4, wood),
			geometry.NewCube(core.NewVec3(4.7, 0.6, z), 0.4, wood),
			geometry.NewCube(core.NewVec3(5.1, 0.45, z), 0.4, wood),
		)
	}

	solids = append(solids,
		// Base
		geometry.NewRectangularPrism(core.NewVec3(1.0, -0.9, -2.0), 9.0, 0.3, 9.0, grass),

		// Tree trunks
		geometry.NewRectangularPrism(core.NewVec3(-1.0, 0.3, -6.0), 0.6, 3.0, 0.6, wood),
		geometry.NewRectangularPrism(core.NewVec3(-3.0, 0.0, -4.0), 0.6, 2.0, 0.6, wood),
		geometry.NewRectangularPrism(core.NewVec3(-1.5, 0.2, -2.4), 0.6, 2.5, 0.6, wood),
		geometry.NewRectangularPrism(core.NewVec3(1.0, 0.0, -3.3), 0.6, 2.0, 0.6, wood),

		// House
		geometry.NewRectangularPrism(core.NewVec3(4.3, -0.1, 0.3), 1.8, 1.3, 4.0, wall),

		// Windows
		geometry.NewRectangularPrism(core.NewVec3(3.35, 0.13, -0.9), 0.04, 0.45, 0.5, windows),
		geometry.NewRectangularPrism(core.NewVec3(3.35, 0.13, 1.5), 0.04, 0.45, 0.5, windows),
		geometry.NewRectangularPrism(core.NewVec3(4.3, 0.15, 2.4), 0.4, 0.4, 0.04, windows),

		// Door
		geometry.NewRectangularPrism(core.NewVec3(3.39, -0.3, 0.4), 0.03, 0.9, 0.5, wood),

		// Roof plates
		geometry.NewRectangularPrism(core.NewVec3(4.3, 0.49, 0.3), 1.95, 0.1, 4.0, roof),
		geometry.NewRectangularPrism(core.NewVec3(4.3, 0.57, 0.3), 1.8, 0.1, 4.0, roof),
		geometry.NewRectangularPrism(core.NewVec3(4.3, 0.66, 0.28), 1.65, 0.1, 3.6, roof),
		geometry.NewRectangularPrism(core.NewVec3(4.3, 0.75, 0.28), 1.5, 0.1, 3.6, roof),

		// Lake, widening layers
		geometry.NewRectangularPrism(core.NewVec3(-0.9, -0.79, 0.2), 2.0, 0.1, 3.0, water),
		geometry.NewRectangularPrism(core.NewVec3(-0.9, -0.79, 0.2), 2.5, 0.1, 2.6, water),
		geometry.NewRectangularPrism(core.NewVec3(-0.9, -0.79, 0.2), 3.0, 0.1, 2.3, water),
		geometry.NewRectangularPrism(core.NewVec3(-0.9, -0.79, 0.2), 3.5, 0.1, 1.9, water),

		// Dock
		geometry.NewRectangularPrism(core.NewVec3(0.15, -0.7, 0.2), 1.4, 0.1, 0.8, wood),
		geometry.NewRectangularPrism(core.NewVec3(-0.4, -0.65, -0.2), 0.2, 0.2, 0.2, wood),
		geometry.NewRectangularPrism(core.NewVec3(-0.4, -0.65, 0.6), 0.2, 0.2, 0.2, wood),
	)

	return &Scene{
		Solids: solids,
		Light: renderer.NewLight(
			core.NewVec3(0, 5.1, 0.1),
			core.NewColor(255, 236, 183),
			DayIntensity,
		),
		Camera: renderer.NewCamera(
			core.NewVec3(-1, 1, 9),
			core.NewVec3(0, 0, 0),
			core.NewVec3(0, 1, 0),
		),
		DayIntensity:   DayIntensity,
		NightIntensity: NightIntensity,
	}
}
