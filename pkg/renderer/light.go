package renderer

import (
	"github.com/abbydoag/diorama/pkg/core"
)

// Light is the scene's single point light. Intensity scales both the
// diffuse and specular terms and is toggled externally between day and
// night levels.
type Light struct {
	Position  core.Vec3
	Color     core.Color
	Intensity float64
}

// NewLight creates a light
func NewLight(position core.Vec3, color core.Color, intensity float64) Light {
	return Light{Position: position, Color: color, Intensity: intensity}
}
