package scene

import (
	"github.com/abbydoag/diorama/pkg/geometry"
	"github.com/abbydoag/diorama/pkg/renderer"
)

// Scene bundles everything a frame needs: the immutable solid list, the
// single light, and the camera. Solids are read-only during a render
// pass; only the light's intensity and the camera change between frames.
type Scene struct {
	Solids []geometry.Solid
	Light  renderer.Light
	Camera *renderer.Camera

	DayIntensity   float64
	NightIntensity float64
}

// SetNight switches the light between its day and night intensity
func (s *Scene) SetNight(night bool) {
	if night {
		s.Light.Intensity = s.NightIntensity
	} else {
		s.Light.Intensity = s.DayIntensity
	}
}
