package material

import (
	"github.com/abbydoag/diorama/pkg/core"
)

// Material describes the surface appearance of a solid: a diffuse base
// color, a specular exponent, albedo weights for the diffuse and specular
// terms, an optional texture, and an emissive color for self-illuminating
// surfaces. Materials are plain values; every solid owns its copy.
type Material struct {
	Diffuse  core.Color
	Specular float64    // highlight sharpness exponent, >= 0
	Albedo   [2]float64 // [diffuse weight, specular weight]
	Texture  *Texture   // nil means untextured
	Emission core.Color
}

// New creates a material. A nil texture means the diffuse color alone
// drives the diffuse term.
func New(diffuse core.Color, specular float64, albedo [2]float64, texture *Texture, emission core.Color) Material {
	return Material{
		Diffuse:  diffuse,
		Specular: specular,
		Albedo:   albedo,
		Texture:  texture,
		Emission: emission,
	}
}

// Black returns a fully inert material: no reflectance, no emission
func Black() Material {
	return Material{}
}
