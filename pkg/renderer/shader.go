package renderer

import (
	"math"

	"github.com/abbydoag/diorama/pkg/core"
	"github.com/abbydoag/diorama/pkg/geometry"
)

// Background is the flat color returned when a ray hits nothing
var Background = core.NewColor(9, 20, 55)

// emissionBoost brightens emissive materials past their stored color
const emissionBoost = 1.8

// CastRay resolves the nearest intersection along the ray against all
// solids and shades it: a diffuse term (plus an additive texture term
// when the material carries one), a specular highlight, and emission.
// Misses return Background.
func CastRay(ray core.Ray, solids []geometry.Solid, light Light) core.Color {
	nearest := geometry.NoIntersection()
	zbuffer := math.Inf(1)

	for _, solid := range solids {
		tmp := solid.Intersect(ray)
		if tmp.Hit && tmp.Distance < zbuffer {
			zbuffer = tmp.Distance
			nearest = tmp
		}
	}

	if !nearest.Hit {
		return Background
	}

	lightDir := light.Position.Subtract(nearest.Point).Normalize()
	viewDir := ray.Origin.Subtract(nearest.Point).Normalize()
	reflectDir := lightDir.Negate().Reflect(nearest.Normal)

	diffuseIntensity := math.Min(math.Max(nearest.Normal.Dot(lightDir), 0), 1)

	mat := nearest.Material
	diffuse := mat.Diffuse.
		Scale(mat.Albedo[0]).
		Scale(diffuseIntensity).
		Scale(light.Intensity)

	// Texture color adds a second diffuse contribution on top of the base
	// color's, it does not replace it
	if tex := mat.Texture; tex != nil {
		texColor := tex.Sample(nearest.U, nearest.V)
		diffuse = diffuse.Add(texColor.
			Scale(mat.Albedo[0]).
			Scale(diffuseIntensity).
			Scale(light.Intensity))
	}

	specularIntensity := math.Pow(math.Max(viewDir.Dot(reflectDir), 0), mat.Specular)
	specular := light.Color.
		Scale(mat.Albedo[1]).
		Scale(specularIntensity).
		Scale(light.Intensity)

	emission := mat.Emission.Scale(emissionBoost)

	return diffuse.Add(specular).Add(emission)
}
