package renderer

import (
	"testing"

	"github.com/abbydoag/diorama/pkg/core"
	"github.com/abbydoag/diorama/pkg/geometry"
	"github.com/abbydoag/diorama/pkg/material"
)

// mockSolid implements geometry.Solid for testing
type mockSolid struct {
	intersectFn func(ray core.Ray) geometry.Intersection
}

func (m mockSolid) Intersect(ray core.Ray) geometry.Intersection {
	return m.intersectFn(ray)
}

func fixedHit(distance float64, diffuse core.Color) mockSolid {
	return mockSolid{intersectFn: func(ray core.Ray) geometry.Intersection {
		return geometry.Intersection{
			Point:    ray.At(distance),
			Normal:   core.NewVec3(0, 0, 1),
			Distance: distance,
			Material: material.New(diffuse, 0, [2]float64{1, 0}, nil, core.NewColor(0, 0, 0)),
			Hit:      true,
		}
	}}
}

func headOnLight() Light {
	return NewLight(core.NewVec3(0, 0, 5), core.NewColor(255, 255, 255), 1.0)
}

func TestCastRayBackground(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))
	light := headOnLight()

	if got := CastRay(ray, nil, light); got != Background {
		t.Errorf("Empty scene: got %v, expected background %v", got, Background)
	}

	miss := mockSolid{intersectFn: func(core.Ray) geometry.Intersection {
		return geometry.NoIntersection()
	}}
	if got := CastRay(ray, []geometry.Solid{miss, miss}, light); got != Background {
		t.Errorf("All-miss scene: got %v, expected background %v", got, Background)
	}
}

func TestCastRayNearestHit(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	light := headOnLight()

	far := fixedHit(5.0, core.NewColor(0, 255, 0))
	near := fixedHit(3.0, core.NewColor(255, 0, 0))

	// Nearer solid wins regardless of iteration order
	got := CastRay(ray, []geometry.Solid{far, near}, light)
	if got.R == 0 || got.G != 0 {
		t.Errorf("Expected the nearer (red) solid to win, got %v", got)
	}
	got = CastRay(ray, []geometry.Solid{near, far}, light)
	if got.R == 0 || got.G != 0 {
		t.Errorf("Expected the nearer (red) solid to win, got %v", got)
	}
}

func TestCastRayTieKeepsFirst(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	light := headOnLight()

	red := fixedHit(3.0, core.NewColor(255, 0, 0))
	green := fixedHit(3.0, core.NewColor(0, 255, 0))

	// Replacement uses strict <, so on an exact tie the first solid
	// encountered is kept
	got := CastRay(ray, []geometry.Solid{red, green}, light)
	if got.R == 0 {
		t.Errorf("Tie should keep the first solid (red), got %v", got)
	}
	got = CastRay(ray, []geometry.Solid{green, red}, light)
	if got.G == 0 {
		t.Errorf("Tie should keep the first solid (green), got %v", got)
	}
}

func TestCastRayDiffuseOnly(t *testing.T) {
	// Single unit cube at origin, pure diffuse red, light and viewer both
	// head-on along +Z: result is the full diffuse color with no specular
	// and no emission
	mat := material.New(core.NewColor(255, 0, 0), 0, [2]float64{1.0, 0.0}, nil, core.NewColor(0, 0, 0))
	cube := geometry.NewCube(core.NewVec3(0, 0, 0), 1.0, mat)
	light := NewLight(core.NewVec3(0, 0, 5), core.NewColor(255, 255, 255), 1.0)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	got := CastRay(ray, []geometry.Solid{cube}, light)

	if got != core.NewColor(255, 0, 0) {
		t.Errorf("Diffuse-only head-on shading = %v, expected Color(r: 255, g: 0, b: 0)", got)
	}
}

func TestCastRayLightIntensityScalesDiffuse(t *testing.T) {
	mat := material.New(core.NewColor(255, 0, 0), 0, [2]float64{1.0, 0.0}, nil, core.NewColor(0, 0, 0))
	cube := geometry.NewCube(core.NewVec3(0, 0, 0), 1.0, mat)
	light := NewLight(core.NewVec3(0, 0, 5), core.NewColor(255, 255, 255), 0.2)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	got := CastRay(ray, []geometry.Solid{cube}, light)

	if got != core.NewColor(51, 0, 0) {
		t.Errorf("Night-intensity shading = %v, expected Color(r: 51, g: 0, b: 0)", got)
	}
}

func TestCastRayTextureAddsToDiffuse(t *testing.T) {
	// 1x1 pure green texture: the sampled color is added to the base
	// diffuse contribution, not substituted for it
	tex := material.NewTexture(1, 1, []uint8{0, 255, 0, 255})
	mat := material.New(core.NewColor(100, 0, 0), 0, [2]float64{1.0, 0.0}, tex, core.NewColor(0, 0, 0))
	cube := geometry.NewCube(core.NewVec3(0, 0, 0), 1.0, mat)
	light := NewLight(core.NewVec3(0, 0, 5), core.NewColor(255, 255, 255), 1.0)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	got := CastRay(ray, []geometry.Solid{cube}, light)

	if got != core.NewColor(100, 255, 0) {
		t.Errorf("Textured shading = %v, expected Color(r: 100, g: 255, b: 0)", got)
	}
}

func TestCastRayEmissionBoost(t *testing.T) {
	// No reflectance at all: only the boosted emission survives
	mat := material.New(core.NewColor(50, 50, 50), 10, [2]float64{0, 0}, nil, core.NewColor(100, 100, 100))
	cube := geometry.NewCube(core.NewVec3(0, 0, 0), 1.0, mat)
	light := headOnLight()

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	got := CastRay(ray, []geometry.Solid{cube}, light)

	if got != core.NewColor(180, 180, 180) {
		t.Errorf("Emissive shading = %v, expected 100 * 1.8 per channel", got)
	}
}

func TestCastRaySpecularHighlight(t *testing.T) {
	// Pure specular material, mirror alignment: view direction equals the
	// reflected light direction, so the highlight is at full strength
	mat := material.New(core.NewColor(0, 0, 0), 8, [2]float64{0.0, 1.0}, nil, core.NewColor(0, 0, 0))
	cube := geometry.NewCube(core.NewVec3(0, 0, 0), 1.0, mat)
	light := NewLight(core.NewVec3(0, 0, 5), core.NewColor(200, 100, 50), 1.0)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	got := CastRay(ray, []geometry.Solid{cube}, light)

	if got != core.NewColor(200, 100, 50) {
		t.Errorf("Mirror-aligned specular = %v, expected the light color %v", got, core.NewColor(200, 100, 50))
	}
}
