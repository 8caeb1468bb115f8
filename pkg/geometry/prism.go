package geometry

import (
	"github.com/abbydoag/diorama/pkg/core"
	"github.com/abbydoag/diorama/pkg/material"
)

// RectangularPrism is an axis-aligned box with independent extents per axis
type RectangularPrism struct {
	Center   core.Vec3
	Width    float64 // extent along X
	Height   float64 // extent along Y
	Depth    float64 // extent along Z
	Material material.Material
}

// NewRectangularPrism creates a prism from its center and full extents
func NewRectangularPrism(center core.Vec3, width, height, depth float64, mat material.Material) *RectangularPrism {
	return &RectangularPrism{Center: center, Width: width, Height: height, Depth: depth, Material: mat}
}

// Intersect tests the ray against the prism using the slab method
func (p *RectangularPrism) Intersect(ray core.Ray) Intersection {
	half := core.NewVec3(p.Width/2, p.Height/2, p.Depth/2)
	return intersectBox(ray, p.Center, half, p.Material)
}
