package geometry

import (
	"github.com/abbydoag/diorama/pkg/core"
	"github.com/abbydoag/diorama/pkg/material"
)

// Cube is an axis-aligned box with equal extents on all axes
type Cube struct {
	Center   core.Vec3
	Side     float64
	Material material.Material
}

// NewCube creates a cube from its center and side length
func NewCube(center core.Vec3, side float64, mat material.Material) *Cube {
	return &Cube{Center: center, Side: side, Material: mat}
}

// Intersect tests the ray against the cube using the slab method
func (c *Cube) Intersect(ray core.Ray) Intersection {
	half := c.Side / 2
	return intersectBox(ray, c.Center, core.NewVec3(half, half, half), c.Material)
}
