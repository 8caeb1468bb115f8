package geometry

import (
	"github.com/abbydoag/diorama/pkg/core"
	"github.com/abbydoag/diorama/pkg/material"
)

// Intersection is the result of a ray/solid intersection test. When Hit
// is false the remaining fields are unspecified and must not be read.
type Intersection struct {
	Point    core.Vec3         // point of intersection
	Normal   core.Vec3         // axis-aligned unit face normal
	Distance float64           // parameter t along the ray
	Material material.Material // material of the hit solid
	U, V     float64           // texture coordinates, unclamped
	Hit      bool
}

// NoIntersection returns the sentinel miss result
func NoIntersection() Intersection {
	return Intersection{}
}

// Solid is an object that can be intersected by rays
type Solid interface {
	Intersect(ray core.Ray) Intersection
}
