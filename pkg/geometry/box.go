package geometry

import (
	"math"

	"github.com/abbydoag/diorama/pkg/core"
	"github.com/abbydoag/diorama/pkg/material"
)

// intersectBox runs the slab test against the axis-aligned box described
// by center and half (per-axis half-extents). Cube and RectangularPrism
// differ only in how they derive half.
//
// Zero direction components divide to ±Inf, which flows through the
// min/max reduction and the near/far comparison unchanged; there is no
// epsilon special case.
func intersectBox(ray core.Ray, center, half core.Vec3, mat material.Material) Intersection {
	boxMin := center.Subtract(half)
	boxMax := center.Add(half)

	tx1 := (boxMin.X - ray.Origin.X) / ray.Direction.X
	tx2 := (boxMax.X - ray.Origin.X) / ray.Direction.X
	ty1 := (boxMin.Y - ray.Origin.Y) / ray.Direction.Y
	ty2 := (boxMax.Y - ray.Origin.Y) / ray.Direction.Y
	tz1 := (boxMin.Z - ray.Origin.Z) / ray.Direction.Z
	tz2 := (boxMax.Z - ray.Origin.Z) / ray.Direction.Z

	tNear := math.Max(math.Min(tx1, tx2), math.Max(math.Min(ty1, ty2), math.Min(tz1, tz2)))
	tFar := math.Min(math.Max(tx1, tx2), math.Min(math.Max(ty1, ty2), math.Max(tz1, tz2)))

	if tNear > tFar || tFar < 0 {
		return NoIntersection()
	}

	// Origin inside the box: report the exit face, not a point behind the ray
	t := tNear
	if tNear < 0 {
		t = tFar
	}

	point := ray.At(t)
	normal := boxNormal(point, center, half)
	u, v := boxUV(point, normal, boxMin, boxMax, half)

	return Intersection{
		Point:    point,
		Normal:   normal,
		Distance: t,
		Material: mat,
		U:        u,
		V:        v,
		Hit:      true,
	}
}

// boxNormal picks the face whose plane is nearest to the hit point,
// checking axes in X, Y, Z order with >= comparisons. This is a
// distance-to-plane heuristic rather than an exact which-slab test; it
// can misclassify points near edges and corners.
func boxNormal(point, center, half core.Vec3) core.Vec3 {
	xDiff := math.Abs(point.X-center.X) - half.X
	yDiff := math.Abs(point.Y-center.Y) - half.Y
	zDiff := math.Abs(point.Z-center.Z) - half.Z

	switch {
	case xDiff >= yDiff && xDiff >= zDiff:
		if point.X > center.X {
			return core.NewVec3(1, 0, 0)
		}
		return core.NewVec3(-1, 0, 0)
	case yDiff >= xDiff && yDiff >= zDiff:
		if point.Y > center.Y {
			return core.NewVec3(0, 1, 0)
		}
		return core.NewVec3(0, -1, 0)
	default:
		if point.Z > center.Z {
			return core.NewVec3(0, 0, 1)
		}
		return core.NewVec3(0, 0, -1)
	}
}

// boxUV maps the hit point to texture coordinates with face-keyed
// formulas. Z-facing faces fall through to the X/Y branches, which is
// geometrically coarse but kept for compatibility with the scenes built
// against it.
func boxUV(point, normal, boxMin, boxMax, half core.Vec3) (u, v float64) {
	width := 2 * half.X
	height := 2 * half.Y
	depth := 2 * half.Z

	switch normal.X {
	case 1:
		u = (point.Z - boxMin.Z) / depth
	case -1:
		u = (point.Z - boxMax.Z) / depth
	default:
		u = (point.X - boxMin.X) / width
	}

	switch normal.Y {
	case 1:
		v = (point.Z - boxMin.Z) / depth
	case -1:
		v = (point.Z - boxMax.Z) / depth
	default:
		v = (point.Y - boxMin.Y) / height
	}

	return u, v
}
