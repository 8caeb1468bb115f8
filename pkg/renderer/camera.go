package renderer

import (
	"math"

	"github.com/abbydoag/diorama/pkg/core"
)

// maxPitch keeps the orbit just short of the poles so the view basis
// never degenerates
const maxPitch = math.Pi/2 - 0.01

// Camera is an orbiting look-at camera. It owns only the view transform;
// ray generation happens in the render loop.
type Camera struct {
	Eye    core.Vec3 // camera position, shared by every ray in a frame
	Center core.Vec3 // orbit target
	Up     core.Vec3
}

// NewCamera creates a camera looking from eye toward center
func NewCamera(eye, center, up core.Vec3) *Camera {
	return &Camera{Eye: eye, Center: center, Up: up}
}

// BaseChange rotates a camera-space direction (x right, y up, -z forward)
// into world space and normalizes it
func (c *Camera) BaseChange(v core.Vec3) core.Vec3 {
	forward := c.Center.Subtract(c.Eye).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	rotated := right.Multiply(v.X).
		Add(up.Multiply(v.Y)).
		Subtract(forward.Multiply(v.Z))
	return rotated.Normalize()
}

// Orbit rotates the eye around the center by the given yaw and pitch
// deltas in radians, keeping the orbit radius fixed
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	offset := c.Eye.Subtract(c.Center)
	radius := offset.Length()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.X, offset.Z)
	pitch := math.Asin(offset.Y / radius)

	yaw += deltaYaw
	pitch = math.Min(math.Max(pitch+deltaPitch, -maxPitch), maxPitch)

	c.Eye = c.Center.Add(core.NewVec3(
		radius*math.Cos(pitch)*math.Sin(yaw),
		radius*math.Sin(pitch),
		radius*math.Cos(pitch)*math.Cos(yaw),
	))
}

// Zoom scales the eye-center distance; factors below 1 move in, above 1
// move out
func (c *Camera) Zoom(factor float64) {
	offset := c.Eye.Subtract(c.Center).Multiply(factor)
	c.Eye = c.Center.Add(offset)
}
