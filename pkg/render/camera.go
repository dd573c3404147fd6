package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// DefaultNear is the default near distance. Vertices closer to the camera
// plane than this are rejected by the vertex shader.
const DefaultNear = 1e-3

// Camera is a pinhole camera. Camera space has x to the right, y down and
// the view axis along +z.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation (Euler angles in radians)
	ThetaX float64 // Rotation around X axis (look up/down)
	ThetaY float64 // Rotation around Y axis (look left/right)
	ThetaZ float64 // Rotation around Z axis (tilt)

	FocalLength float64 // in pixels
	Near        float64 // minimum camera-space z of an accepted vertex

	rotation math3d.Mat3
	dirty    bool
}

// NewCamera creates a camera at pos looking along +z.
func NewCamera(pos math3d.Vec3, focalLength float64) *Camera {
	return &Camera{
		Position:    pos,
		FocalLength: focalLength,
		Near:        DefaultNear,
		dirty:       true,
	}
}

// Rotation returns R = Rz(ThetaZ) * Ry(ThetaY) * Rx(ThetaX).
func (c *Camera) Rotation() math3d.Mat3 {
	if c.dirty {
		c.rotation = math3d.EulerXYZ(c.ThetaX, c.ThetaY, c.ThetaZ)
		c.dirty = false
	}
	return c.rotation
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// SetRotation sets the camera angles (in radians).
func (c *Camera) SetRotation(thetaX, thetaY, thetaZ float64) {
	c.ThetaX = thetaX
	c.ThetaY = thetaY
	c.ThetaZ = thetaZ
	c.dirty = true
}

// Rotate adds the given angles (in radians).
func (c *Camera) Rotate(dx, dy, dz float64) {
	c.ThetaX += dx
	c.ThetaY += dy
	c.ThetaZ += dz

	// Clamp pitch to avoid flipping over the vertical
	const maxPitch = math.Pi/2 - 0.01
	c.ThetaX = math.Max(-maxPitch, math.Min(maxPitch, c.ThetaX))

	c.dirty = true
}

// ToCamera maps a world point into camera space: R * (p - Position).
func (c *Camera) ToCamera(p math3d.Vec3) math3d.Vec3 {
	return c.Rotation().MulVec3(p.Sub(c.Position))
}

// Right returns the camera's +x axis in world space.
func (c *Camera) Right() math3d.Vec3 {
	return c.Rotation().Row(0)
}

// Down returns the camera's +y axis in world space.
func (c *Camera) Down() math3d.Vec3 {
	return c.Rotation().Row(1)
}

// Forward returns the view direction in world space.
func (c *Camera) Forward() math3d.Vec3 {
	return c.Rotation().Row(2)
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float64) {
	c.Position = c.Position.Add(c.Forward().Scale(distance))
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float64) {
	c.Position = c.Position.Add(c.Right().Scale(distance))
}

// MoveDown moves the camera down (or up if negative).
func (c *Camera) MoveDown(distance float64) {
	c.Position = c.Position.Add(c.Down().Scale(distance))
}
