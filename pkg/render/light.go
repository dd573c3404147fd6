package render

import "github.com/taigrr/scanline/pkg/math3d"

// Light is a point light with constant radiant power and an ambient term.
type Light struct {
	Position math3d.Vec3
	Power    math3d.Vec3 // radiant power per channel
	Ambient  math3d.Vec3 // ambient power per unit area
}

// NewLight creates the default light: white, slightly above and in front of
// the origin.
func NewLight() *Light {
	return &Light{
		Position: math3d.V3(0, -0.5, -0.7),
		Power:    math3d.Splat(1.1),
		Ambient:  math3d.Splat(0.5),
	}
}

// Move translates the light in world space.
func (l *Light) Move(d math3d.Vec3) {
	l.Position = l.Position.Add(d)
}
