package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// Vertex is the per-corner input of the vertex shader.
type Vertex struct {
	Position math3d.Vec3 // World position
}

// Pixel is a projected sample: integer screen coordinates, inverse camera
// depth, and the world position it came from.
type Pixel struct {
	X, Y  int
	ZInv  float64
	Pos3D math3d.Vec3
}

// Row boundary sentinels. A row whose left X is still sentinelLeft (or
// right X sentinelRight) was not touched by any edge.
const (
	sentinelLeft  = math.MaxInt
	sentinelRight = math.MinInt
)

// Touched reports whether a row boundary sample was written by an edge.
func (p Pixel) Touched() bool {
	return p.X != sentinelLeft && p.X != sentinelRight
}
