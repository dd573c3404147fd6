// Package scene holds the immutable triangle lists consumed by the renderer
// and the loaders that produce them.
package scene

import "github.com/taigrr/scanline/pkg/math3d"

// Triangle is a flat-shaded triangle: three world-space corners, one linear
// RGB colour in [0,1] and one unit face normal.
type Triangle struct {
	V0, V1, V2 math3d.Vec3
	Color      math3d.Vec3
	Normal     math3d.Vec3
}

// NewTriangle returns a triangle with its normal already computed.
func NewTriangle(v0, v1, v2, color math3d.Vec3) Triangle {
	t := Triangle{V0: v0, V1: v1, V2: v2, Color: color}
	t.ComputeNormal()
	return t
}

// ComputeNormal sets Normal to normalize((V2-V0) x (V1-V0)).
func (t *Triangle) ComputeNormal() {
	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)
	t.Normal = e2.Cross(e1).Normalize()
}

// Vertices returns the three corners in winding order.
func (t Triangle) Vertices() [3]math3d.Vec3 {
	return [3]math3d.Vec3{t.V0, t.V1, t.V2}
}

// Source yields the triangles of a scene. The returned slice is loaded once
// and must not be modified by callers.
type Source interface {
	Triangles() []Triangle
}

// Triangles is a plain triangle list that satisfies Source.
type Triangles []Triangle

// Triangles implements Source.
func (ts Triangles) Triangles() []Triangle {
	return ts
}

// Bounds returns the axis-aligned bounding box of a triangle list.
func Bounds(tris []Triangle) (lo, hi math3d.Vec3) {
	if len(tris) == 0 {
		return
	}
	lo, hi = tris[0].V0, tris[0].V0
	for _, t := range tris {
		for _, v := range t.Vertices() {
			lo = lo.Min(v)
			hi = hi.Max(v)
		}
	}
	return lo, hi
}
