package render

import (
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/scene"
)

// Wireframe draws projected line overlays onto a Display.
type Wireframe struct {
	ctx     *FrameContext
	display Display
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(ctx *FrameContext, display Display) *Wireframe {
	return &Wireframe{
		ctx:     ctx,
		display: display,
	}
}

func (w *Wireframe) plot(c Color) func(x, y int) {
	return func(x, y int) {
		if w.ctx.InBounds(x, y) {
			w.display.PutPixel(x, y, c)
		}
	}
}

// DrawLine3D draws a line in world space. Lines with an endpoint behind the
// near distance are skipped.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	a, ok1 := VertexShader(w.ctx, Vertex{Position: p1})
	b, ok2 := VertexShader(w.ctx, Vertex{Position: p2})
	if !ok1 || !ok2 {
		return
	}
	if !w.nearScreen(a) && !w.nearScreen(b) {
		return
	}
	Line(a.X, a.Y, b.X, b.Y, w.plot(color))
}

// nearScreen reports whether p is within one screen size of the viewport,
// which bounds the work of lines whose endpoints project far away.
func (w *Wireframe) nearScreen(p Pixel) bool {
	return p.X >= -w.ctx.Width && p.X < 2*w.ctx.Width &&
		p.Y >= -w.ctx.Height && p.Y < 2*w.ctx.Height
}

// DrawTriangle draws the three edges of a triangle.
func (w *Wireframe) DrawTriangle(tri *scene.Triangle, color Color) {
	w.DrawLine3D(tri.V0, tri.V1, color)
	w.DrawLine3D(tri.V1, tri.V2, color)
	w.DrawLine3D(tri.V2, tri.V0, color)
}

// DrawPoint draws a point as a small 3D cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3, size float64, color Color) {
	halfSize := size / 2
	w.DrawLine3D(
		math3d.V3(pos.X-halfSize, pos.Y, pos.Z),
		math3d.V3(pos.X+halfSize, pos.Y, pos.Z),
		color,
	)
	w.DrawLine3D(
		math3d.V3(pos.X, pos.Y-halfSize, pos.Z),
		math3d.V3(pos.X, pos.Y+halfSize, pos.Z),
		color,
	)
	w.DrawLine3D(
		math3d.V3(pos.X, pos.Y, pos.Z-halfSize),
		math3d.V3(pos.X, pos.Y, pos.Z+halfSize),
		color,
	)
}

// gizmoSize is the world-space size of the light cross.
const gizmoSize = 0.1

// DrawLightGizmo marks a light position with a 3D cross inside a small
// screen-space square.
func (w *Wireframe) DrawLightGizmo(pos math3d.Vec3, color Color) {
	p, ok := VertexShader(w.ctx, Vertex{Position: pos})
	if !ok {
		return
	}
	w.DrawPoint(pos, gizmoSize, color)
	half := max(2, w.ctx.Height/100)
	rectOutline(p.X-half, p.Y-half, 2*half+1, 2*half+1, w.plot(color))
}
