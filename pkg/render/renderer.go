// Package render implements a flat-shaded scanline triangle rasterizer:
// projection, polygon row decomposition, perspective-correct interpolation,
// a per-pixel depth test and point-light shading.
package render

import (
	"fmt"
	"time"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/scene"
)

// Display receives shaded pixels. The renderer never reads back from it.
type Display interface {
	PutPixel(x, y int, c Color)
	Present() error
}

// Clearer is implemented by displays that can fill themselves faster than
// one PutPixel per pixel.
type Clearer interface {
	Clear(c Color)
}

// Delta is the per-frame change applied by Renderer.Update.
type Delta struct {
	Pitch, Yaw, Roll     float64     // radians
	Forward, Right, Down float64     // distance along the camera's own axes
	Light                math3d.Vec3 // world-space light translation
}

// IsZero reports whether applying d would change nothing.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// FrameStats tracks rasterization work for the last frame.
type FrameStats struct {
	TrianglesDrawn    int // triangles with all vertices in front of the camera
	TrianglesRejected int // triangles dropped by the near-plane test
	RowsFilled        int // rows with both boundaries set
	PixelsShaded      int // samples that passed the depth test
	PixelsOccluded    int // samples that failed the depth test
	PixelsClipped     int // samples outside the screen
	RenderTime        time.Duration
}

// Renderer owns the frame context and draws a fixed triangle list.
type Renderer struct {
	ClearColor Color
	Wireframe  bool  // draw triangle edges over the shaded frame
	WireColor  Color // colour of the wireframe overlay
	LightGizmo bool  // mark the light position
	GizmoColor Color

	ctx   *FrameContext
	tris  []scene.Triangle
	rows  rowBuilder
	stats FrameStats

	homeCamera Camera
	homeLight  Light
}

// NewRenderer creates a renderer for tris at the given resolution. Camera
// and light are mutated in place by Update.
func NewRenderer(camera *Camera, light *Light, tris []scene.Triangle, width, height int) *Renderer {
	r := &Renderer{
		ClearColor: ColorBlack,
		WireColor:  ColorWhite,
		GizmoColor: ColorYellow,
		ctx:        NewFrameContext(camera, light, width, height),
		tris:       tris,
		homeCamera: *camera,
		homeLight:  *light,
	}
	Logger().Info("renderer created", "triangles", len(tris), "width", width, "height", height)
	return r
}

// Context returns the renderer's frame context.
func (r *Renderer) Context() *FrameContext { return r.ctx }

// Camera returns the camera being rendered from.
func (r *Renderer) Camera() *Camera { return r.ctx.Camera }

// Light returns the scene light.
func (r *Renderer) Light() *Light { return r.ctx.Light }

// Triangles returns the scene triangles.
func (r *Renderer) Triangles() []scene.Triangle { return r.tris }

// Width returns the screen width.
func (r *Renderer) Width() int { return r.ctx.Width }

// Height returns the screen height.
func (r *Renderer) Height() int { return r.ctx.Height }

// Stats returns the counters of the last drawn frame.
func (r *Renderer) Stats() FrameStats { return r.stats }

// Resize changes the output resolution. The depth buffer is reallocated
// only if the size actually changes.
func (r *Renderer) Resize(width, height int) {
	if r.ctx.Resize(width, height) {
		Logger().Info("renderer resized", "width", r.ctx.Width, "height", r.ctx.Height)
	}
}

// Update applies one frame of input to the camera and light. Rotation is
// applied before translation, so movement follows the new orientation.
func (r *Renderer) Update(d Delta) {
	if d.IsZero() {
		return
	}
	cam := r.ctx.Camera
	if d.Pitch != 0 || d.Yaw != 0 || d.Roll != 0 {
		cam.Rotate(d.Pitch, d.Yaw, d.Roll)
	}
	cam.MoveForward(d.Forward)
	cam.MoveRight(d.Right)
	cam.MoveDown(d.Down)
	r.ctx.Light.Move(d.Light)
}

// Reset restores the camera and light to their state at creation.
func (r *Renderer) Reset() {
	*r.ctx.Camera = r.homeCamera
	*r.ctx.Light = r.homeLight
}

// Draw renders one frame to display and presents it.
func (r *Renderer) Draw(display Display) error {
	start := time.Now()
	r.stats = FrameStats{}

	r.ctx.Depth.Clear()
	r.clear(display)

	for i := range r.tris {
		r.DrawPolygon(display, &r.tris[i])
	}

	if r.Wireframe || r.LightGizmo {
		w := NewWireframe(r.ctx, display)
		if r.Wireframe {
			for i := range r.tris {
				w.DrawTriangle(&r.tris[i], r.WireColor)
			}
		}
		if r.LightGizmo {
			w.DrawLightGizmo(r.ctx.Light.Position, r.GizmoColor)
		}
	}

	r.stats.RenderTime = time.Since(start)

	if err := display.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	Logger().Debug("frame",
		"render_time", r.stats.RenderTime,
		"drawn", r.stats.TrianglesDrawn,
		"rejected", r.stats.TrianglesRejected,
		"shaded", r.stats.PixelsShaded,
		"occluded", r.stats.PixelsOccluded,
		"clipped", r.stats.PixelsClipped,
	)
	return nil
}

func (r *Renderer) clear(display Display) {
	if c, ok := display.(Clearer); ok {
		c.Clear(r.ClearColor)
		return
	}
	for y := range r.ctx.Height {
		for x := range r.ctx.Width {
			display.PutPixel(x, y, r.ClearColor)
		}
	}
}

// DrawPolygon projects, rasterizes and shades one triangle. A triangle with
// any vertex closer than the near distance is skipped entirely.
func (r *Renderer) DrawPolygon(display Display, tri *scene.Triangle) {
	var verts [3]Pixel
	for i, v := range tri.Vertices() {
		p, ok := VertexShader(r.ctx, Vertex{Position: v})
		if !ok {
			r.stats.TrianglesRejected++
			return
		}
		verts[i] = p
	}
	r.stats.TrianglesDrawn++

	left, right := r.rows.build(verts[:])
	DrawRows(r.ctx, display, left, right, tri, &r.stats)
}

// DrawRows fills each touched row between its left and right boundary,
// depth-testing every on-screen sample and shading the ones that are
// strictly nearer than what is already stored. stats may be nil.
func DrawRows(ctx *FrameContext, display Display, left, right []Pixel, tri *scene.Triangle, stats *FrameStats) {
	if stats == nil {
		stats = &FrameStats{}
	}

	for row := range min(len(left), len(right)) {
		l, r := left[row], right[row]
		if !l.Touched() || !r.Touched() {
			continue
		}
		n := r.X - l.X + 1
		if n <= 0 {
			continue
		}
		stats.RowsFilled++

		if l.Y < 0 || l.Y >= ctx.Height {
			stats.PixelsClipped += n
			continue
		}

		// Sample i of the span sits at x = l.X + i, so only the on-screen
		// index range needs interpolating.
		lo := max(0, -l.X)
		hi := min(n-1, ctx.Width-1-l.X)
		stats.PixelsClipped += n - max(0, hi-lo+1)

		for i := lo; i <= hi; i++ {
			var p Pixel
			switch i {
			case 0:
				p = l
			case n - 1:
				p = r
			default:
				p = sampleAt(l, r, i, n)
			}

			if !ctx.InBounds(p.X, p.Y) {
				stats.PixelsClipped++
				continue
			}
			if !ctx.Depth.TestAndSet(p.X, p.Y, p.ZInv) {
				stats.PixelsOccluded++
				continue
			}
			stats.PixelsShaded++
			display.PutPixel(p.X, p.Y, ColorFromRadiance(PixelShader(ctx, p, tri)))
		}
	}
}
