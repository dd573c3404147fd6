package render

// FrameContext carries the state every pipeline stage reads for one frame.
// It is owned by a single Renderer and mutated only between frames.
type FrameContext struct {
	Camera *Camera
	Light  *Light
	Depth  *DepthBuffer
	Width  int
	Height int
}

// NewFrameContext creates a context with a depth buffer of the given size.
func NewFrameContext(camera *Camera, light *Light, width, height int) *FrameContext {
	return &FrameContext{
		Camera: camera,
		Light:  light,
		Depth:  NewDepthBuffer(width, height),
		Width:  width,
		Height: height,
	}
}

// InBounds reports whether (x, y) lies in [0,Width) x [0,Height).
func (ctx *FrameContext) InBounds(x, y int) bool {
	return x >= 0 && x < ctx.Width && y >= 0 && y < ctx.Height
}

// Resize updates the screen size and resizes the depth buffer to match. It
// reports whether the depth buffer was reallocated.
func (ctx *FrameContext) Resize(width, height int) bool {
	ctx.Width, ctx.Height = max(width, 0), max(height, 0)
	return ctx.Depth.Resize(ctx.Width, ctx.Height)
}
