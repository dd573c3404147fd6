package render

import "math"

// VertexShader projects a world-space vertex to the screen. It returns false
// when the vertex lies closer to the camera plane than Camera.Near (or
// behind it), in which case the caller must drop the whole triangle.
func VertexShader(ctx *FrameContext, v Vertex) (Pixel, bool) {
	cam := ctx.Camera
	p := cam.ToCamera(v.Position)
	if !(p.Z >= cam.Near) {
		return Pixel{}, false
	}

	zinv := 1 / p.Z
	f := cam.FocalLength
	return Pixel{
		X:     int(math.Round(f*p.X*zinv + float64(ctx.Width)/2)),
		Y:     int(math.Round(f*p.Y*zinv + float64(ctx.Height)/2)),
		ZInv:  zinv,
		Pos3D: v.Position,
	}, true
}
