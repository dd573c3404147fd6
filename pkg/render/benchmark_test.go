package render

import (
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/scene"
)

func BenchmarkDrawCornellBox(b *testing.B) {
	cam := NewCamera(math3d.V3(0, 0, -3.001), 500)
	r := NewRenderer(cam, NewLight(), scene.CornellBox(), 500, 500)
	fb := NewFramebuffer(500, 500)

	for b.Loop() {
		_ = r.Draw(fb)
	}
}

func BenchmarkInterpolate(b *testing.B) {
	a := screenPixel(0, 0, 1)
	c := screenPixel(499, 0, 0.25)
	result := make([]Pixel, 500)

	for b.Loop() {
		Interpolate(a, c, result)
	}
}

func BenchmarkComputePolygonRows(b *testing.B) {
	verts := []Pixel{
		screenPixel(250, 0, 1),
		screenPixel(0, 499, 0.5),
		screenPixel(499, 499, 0.25),
	}
	var rows rowBuilder

	for b.Loop() {
		_, _ = rows.build(verts)
	}
}

func BenchmarkDepthClear(b *testing.B) {
	d := NewDepthBuffer(500, 500)

	for b.Loop() {
		d.Clear()
	}
}
