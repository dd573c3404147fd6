package render

import (
	"errors"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/scene"
)

// recordDisplay implements Display and remembers every write.
type recordDisplay struct {
	pixels   map[[2]int]Color
	writes   int
	presents int
}

func newRecordDisplay() *recordDisplay {
	return &recordDisplay{pixels: make(map[[2]int]Color)}
}

func (d *recordDisplay) PutPixel(x, y int, c Color) {
	d.pixels[[2]int{x, y}] = c
	d.writes++
}

func (d *recordDisplay) Present() error {
	d.presents++
	return nil
}

var errPresent = errors.New("surface lost")

// failingDisplay fails on Present.
type failingDisplay struct{ recordDisplay }

func (d *failingDisplay) Present() error { return errPresent }

// createTestContext creates a frame context with an identity camera at pos
// and an ambient-only white light, so shaded colours equal triangle colours.
func createTestContext(width, height int, pos math3d.Vec3, focal float64) *FrameContext {
	cam := NewCamera(pos, focal)
	light := &Light{
		Position: math3d.V3(0, 0, -10),
		Power:    math3d.Zero3(),
		Ambient:  math3d.Splat(1),
	}
	return NewFrameContext(cam, light, width, height)
}

// flatTriangle returns a triangle with the given colour whose normal faces
// the camera.
func flatTriangle(v0, v1, v2, color math3d.Vec3) scene.Triangle {
	return scene.Triangle{V0: v0, V1: v1, V2: v2, Color: color, Normal: math3d.V3(0, 0, -1)}
}

// screenPixel builds a projected sample directly in screen space.
func screenPixel(x, y int, zinv float64) Pixel {
	return Pixel{X: x, Y: y, ZInv: zinv, Pos3D: math3d.V3(float64(x), float64(y), 1/zinv)}
}
