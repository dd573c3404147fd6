package render

import (
	"image/color"

	"github.com/taigrr/scanline/pkg/math3d"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorGray    = color.RGBA{128, 128, 128, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// ColorFromRadiance converts linear radiance to an opaque 8-bit colour.
// Each channel is clamped to [0,1] before scaling.
func ColorFromRadiance(v math3d.Vec3) Color {
	v = v.Clamp(0, 1)
	return color.RGBA{
		R: uint8(v.X * 255),
		G: uint8(v.Y * 255),
		B: uint8(v.Z * 255),
		A: 255,
	}
}
