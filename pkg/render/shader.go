package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/scene"
)

// MinLightDistanceSq bounds the squared light distance from below so a
// surface point at the light position stays finite.
const MinLightDistanceSq = 1e-6

// PixelShader returns the outgoing radiance at a visible sample: a one-sided
// Lambertian point light with inverse-square falloff plus ambient, tinted by
// the triangle colour.
func PixelShader(ctx *FrameContext, p Pixel, tri *scene.Triangle) math3d.Vec3 {
	light := ctx.Light

	r := light.Position.Sub(p.Pos3D)
	distSq := math.Max(r.LenSq(), MinLightDistanceSq)
	rHat := r.Div(math.Sqrt(distSq))

	cosTheta := math.Max(rHat.Dot(tri.Normal), 0)
	irradiance := light.Power.Scale(1 / (4 * math.Pi * distSq))

	return irradiance.Scale(cosTheta).Add(light.Ambient).Mul(tri.Color)
}
