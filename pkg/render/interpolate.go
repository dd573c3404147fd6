package render

import "math"

// Interpolate fills result with len(result) evenly spaced samples from a to
// b. The first sample is a and the last is b, copied exactly; with a single
// slot the result is a. Screen x, y and ZInv are linear in screen space;
// Pos3D is interpolated as Pos3D*ZInv and divided by the interpolated ZInv,
// which keeps it perspective-correct.
func Interpolate(a, b Pixel, result []Pixel) {
	n := len(result)
	if n == 0 {
		return
	}
	result[0] = a
	if n == 1 {
		return
	}
	for i := 1; i < n-1; i++ {
		result[i] = sampleAt(a, b, i, n)
	}
	result[n-1] = b
}

// sampleAt returns the i-th of n (n >= 2) interpolated samples between a and
// b. It does not special-case the endpoints.
func sampleAt(a, b Pixel, i, n int) Pixel {
	t := float64(i) / float64(n-1)
	s := 1 - t

	zinv := a.ZInv*s + b.ZInv*t
	pa := a.Pos3D.Scale(a.ZInv)
	pb := b.Pos3D.Scale(b.ZInv)

	return Pixel{
		X:     int(math.Round(float64(a.X)*s + float64(b.X)*t)),
		Y:     int(math.Round(float64(a.Y)*s + float64(b.Y)*t)),
		ZInv:  zinv,
		Pos3D: pa.Lerp(pb, t).Div(zinv),
	}
}
