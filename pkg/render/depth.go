package render

// DepthBuffer holds the largest inverse depth written at each pixel this
// frame. Zero means nothing has been drawn.
type DepthBuffer struct {
	width, height int
	data          []float64 // row-major
}

// NewDepthBuffer creates a cleared depth buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{}
	d.Resize(width, height)
	return d
}

// Resize changes the buffer resolution. The buffer is reallocated (and so
// cleared) only when the resolution actually changes; it reports whether
// that happened.
func (d *DepthBuffer) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if width == d.width && height == d.height && d.data != nil {
		return false
	}
	d.width, d.height = width, height
	d.data = make([]float64, width*height)
	return true
}

// Width returns the buffer width in pixels.
func (d *DepthBuffer) Width() int { return d.width }

// Height returns the buffer height in pixels.
func (d *DepthBuffer) Height() int { return d.height }

// Clear resets every entry to zero (call before each frame).
func (d *DepthBuffer) Clear() {
	// Use copy-doubling for faster clearing
	n := len(d.data)
	if n == 0 {
		return
	}
	d.data[0] = 0
	for i := 1; i < n; i *= 2 {
		copy(d.data[i:], d.data[:i])
	}
}

// At returns the stored inverse depth at (x, y), or 0 out of bounds.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0
	}
	return d.data[y*d.width+x]
}

// TestAndSet stores zinv at (x, y) if it is strictly greater than the stored
// value and reports whether it did. The caller guarantees (x, y) is in
// bounds.
func (d *DepthBuffer) TestAndSet(x, y int, zinv float64) bool {
	i := y*d.width + x
	if zinv > d.data[i] {
		d.data[i] = zinv
		return true
	}
	return false
}
