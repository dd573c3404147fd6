package render

import (
	"image"
	"image/color"
)

// Framebuffer is an in-memory Display. Terminal, window and headless
// backends render into one and then copy it out.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Resize changes the dimensions, reallocating only when they differ.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.Width && height == fb.Height {
		return
	}
	fb.Width, fb.Height = width, height
	fb.Pixels = make([]color.RGBA, width*height)
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	fb.Pixels[0] = c
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// PutPixel implements Display.
func (fb *Framebuffer) PutPixel(x, y int, c Color) {
	fb.SetPixel(x, y, c)
}

// Present implements Display. The framebuffer is its own destination, so
// there is nothing to flush.
func (fb *Framebuffer) Present() error {
	return nil
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	Line(x0, y0, x1, y1, func(x, y int) { fb.SetPixel(x, y, c) })
}

// DrawRectOutline draws a rectangle outline.
func (fb *Framebuffer) DrawRectOutline(x, y, w, h int, c color.RGBA) {
	rectOutline(x, y, w, h, func(px, py int) { fb.SetPixel(px, py, c) })
}

func rectOutline(x, y, w, h int, plot func(x, y int)) {
	// Top and bottom
	for px := x; px < x+w; px++ {
		plot(px, y)
		plot(px, y+h-1)
	}
	// Left and right
	for py := y; py < y+h; py++ {
		plot(x, py)
		plot(x+w-1, py)
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fb.CopyRGBA(img.Pix)
	return img
}

// CopyRGBA writes the pixels as packed RGBA bytes into dst, growing it if
// needed, and returns the filled slice.
func (fb *Framebuffer) CopyRGBA(dst []byte) []byte {
	n := len(fb.Pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range fb.Pixels {
		dst[i*4+0] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = c.A
	}
	return dst
}
