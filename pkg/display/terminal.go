// Package display holds the output backends for the rasterizer: a terminal
// display built on ultraviolet and image snapshots.
package display

import (
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/scanline/pkg/render"
)

// Terminal renders a framebuffer into a terminal with half-block cells.
// Each cell shows two framebuffer rows, so the framebuffer is cols wide and
// rows*2 high.
type Terminal struct {
	*render.Framebuffer
	term *uv.Terminal
}

// NewTerminal creates a terminal display sized to the terminal's cells.
func NewTerminal(term *uv.Terminal, cols, rows int) *Terminal {
	w, h := FramebufferSize(cols, rows)
	return &Terminal{
		Framebuffer: render.NewFramebuffer(w, h),
		term:        term,
	}
}

// FramebufferSize returns the pixel size that fills cols x rows cells.
func FramebufferSize(cols, rows int) (width, height int) {
	return max(cols, 0), max(rows, 0) * 2
}

// Resize follows a terminal size change.
func (t *Terminal) Resize(cols, rows int) {
	w, h := FramebufferSize(cols, rows)
	t.Framebuffer.Resize(w, h)
}

// Present draws the framebuffer into the terminal and flushes it.
func (t *Terminal) Present() error {
	DrawHalfBlocks(t.term, t.Framebuffer, t.term.Bounds())
	if err := t.term.Display(); err != nil {
		return fmt.Errorf("display terminal: %w", err)
	}
	return nil
}

// DrawHalfBlocks converts fb to terminal cells inside area.
// The upper half block ▀ takes the top pixel as foreground and the bottom
// pixel as background.
func DrawHalfBlocks(scr uv.Screen, fb *render.Framebuffer, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1
		if topY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.GetPixel(col, topY)),
					Bg: cellColor(fb.GetPixel(col, botY)),
				},
			})
		}
	}
}

// cellColor maps transparent pixels to the terminal default.
func cellColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
