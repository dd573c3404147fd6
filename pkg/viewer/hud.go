package viewer

import (
	"fmt"
	"io"
	"time"

	"github.com/taigrr/scanline/pkg/render"
)

// HUD renders an overlay with model info and frame stats
type HUD struct {
	name      string
	triCount  int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	now       func() time.Time
}

// NewHUD creates a new HUD
func NewHUD(name string, triCount int) *HUD {
	return &HUD{
		name:     name,
		triCount: triCount,
		fpsTime:  time.Now(),
		now:      time.Now,
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	now := h.now()
	elapsed := now.Sub(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = now
	}
}

// FPS returns the frame rate measured over the last full second.
func (h *HUD) FPS() float64 { return h.fps }

// Render writes the overlay to w as ANSI escapes for a terminal of
// width x height cells. The HUD rows are always cleared so toggling the
// overlay off works.
func (h *HUD) Render(w io.Writer, width, height int, show bool, r *render.Renderer) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	fmt.Fprint(w, moveTo(1, 1)+clearLine)
	fmt.Fprint(w, moveTo(height, 1)+clearLine)

	if !show {
		return
	}

	// Top left: FPS
	fmt.Fprintf(w, "%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	// Top middle: model name
	titleCol := max((width-len(h.name)-2)/2, 1)
	fmt.Fprintf(w, "%s%s%s%s %s %s", moveTo(1, titleCol), bold, bgBlack, fgWhite, h.name, reset)

	// Top right: triangles drawn this frame
	stats := r.Stats()
	tris := fmt.Sprintf("%d/%d tris", stats.TrianglesDrawn, h.triCount)
	triCol := max(width-len(tris)-1, 1)
	fmt.Fprintf(w, "%s%s%s%s %s %s", moveTo(1, triCol), bgBlack, fgCyan, bold, tris, reset)

	// Bottom: overlay checkboxes
	check := func(on bool) string {
		if on {
			return "[✓]"
		}
		return "[ ]"
	}
	fmt.Fprintf(w, "%s%s%s %s Wireframe  %s Light %s",
		moveTo(height, 1), bgBlack, fgWhite, check(r.Wireframe), check(r.LightGizmo), reset)

	// Bottom right: render time
	timing := fmt.Sprintf("%v", stats.RenderTime.Round(time.Microsecond))
	timeCol := max(width-len(timing)-1, 1)
	fmt.Fprintf(w, "%s%s%s%s %s %s", moveTo(height, timeCol), bgBlack, dim, fgYellow, timing, reset)
}
