// Package viewer wires a scene, the renderer and the input controls
// together for the command-line and window front ends.
package viewer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/scanline/pkg/config"
	"github.com/taigrr/scanline/pkg/display"
	"github.com/taigrr/scanline/pkg/input"
	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/scene"
)

// DefaultSnapshot is written by the snapshot key when no path is configured.
const DefaultSnapshot = "screenshot.bmp"

// CornellName is the display name of the built-in scene.
const CornellName = "cornell box"

// Viewer is one interactive rendering session.
type Viewer struct {
	Config   config.Config
	Name     string
	Renderer *render.Renderer
	Controls *input.Controls
	HUD      *HUD
	ShowHUD  bool
}

// LoadScene returns the triangles for model and a display name. An empty
// model selects the Cornell box.
func LoadScene(model string) (scene.Triangles, string, error) {
	if model == "" {
		return scene.CornellBox(), CornellName, nil
	}
	tris, err := scene.LoadModel(model)
	if err != nil {
		return nil, "", fmt.Errorf("load scene: %w", err)
	}
	return tris, filepath.Base(model), nil
}

// New loads the configured scene and creates a viewer. cfg should already
// be resolved.
func New(cfg config.Config) (*Viewer, error) {
	tris, name, err := LoadScene(cfg.Model)
	if err != nil {
		return nil, err
	}
	return NewWithScene(cfg, tris, name), nil
}

// NewWithScene creates a viewer for an already loaded scene.
func NewWithScene(cfg config.Config, src scene.Source, name string) *Viewer {
	tris := src.Triangles()

	camera := render.NewCamera(cfg.Camera(), cfg.FocalLengthFor(cfg.Height))
	light := render.NewLight()
	light.Position = cfg.Light()
	light.Power = cfg.Power()
	light.Ambient = cfg.Ambient()

	r := render.NewRenderer(camera, light, tris, cfg.Width, cfg.Height)
	r.Wireframe = cfg.Wireframe
	r.LightGizmo = cfg.LightGizmo

	controls := input.NewControls(cfg.FPS, cfg.MoveSpeed, cfg.TurnSpeed, cfg.LightSpeed)

	return &Viewer{
		Config:   cfg,
		Name:     name,
		Renderer: r,
		Controls: controls,
		HUD:      NewHUD(name, len(tris)),
		ShowHUD:  true,
	}
}

// Resize changes the output resolution. With no configured focal length
// the camera keeps a focal length equal to the frame height.
func (v *Viewer) Resize(width, height int) {
	v.Renderer.Resize(width, height)
	v.Renderer.Camera().FocalLength = v.Config.FocalLengthFor(v.Renderer.Height())
}

// Step applies one frame of input and draws the frame to d.
func (v *Viewer) Step(d render.Display, dt float64) error {
	v.Renderer.Update(v.Controls.Delta(dt))
	if err := v.Renderer.Draw(d); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	v.HUD.UpdateFPS()
	return nil
}

// Handle runs a one-shot command. fb is the frame used for snapshots. It
// reports whether the viewer should quit.
func (v *Viewer) Handle(cmd input.Command, fb *render.Framebuffer) (quit bool, err error) {
	switch cmd {
	case input.Quit:
		return true, nil
	case input.ResetView:
		v.Renderer.Reset()
		v.Renderer.Camera().FocalLength = v.Config.FocalLengthFor(v.Renderer.Height())
		v.Controls.Reset()
		render.Logger().Info("view reset")
	case input.Snapshot:
		path := v.Config.Snapshot
		if path == "" {
			path = DefaultSnapshot
		}
		if err := v.SaveSnapshot(fb, path); err != nil {
			return false, err
		}
	case input.ToggleWireframe:
		v.Renderer.Wireframe = !v.Renderer.Wireframe
	case input.ToggleGizmo:
		v.Renderer.LightGizmo = !v.Renderer.LightGizmo
	case input.ToggleHUD:
		v.ShowHUD = !v.ShowHUD
	}
	return false, nil
}

// SaveSnapshot writes the current contents of fb to path.
func (v *Viewer) SaveSnapshot(fb *render.Framebuffer, path string) error {
	opts := display.SnapshotOptions{Scale: v.Config.SnapshotScale}
	if err := display.SaveSnapshot(path, fb.ToImage(), opts); err != nil {
		return err
	}
	render.Logger().Info("snapshot saved", "path", path, "width", fb.Width*max(opts.Scale, 1), "height", fb.Height*max(opts.Scale, 1))
	return nil
}

// RenderFrames draws n frames into fb without input, as the headless
// backend does.
func (v *Viewer) RenderFrames(fb *render.Framebuffer, n int) error {
	fb.Resize(v.Renderer.Width(), v.Renderer.Height())
	dt := 1 / float64(max(v.Config.FPS, 1))
	for i := range n {
		if err := v.Step(fb, dt); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// SetupLogging installs a text logger at the configured level, writing to
// cfg.LogFile or to fallback when no file is set. The returned function
// closes the log file.
func SetupLogging(cfg config.Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	render.SetLogger(logger)
	return logger, closeFn, nil
}

// Summary is a one-line status: model name, FPS and frame counters.
func (v *Viewer) Summary() string {
	s := v.Renderer.Stats()
	var flags []string
	if v.Renderer.Wireframe {
		flags = append(flags, "wire")
	}
	if v.Renderer.LightGizmo {
		flags = append(flags, "light")
	}
	out := fmt.Sprintf("%s | %.0f FPS | %d/%d tris | %d px",
		v.Name, v.HUD.FPS(), s.TrianglesDrawn, len(v.Renderer.Triangles()), s.PixelsShaded)
	if len(flags) > 0 {
		out += " | " + strings.Join(flags, " ")
	}
	return out
}
