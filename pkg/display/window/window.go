// Package window shows the rasterized frame in a desktop window using
// ebiten and polls the keyboard for camera and light controls.
package window

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/scanline/pkg/input"
	"github.com/taigrr/scanline/pkg/render"
)

// Bindings maps held keys to continuous actions.
var Bindings = map[ebiten.Key]input.Action{
	ebiten.KeyArrowUp:      input.PitchUp,
	ebiten.KeyArrowDown:    input.PitchDown,
	ebiten.KeyArrowLeft:    input.YawLeft,
	ebiten.KeyArrowRight:   input.YawRight,
	ebiten.KeyQ:            input.RollLeft,
	ebiten.KeyE:            input.RollRight,
	ebiten.KeyW:            input.MoveForward,
	ebiten.KeyS:            input.MoveBack,
	ebiten.KeyA:            input.MoveLeft,
	ebiten.KeyD:            input.MoveRight,
	ebiten.KeyShiftRight:   input.MoveUp,
	ebiten.KeyControlRight: input.MoveDown,
	ebiten.KeyI:            input.LightForward,
	ebiten.KeyK:            input.LightBack,
	ebiten.KeyJ:            input.LightLeft,
	ebiten.KeyL:            input.LightRight,
	ebiten.KeyU:            input.LightUp,
	ebiten.KeyO:            input.LightDown,
}

// Commands maps key presses to one-shot commands.
var Commands = map[ebiten.Key]input.Command{
	ebiten.KeyEscape: input.Quit,
	ebiten.KeyR:      input.ResetView,
	ebiten.KeyP:      input.Snapshot,
	ebiten.KeyX:      input.ToggleWireframe,
	ebiten.KeySlash:  input.ToggleHUD,
	ebiten.KeyG:      input.ToggleGizmo,
}

// Session is what the window drives once per tick.
type Session interface {
	Step(d render.Display, dt float64) error
	Handle(cmd input.Command, fb *render.Framebuffer) (quit bool, err error)
}

// Game implements ebiten.Game around a framebuffer.
type Game struct {
	fb       *render.Framebuffer
	controls *input.Controls
	session  Session
	title    func() string

	img    *ebiten.Image
	pixels []byte
	last   time.Time
	err    error
}

// New creates a window game that renders session into fb. title, if not
// nil, is polled once per second for the window title.
func New(fb *render.Framebuffer, controls *input.Controls, session Session, title func() string) *Game {
	return &Game{
		fb:       fb,
		controls: controls,
		session:  session,
		title:    title,
	}
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (g *Game) Run(name string, scale, tps int) error {
	ebiten.SetWindowTitle(name)
	ebiten.SetWindowSize(g.fb.Width*max(scale, 1), g.fb.Height*max(scale, 1))
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return g.err
}

// Update polls input and renders one frame.
func (g *Game) Update() error {
	for key, action := range Bindings {
		g.controls.Set(action, ebiten.IsKeyPressed(key))
	}
	for key, cmd := range Commands {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		quit, err := g.session.Handle(cmd, g.fb)
		if err != nil {
			render.Logger().Warn("command failed", "command", cmd, "error", err)
		}
		if quit {
			return ebiten.Termination
		}
	}

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = min(now.Sub(g.last).Seconds(), 0.1)
	}
	if g.last.Second() != now.Second() && g.title != nil {
		ebiten.SetWindowTitle(g.title())
	}
	g.last = now

	if err := g.session.Step(g.fb, dt); err != nil {
		g.err = err
		return ebiten.Termination
	}
	return nil
}

// Draw uploads the framebuffer to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil || g.img.Bounds().Dx() != g.fb.Width || g.img.Bounds().Dy() != g.fb.Height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(g.fb.Width, g.fb.Height)
	}
	g.pixels = g.fb.CopyRGBA(g.pixels)
	g.img.WritePixels(g.pixels)
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen at the framebuffer size; ebiten scales it
// to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
