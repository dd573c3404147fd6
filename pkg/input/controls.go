// Package input turns held keys into smoothed per-frame camera and light
// deltas for the renderer.
package input

import (
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// Action is a continuous control bound to a key.
type Action int

const (
	PitchUp Action = iota
	PitchDown
	YawLeft
	YawRight
	RollLeft
	RollRight
	MoveForward
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	LightForward
	LightBack
	LightLeft
	LightRight
	LightUp
	LightDown

	numActions
)

var actionNames = [numActions]string{
	"pitch-up", "pitch-down", "yaw-left", "yaw-right", "roll-left", "roll-right",
	"move-forward", "move-back", "move-left", "move-right", "move-up", "move-down",
	"light-forward", "light-back", "light-left", "light-right", "light-up", "light-down",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "unknown"
	}
	return actionNames[a]
}

// Axis tracks a velocity that a harmonica spring eases toward a target.
type Axis struct {
	Velocity float64
	accel    float64 // internal spring velocity
	spring   harmonica.Spring
}

// NewAxis creates an axis with a critically damped spring.
func NewAxis(fps int) Axis {
	return Axis{
		// Frequency 6.0 = quick response, damping 1.0 = no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Step moves the velocity one frame toward target and returns it.
func (a *Axis) Step(target float64) float64 {
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, target)
	return a.Velocity
}

// axis indices
const (
	axPitch = iota
	axYaw
	axRoll
	axForward
	axRight
	axDown
	axLightX
	axLightY
	axLightZ
	numAxes
)

// Controls collects key state from an event source and produces
// render.Delta values once per frame. Press and Release may be called from
// another goroutine than Delta.
type Controls struct {
	MoveSpeed  float64 // camera units per second
	TurnSpeed  float64 // radians per second
	LightSpeed float64 // light units per second

	// HoldTimeout, if positive, releases a key that has not been pressed
	// again within the timeout. Terminals report key repeats but often no
	// releases.
	HoldTimeout time.Duration

	mu        sync.Mutex
	held      [numActions]bool
	pressedAt [numActions]time.Time
	axes      [numAxes]Axis
	fps       int
	now       func() time.Time
}

// NewControls creates controls whose springs run at fps.
func NewControls(fps int, moveSpeed, turnSpeed, lightSpeed float64) *Controls {
	c := &Controls{
		MoveSpeed:  moveSpeed,
		TurnSpeed:  turnSpeed,
		LightSpeed: lightSpeed,
		fps:        max(fps, 1),
		now:        time.Now,
	}
	c.resetAxes()
	return c
}

func (c *Controls) resetAxes() {
	for i := range c.axes {
		c.axes[i] = NewAxis(c.fps)
	}
}

// Press marks an action as held.
func (c *Controls) Press(a Action) {
	if a < 0 || a >= numActions {
		return
	}
	c.mu.Lock()
	c.held[a] = true
	c.pressedAt[a] = c.now()
	c.mu.Unlock()
}

// Release marks an action as no longer held.
func (c *Controls) Release(a Action) {
	if a < 0 || a >= numActions {
		return
	}
	c.mu.Lock()
	c.held[a] = false
	c.mu.Unlock()
}

// Set presses or releases an action; used by backends that poll key state.
func (c *Controls) Set(a Action, down bool) {
	if down {
		c.Press(a)
	} else {
		c.Release(a)
	}
}

// Held reports whether an action is currently held.
func (c *Controls) Held(a Action) bool {
	if a < 0 || a >= numActions {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isHeld(a, c.now())
}

func (c *Controls) isHeld(a Action, now time.Time) bool {
	if !c.held[a] {
		return false
	}
	if c.HoldTimeout > 0 && now.Sub(c.pressedAt[a]) > c.HoldTimeout {
		c.held[a] = false
		return false
	}
	return true
}

// Reset releases every key and stops all motion.
func (c *Controls) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.held = [numActions]bool{}
	c.resetAxes()
}

// Delta advances the springs by one frame of dt seconds and returns the
// resulting camera and light movement.
func (c *Controls) Delta(dt float64) render.Delta {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	dir := func(pos, neg Action) float64 {
		var v float64
		if c.isHeld(pos, now) {
			v++
		}
		if c.isHeld(neg, now) {
			v--
		}
		return v
	}

	// Arrow up tilts the view up, which is a negative rotation about x
	// because camera y points down.
	targets := [numAxes]float64{
		axPitch:   dir(PitchDown, PitchUp) * c.TurnSpeed,
		axYaw:     dir(YawLeft, YawRight) * c.TurnSpeed,
		axRoll:    dir(RollRight, RollLeft) * c.TurnSpeed,
		axForward: dir(MoveForward, MoveBack) * c.MoveSpeed,
		axRight:   dir(MoveRight, MoveLeft) * c.MoveSpeed,
		axDown:    dir(MoveDown, MoveUp) * c.MoveSpeed,
		axLightX:  dir(LightRight, LightLeft) * c.LightSpeed,
		axLightY:  dir(LightDown, LightUp) * c.LightSpeed,
		axLightZ:  dir(LightForward, LightBack) * c.LightSpeed,
	}

	var v [numAxes]float64
	for i := range c.axes {
		v[i] = c.axes[i].Step(targets[i]) * dt
	}

	return render.Delta{
		Pitch:   v[axPitch],
		Yaw:     v[axYaw],
		Roll:    v[axRoll],
		Forward: v[axForward],
		Right:   v[axRight],
		Down:    v[axDown],
		Light:   math3d.V3(v[axLightX], v[axLightY], v[axLightZ]),
	}
}
