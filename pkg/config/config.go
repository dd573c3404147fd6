// Package config loads viewer settings from a JSON file and merges them with
// command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/scanline/pkg/math3d"
)

// Backends accepted by the viewer.
const (
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
	BackendWindow   = "window"
)

// Config holds the scene, camera and output settings.
type Config struct {
	// Frame
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	FocalLength float64 `json:"focal_length"` // 0 follows the frame height

	// Scene
	Model          string      `json:"model"` // empty selects the Cornell box
	CameraPosition *[3]float64 `json:"camera_position"`
	LightPosition  *[3]float64 `json:"light_position"`
	LightPower     *float64    `json:"light_power"`
	AmbientPower   *float64    `json:"ambient_power"`

	// Overlays
	Wireframe  bool `json:"wireframe"`
	LightGizmo bool `json:"light_gizmo"`

	// Output
	Backend       string `json:"backend"`
	Snapshot      string `json:"snapshot"`
	SnapshotScale int    `json:"snapshot_scale"`
	Frames        int    `json:"frames"` // headless only
	FPS           int    `json:"fps"`

	// Controls
	MoveSpeed  float64 `json:"move_speed"`
	TurnSpeed  float64 `json:"turn_speed"`
	LightSpeed float64 `json:"light_speed"`

	// Logging
	LogFile  string `json:"log_file"`
	LogLevel string `json:"log_level"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting alone.
type Flags struct {
	Width         int
	Height        int
	FocalLength   float64
	Model         string
	Backend       string
	Snapshot      string
	SnapshotScale int
	Frames        int
	FPS           int
	LogFile       string
	LogLevel      string
	Wireframe     bool
	LightGizmo    bool
}

// Register binds the flags to fs. The config file path is returned
// separately since it is read before the flags are applied.
func (f *Flags) Register(fs *flag.FlagSet) (configPath *string) {
	configPath = fs.String("config", "", "Path to a JSON config file")
	fs.IntVar(&f.Width, "width", 0, "Frame width in pixels (default 500, terminal: window width)")
	fs.IntVar(&f.Height, "height", 0, "Frame height in pixels (default 500, terminal: window height)")
	fs.Float64Var(&f.FocalLength, "focal", 0, "Focal length in pixels (default: frame height)")
	fs.StringVar(&f.Model, "model", "", "Path to a GLB/glTF model (default: Cornell box)")
	fs.StringVar(&f.Backend, "backend", "", "Output backend: terminal, headless or window")
	fs.StringVar(&f.Snapshot, "snapshot", "", "Write the last frame to this .png/.bmp/.webp/.tga file")
	fs.IntVar(&f.SnapshotScale, "snapshot-scale", 0, "Integer upscale factor for snapshots")
	fs.IntVar(&f.Frames, "frames", 0, "Frames to render in headless mode")
	fs.IntVar(&f.FPS, "fps", 0, "Target FPS")
	fs.StringVar(&f.LogFile, "log", "", "Write logs to this file")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.BoolVar(&f.Wireframe, "wireframe", false, "Draw triangle edges over the shaded frame")
	fs.BoolVar(&f.LightGizmo, "light-gizmo", false, "Mark the light position")
	return configPath
}

// Defaults
const (
	DefaultWidth      = 500
	DefaultHeight     = 500
	DefaultFPS        = 60
	DefaultFrames     = 1
	DefaultMoveSpeed  = 1.0
	DefaultTurnSpeed  = 1.0
	DefaultLightSpeed = 1.0
)

var (
	DefaultCameraPosition = [3]float64{0, 0, -3.001}
	DefaultLightPosition  = [3]float64{0, -0.5, -0.7}
	DefaultLightPower     = 1.1
	DefaultAmbientPower   = 0.5
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flag overrides and fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FocalLength > 0 {
		c.FocalLength = flags.FocalLength
	}
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.Backend != "" {
		c.Backend = flags.Backend
	}
	if flags.Snapshot != "" {
		c.Snapshot = flags.Snapshot
	}
	if flags.SnapshotScale > 0 {
		c.SnapshotScale = flags.SnapshotScale
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.LogFile != "" {
		c.LogFile = flags.LogFile
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	c.Wireframe = c.Wireframe || flags.Wireframe
	c.LightGizmo = c.LightGizmo || flags.LightGizmo

	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.CameraPosition == nil {
		p := DefaultCameraPosition
		c.CameraPosition = &p
	}
	if c.LightPosition == nil {
		p := DefaultLightPosition
		c.LightPosition = &p
	}
	if c.LightPower == nil {
		p := DefaultLightPower
		c.LightPower = &p
	}
	if c.AmbientPower == nil {
		p := DefaultAmbientPower
		c.AmbientPower = &p
	}
	if c.Backend == "" {
		c.Backend = BackendTerminal
	}
	if c.SnapshotScale <= 0 {
		c.SnapshotScale = 1
	}
	if c.Frames <= 0 {
		c.Frames = DefaultFrames
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.MoveSpeed <= 0 {
		c.MoveSpeed = DefaultMoveSpeed
	}
	if c.TurnSpeed <= 0 {
		c.TurnSpeed = DefaultTurnSpeed
	}
	if c.LightSpeed <= 0 {
		c.LightSpeed = DefaultLightSpeed
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendTerminal, BackendHeadless, BackendWindow:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if c.FocalLength < 0 {
		errs = append(errs, fmt.Errorf("focal_length must not be negative, got %g", c.FocalLength))
	}
	if c.LightPower != nil && *c.LightPower < 0 {
		errs = append(errs, fmt.Errorf("light_power must not be negative, got %g", *c.LightPower))
	}
	if c.AmbientPower != nil && *c.AmbientPower < 0 {
		errs = append(errs, fmt.Errorf("ambient_power must not be negative, got %g", *c.AmbientPower))
	}
	if c.Snapshot != "" && !SupportedSnapshot(c.Snapshot) {
		errs = append(errs, fmt.Errorf("unsupported snapshot format %q", filepath.Ext(c.Snapshot)))
	}
	if c.Backend == BackendHeadless && c.Snapshot == "" {
		errs = append(errs, errors.New("headless backend needs a snapshot path"))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SupportedSnapshot reports whether path has an image extension the viewer
// can write.
func SupportedSnapshot(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp", ".webp", ".tga":
		return true
	}
	return false
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// FocalLengthFor returns the focal length to use for a frame of the given
// height.
func (c *Config) FocalLengthFor(height int) float64 {
	if c.FocalLength > 0 {
		return c.FocalLength
	}
	return float64(height)
}

// Camera returns the camera start position.
func (c *Config) Camera() math3d.Vec3 {
	return vec(c.CameraPosition, DefaultCameraPosition)
}

// Light returns the light start position.
func (c *Config) Light() math3d.Vec3 {
	return vec(c.LightPosition, DefaultLightPosition)
}

// Power returns the light power as a grey radiance triple.
func (c *Config) Power() math3d.Vec3 {
	return math3d.Splat(scalar(c.LightPower, DefaultLightPower))
}

// Ambient returns the ambient term as a grey radiance triple.
func (c *Config) Ambient() math3d.Vec3 {
	return math3d.Splat(scalar(c.AmbientPower, DefaultAmbientPower))
}

func vec(p *[3]float64, def [3]float64) math3d.Vec3 {
	if p == nil {
		p = &def
	}
	return math3d.V3(p[0], p[1], p[2])
}

func scalar(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
