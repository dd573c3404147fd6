package config

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scanline.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"width": 320,
		"height": 200,
		"camera_position": [1, 2, 3],
		"ambient_power": 0,
		"backend": "headless",
		"snapshot": "out.png"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 200 {
		t.Errorf("size = %dx%d, want 320x200", cfg.Width, cfg.Height)
	}
	if got := cfg.Camera(); got != math3d.V3(1, 2, 3) {
		t.Errorf("Camera() = %v", got)
	}

	cfg.Resolve(Flags{})
	if got := cfg.Ambient(); got != (math3d.Vec3{}) {
		t.Errorf("explicit zero ambient was replaced: %v", got)
	}
	if got := cfg.Power(); got != math3d.Splat(DefaultLightPower) {
		t.Errorf("Power() = %v, want default", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		if err == nil || !strings.Contains(err.Error(), "config: read") {
			t.Errorf("err = %v", err)
		}
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"width": "wide"}`))
		if err == nil || !strings.Contains(err.Error(), "config: parse") {
			t.Errorf("err = %v", err)
		}
	})
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("size = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Backend != BackendTerminal {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.FPS != DefaultFPS || cfg.Frames != DefaultFrames || cfg.SnapshotScale != 1 {
		t.Errorf("FPS=%d Frames=%d SnapshotScale=%d", cfg.FPS, cfg.Frames, cfg.SnapshotScale)
	}
	if got := cfg.Camera(); got != math3d.V3(0, 0, -3.001) {
		t.Errorf("Camera() = %v", got)
	}
	if got := cfg.Light(); got != math3d.V3(0, -0.5, -0.7) {
		t.Errorf("Light() = %v", got)
	}
	if got := cfg.FocalLengthFor(480); got != 480 {
		t.Errorf("FocalLengthFor(480) = %v, want frame height", got)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel() = %v", cfg.SlogLevel())
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{Width: 100, Height: 100, Backend: BackendWindow, FocalLength: 50}
	cfg.Resolve(Flags{
		Width:       640,
		FocalLength: 300,
		Backend:     BackendHeadless,
		Snapshot:    "frame.bmp",
		LogLevel:    "debug",
		Wireframe:   true,
	})

	if cfg.Width != 640 || cfg.Height != 100 {
		t.Errorf("size = %dx%d, want 640x100", cfg.Width, cfg.Height)
	}
	if cfg.Backend != BackendHeadless || cfg.Snapshot != "frame.bmp" {
		t.Errorf("Backend=%q Snapshot=%q", cfg.Backend, cfg.Snapshot)
	}
	if got := cfg.FocalLengthFor(100); got != 300 {
		t.Errorf("FocalLengthFor = %v, want 300", got)
	}
	if !cfg.Wireframe {
		t.Error("Wireframe flag not applied")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v", cfg.SlogLevel())
	}
}

func TestValidate(t *testing.T) {
	negative := -1.0
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"ok", Config{Backend: BackendTerminal}, ""},
		{"unknown backend", Config{Backend: "vga"}, "unknown backend"},
		{"negative focal", Config{Backend: BackendTerminal, FocalLength: -1}, "focal_length"},
		{"negative power", Config{Backend: BackendTerminal, LightPower: &negative}, "light_power"},
		{"bad snapshot", Config{Backend: BackendTerminal, Snapshot: "frame.gif"}, "unsupported snapshot"},
		{"headless without snapshot", Config{Backend: BackendHeadless}, "needs a snapshot"},
		{"bad level", Config{Backend: BackendTerminal, LogLevel: "loud"}, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestSupportedSnapshot(t *testing.T) {
	for path, want := range map[string]bool{
		"a.png":  true,
		"a.BMP":  true,
		"a.webp": true,
		"a.tga":  true,
		"a.jpg":  false,
		"a":      false,
	} {
		if got := SupportedSnapshot(path); got != want {
			t.Errorf("SupportedSnapshot(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestFlagsRegister(t *testing.T) {
	var flags Flags
	fs := flag.NewFlagSet("scanline", flag.ContinueOnError)
	path := flags.Register(fs)

	err := fs.Parse([]string{"-config", "c.json", "-width", "320", "-backend", "headless", "-wireframe", "-snapshot", "f.webp"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *path != "c.json" {
		t.Errorf("config path = %q", *path)
	}
	if flags.Width != 320 || flags.Backend != BackendHeadless || !flags.Wireframe || flags.Snapshot != "f.webp" {
		t.Errorf("flags = %+v", flags)
	}
}
