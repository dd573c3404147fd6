// scanline-window - flat-shaded scanline rasterizer in a desktop window
//
// Controls:
//
//	Arrows          - Pitch and yaw the camera
//	Q/E             - Roll left/right
//	W/S/A/D         - Move forward/back/left/right
//	RShift/RCtrl    - Move up/down
//	I/K/J/L/U/O     - Move the light (forward/back/left/right/up/down)
//	R               - Reset view
//	P               - Save snapshot
//	X               - Toggle wireframe
//	G               - Toggle light marker
//	/               - Toggle stats in the title bar
//	Esc             - Quit
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/taigrr/scanline/pkg/config"
	"github.com/taigrr/scanline/pkg/display/window"
	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/viewer"
)

var windowScale = flag.Int("scale", 1, "Window scale factor")

func main() {
	var flags config.Flags
	configPath := flags.Register(flag.CommandLine)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scanline-window - flat-shaded scanline rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scanline-window [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*configPath, flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, flags config.Flags) error {
	var cfg config.Config
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	cfg.Resolve(flags)
	cfg.Backend = config.BackendWindow
	if err := cfg.Validate(); err != nil {
		return err
	}

	_, closeLog, err := viewer.SetupLogging(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	v, err := viewer.New(cfg)
	if err != nil {
		return err
	}

	fb := render.NewFramebuffer(cfg.Width, cfg.Height)
	title := func() string {
		if !v.ShowHUD {
			return "scanline"
		}
		return "scanline | " + v.Summary()
	}

	g := window.New(fb, v.Controls, v, title)
	if err := g.Run("scanline", *windowScale, cfg.FPS); err != nil {
		return fmt.Errorf("run window: %w", err)
	}

	if cfg.Snapshot != "" {
		return v.SaveSnapshot(fb, cfg.Snapshot)
	}
	return nil
}
