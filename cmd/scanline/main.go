// scanline - flat-shaded scanline rasterizer
// Renders the Cornell box or a GLB model in the terminal, or headless to an
// image file.
//
// Controls:
//
//	Arrows      - Pitch and yaw the camera
//	Q/E         - Roll left/right
//	W/S/A/D     - Move forward/back/left/right
//	Space/C     - Move up/down
//	I/K/J/L/U/O - Move the light (forward/back/left/right/up/down)
//	R           - Reset view
//	P           - Save snapshot
//	X           - Toggle wireframe
//	G           - Toggle light marker
//	?/H         - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/scanline/pkg/config"
	"github.com/taigrr/scanline/pkg/display"
	"github.com/taigrr/scanline/pkg/input"
	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/viewer"
)

// holdTimeout releases keys in terminals that never report key releases.
const holdTimeout = 500 * time.Millisecond

func main() {
	var flags config.Flags
	configPath := flags.Register(flag.CommandLine)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scanline - flat-shaded scanline rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scanline [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Arrows      - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Move camera\n")
		fmt.Fprintf(os.Stderr, "  Space/C     - Move camera up/down\n")
		fmt.Fprintf(os.Stderr, "  I/K/J/L/U/O - Move light\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  P           - Save snapshot\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  G           - Toggle light marker\n")
		fmt.Fprintf(os.Stderr, "  ?/H         - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(*configPath, flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string, flags config.Flags) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	cfg.Resolve(flags)
	return cfg, cfg.Validate()
}

func run(configPath string, flags config.Flags) error {
	cfg, err := loadConfig(configPath, flags)
	if err != nil {
		return err
	}

	switch cfg.Backend {
	case config.BackendHeadless:
		return runHeadless(cfg)
	case config.BackendTerminal:
		return runTerminal(cfg)
	default:
		return fmt.Errorf("backend %q is provided by scanline-window", cfg.Backend)
	}
}

func runHeadless(cfg config.Config) error {
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
	if err := v.RenderFrames(fb, cfg.Frames); err != nil {
		return err
	}
	if err := v.SaveSnapshot(fb, cfg.Snapshot); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, v.Summary())
	return nil
}

func runTerminal(cfg config.Config) error {
	_, closeLog, err := viewer.SetupLogging(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	tris, name, err := viewer.LoadScene(cfg.Model)
	if err != nil {
		return err
	}

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	out := display.NewTerminal(term, width, height)
	cfg.Width, cfg.Height = out.Width, out.Height
	v := viewer.NewWithScene(cfg, tris, name)
	v.Controls.HoldTimeout = holdTimeout

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Key state goes straight to the controls; commands and resizes are
	// handled on the frame loop.
	cmds := make(chan input.Command, 16)
	sizes := make(chan [2]int, 1)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case <-sizes:
				default:
				}
				sizes <- [2]int{ev.Width, ev.Height}

			case uv.KeyPressEvent:
				for key, cmd := range input.TerminalCommands {
					if ev.MatchString(key) {
						if cmd == input.Quit {
							cancel()
							return
						}
						cmds <- cmd
					}
				}
				for key, action := range input.TerminalBindings {
					if ev.MatchString(key) {
						v.Controls.Press(action)
					}
				}

			case uv.KeyReleaseEvent:
				for key, action := range input.TerminalBindings {
					if ev.MatchString(key) {
						v.Controls.Release(action)
					}
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(cfg.FPS)
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return saveOnExit(v, out.Framebuffer)
		case size := <-sizes:
			width, height = size[0], size[1]
			term.Erase()
			term.Resize(width, height)
			out.Resize(width, height)
			v.Resize(out.Width, out.Height)
		case cmd := <-cmds:
			if _, err := v.Handle(cmd, out.Framebuffer); err != nil {
				render.Logger().Warn("command failed", "command", cmd, "error", err)
			}
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		if err := v.Step(out, dt); err != nil {
			cleanup()
			return err
		}

		// HUD overlay (render clears its lines when HUD off)
		v.HUD.Render(os.Stdout, width, height, v.ShowHUD, v.Renderer)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// saveOnExit writes the last frame when a snapshot path is configured.
func saveOnExit(v *viewer.Viewer, fb *render.Framebuffer) error {
	if v.Config.Snapshot == "" {
		return nil
	}
	return v.SaveSnapshot(fb, v.Config.Snapshot)
}
