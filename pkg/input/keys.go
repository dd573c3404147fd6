package input

// TerminalBindings maps terminal key names, as matched by ultraviolet key
// events, to actions. Terminals have no separate shift or ctrl key events,
// so Space and C move the camera up and down.
var TerminalBindings = map[string]Action{
	"up":    PitchUp,
	"down":  PitchDown,
	"left":  YawLeft,
	"right": YawRight,
	"q":     RollLeft,
	"e":     RollRight,
	"w":     MoveForward,
	"s":     MoveBack,
	"a":     MoveLeft,
	"d":     MoveRight,
	"space": MoveUp,
	"c":     MoveDown,
	"i":     LightForward,
	"k":     LightBack,
	"j":     LightLeft,
	"l":     LightRight,
	"u":     LightUp,
	"o":     LightDown,
}

// Command is a one-shot key action handled by the viewer, not the renderer.
type Command int

const (
	NoCommand Command = iota
	Quit
	ResetView
	Snapshot
	ToggleWireframe
	ToggleHUD
	ToggleGizmo
)

// TerminalCommands maps terminal key names to one-shot commands.
var TerminalCommands = map[string]Command{
	"esc":    Quit,
	"ctrl+c": Quit,
	"r":      ResetView,
	"p":      Snapshot,
	"x":      ToggleWireframe,
	"?":      ToggleHUD,
	"h":      ToggleHUD,
	"g":      ToggleGizmo,
}

var commandNames = map[Command]string{
	NoCommand:       "none",
	Quit:            "quit",
	ResetView:       "reset",
	Snapshot:        "snapshot",
	ToggleWireframe: "toggle-wireframe",
	ToggleHUD:       "toggle-hud",
	ToggleGizmo:     "toggle-gizmo",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "unknown"
}
