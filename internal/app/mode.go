package app

// Mode is the top-level interaction context that gates key routing.
type Mode int

const (
	ModeRunning Mode = iota // Simulation advancing
	ModeEditing             // Paused, cursor active
	ModeHelp                // Help overlay visible
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "RUNNING"
	case ModeEditing:
		return "EDIT"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// Flags is the stored interaction state. The mode is always derived from
// it through Mode so the precedence lives in one place.
type Flags struct {
	ShowHelp bool
	Running  bool
}

// Mode applies the precedence help > editing > running.
func (f Flags) Mode() Mode {
	switch {
	case f.ShowHelp:
		return ModeHelp
	case !f.Running:
		return ModeEditing
	default:
		return ModeRunning
	}
}

// Action is the effect a routed key press has on the controller.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleHelp
	ActionTogglePause
	ActionReset
	ActionResume
	ActionDismissHelp
	ActionCursorLeft
	ActionCursorRight
	ActionCursorUp   // row + 1
	ActionCursorDown // row - 1
	ActionToggleCell
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionQuit:        "quit",
	ActionToggleHelp:  "toggle-help",
	ActionTogglePause: "toggle-pause",
	ActionReset:       "reset",
	ActionResume:      "resume",
	ActionDismissHelp: "dismiss-help",
	ActionCursorLeft:  "cursor-left",
	ActionCursorRight: "cursor-right",
	ActionCursorUp:    "cursor-up",
	ActionCursorDown:  "cursor-down",
	ActionToggleCell:  "toggle-cell",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Route maps a key press to an action for the given mode. Mode-specific
// bindings are tried first; anything they do not claim falls through to
// the bindings shared by every mode.
func Route(m Mode, ev Event) Action {
	if ev.Ctrl() && (ev.IsRune('c') || ev.IsRune('C')) {
		return ActionQuit
	}
	if a := routeMode(m, ev); a != ActionNone {
		return a
	}
	switch {
	case ev.IsRune('?'):
		return ActionToggleHelp
	case ev.IsRune(' '):
		return ActionTogglePause
	}
	return ActionNone
}

func routeMode(m Mode, ev Event) Action {
	back := ev.Key == KeyEscape || ev.IsRune('q')
	switch m {
	case ModeRunning:
		switch {
		case back:
			return ActionQuit
		case ev.Key == KeyEnter:
			return ActionReset
		}
	case ModeEditing:
		if back {
			return ActionResume
		}
		if ev.Key != KeyRune {
			return ActionNone
		}
		switch ev.Rune {
		case 'h':
			return ActionCursorLeft
		case 'j':
			return ActionCursorDown
		case 'k':
			return ActionCursorUp
		case 'l':
			return ActionCursorRight
		case 't':
			return ActionToggleCell
		}
	case ModeHelp:
		if back {
			return ActionDismissHelp
		}
	}
	return ActionNone
}
