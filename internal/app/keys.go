package app

import "fmt"

// Key identifies a non-printable key, or KeyRune for printable input.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyEnter
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Event is a single key press delivered by an input source.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// RuneEvent builds a plain printable key press.
func RuneEvent(r rune) Event { return Event{Key: KeyRune, Rune: r} }

// CtrlEvent builds a Ctrl+r key press.
func CtrlEvent(r rune) Event { return Event{Key: KeyRune, Rune: r, Modifiers: ModCtrl} }

// IsRune reports whether the event is the printable rune r.
func (e Event) IsRune(r rune) bool { return e.Key == KeyRune && e.Rune == r }

// Ctrl reports whether the control modifier is held.
func (e Event) Ctrl() bool { return e.Modifiers&ModCtrl != 0 }

func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyEscape:
		name = "Esc"
	case KeyEnter:
		name = "Enter"
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	default:
		name = fmt.Sprintf("key(%d)", e.Key)
	}
	if e.Ctrl() {
		return "Ctrl+" + name
	}
	return name
}
