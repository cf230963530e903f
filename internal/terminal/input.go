package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"termlife/internal/app"
)

// ErrInputClosed is returned by Poll once the screen has been finalised.
var ErrInputClosed = errors.New("terminal input closed")

// Input pumps tcell events on a goroutine and hands key presses to the
// controller one at a time.
type Input struct {
	events chan app.Event
}

// NewInput starts reading events from s. The pump stops when s is
// finalised.
func NewInput(s tcell.Screen) *Input {
	in := &Input{events: make(chan app.Event, 100)}
	go in.pump(s)
	return in
}

func (in *Input) pump(s tcell.Screen) {
	defer close(in.events)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		if e, ok := Translate(ev); ok {
			in.events <- e
		}
	}
}

// Poll implements app.InputSource.
func (in *Input) Poll(timeout time.Duration) (app.Event, bool, error) {
	select {
	case ev, ok := <-in.events:
		if !ok {
			return app.Event{}, false, ErrInputClosed
		}
		return ev, true, nil
	case <-time.After(timeout):
		return app.Event{}, false, nil
	}
}

// Translate converts a tcell key event into an app.Event. Mouse, resize
// and unknown keys report false.
func Translate(ev tcell.Event) (app.Event, bool) {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return app.Event{}, false
	}
	mods := translateMods(k.Modifiers())
	switch k.Key() {
	case tcell.KeyCtrlC:
		return app.CtrlEvent('c'), true
	case tcell.KeyEscape:
		return app.Event{Key: app.KeyEscape, Modifiers: mods}, true
	case tcell.KeyEnter:
		return app.Event{Key: app.KeyEnter, Modifiers: mods}, true
	case tcell.KeyRune:
		return app.Event{Key: app.KeyRune, Rune: k.Rune(), Modifiers: mods}, true
	}
	return app.Event{}, false
}

func translateMods(m tcell.ModMask) app.Modifier {
	var out app.Modifier
	if m&tcell.ModShift != 0 {
		out |= app.ModShift
	}
	if m&tcell.ModAlt != 0 {
		out |= app.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= app.ModCtrl
	}
	return out
}
