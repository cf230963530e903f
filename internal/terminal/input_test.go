package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"termlife/internal/app"
)

func TestTranslateKeys(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want app.Event
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), app.RuneEvent('q')},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), app.RuneEvent(' ')},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), app.Event{Key: app.KeyEnter}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), app.Event{Key: app.KeyEscape}},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), app.CtrlEvent('c')},
	}
	for _, tc := range cases {
		got, ok := Translate(tc.ev)
		if !ok || got != tc.want {
			t.Fatalf("Translate(%v) = %v, %v; want %v", tc.ev.Name(), got, ok, tc.want)
		}
	}
}

func TestTranslateIgnoresNonKeys(t *testing.T) {
	if _, ok := Translate(tcell.NewEventResize(10, 10)); ok {
		t.Fatal("resize translated")
	}
	if _, ok := Translate(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)); ok {
		t.Fatal("F1 translated")
	}
}

func TestCtrlCQuitsThroughRouting(t *testing.T) {
	ev, ok := Translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if !ok {
		t.Fatal("ctrl-c not translated")
	}
	for _, m := range []app.Mode{app.ModeRunning, app.ModeEditing, app.ModeHelp} {
		if got := app.Route(m, ev); got != app.ActionQuit {
			t.Fatalf("ctrl-c in %v = %v", m, got)
		}
	}
}

func TestInputPollsInjectedKeys(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	in := NewInput(s)

	s.InjectKey(tcell.KeyRune, 't', tcell.ModNone)
	ev, ok, err := in.Poll(time.Second)
	if err != nil || !ok {
		t.Fatalf("poll = %v, %v", ok, err)
	}
	if ev != app.RuneEvent('t') {
		t.Fatalf("event = %v", ev)
	}

	_, ok, err = in.Poll(10 * time.Millisecond)
	if ok || err != nil {
		t.Fatalf("idle poll = %v, %v", ok, err)
	}
}
