// Package terminal is the tcell front end: screen lifecycle, rendering,
// key input and the optional click sound.
package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Open creates and initialises the terminal screen.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()
	return s, nil
}

// Close restores the terminal. It is safe to call with a nil screen.
func Close(s tcell.Screen) {
	if s == nil {
		return
	}
	s.Fini()
}

// HandleCrash restores the terminal, prints r with a stack trace and exits.
// It does nothing when r is nil.
func HandleCrash(s tcell.Screen, r any) {
	if r == nil {
		return
	}
	Close(s)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
	os.Exit(1)
}
