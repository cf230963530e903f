package app

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"termlife/internal/core"
	"termlife/internal/sims/life"
)

// DefaultPollInterval bounds how long the loop waits for a key press
// before stepping again.
const DefaultPollInterval = 50 * time.Millisecond

// Frame is everything a renderer needs to paint one iteration.
type Frame struct {
	Grid      *core.Grid
	Iteration int
	Mode      Mode
	Cursor    *Cursor // nil unless editing
	Help      bool
	Params    core.ParameterSnapshot
}

// Renderer paints frames. It owns terminal setup and teardown.
type Renderer interface {
	Render(f Frame) error
}

// InputSource yields at most one key press per call. A timeout with no
// key is reported as ok == false and a nil error.
type InputSource interface {
	Poll(timeout time.Duration) (ev Event, ok bool, err error)
}

// Controller owns the simulation, the interaction flags and the cursor. It
// is the single writer of all of them and is not safe for concurrent use.
type Controller struct {
	game    *life.Game
	rng     *core.RNG
	density float64
	flags   Flags
	cursor  Cursor
	quit    bool

	logger    *log.Logger
	observers []func(Action)
}

// NewController seeds grid with rng and starts in running mode. Cells of
// grid that are already defined survive seeding.
func NewController(grid *core.Grid, rng *core.RNG, density float64, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		rng:     rng,
		density: density,
		flags:   Flags{Running: true},
		cursor:  NewCursor(),
		logger:  logger,
	}
	c.game = life.Seed(grid, rng, density)
	c.logger.Info("seeded", "w", grid.Width(), "h", grid.Height(), "seed", rng.Seed(), "density", density)
	return c
}

// Observe registers fn to be called after every applied action.
func (c *Controller) Observe(fn func(Action)) {
	c.observers = append(c.observers, fn)
}

func (c *Controller) Mode() Mode { return c.flags.Mode() }
func (c *Controller) Flags() Flags { return c.flags }
func (c *Controller) Cursor() Cursor { return c.cursor }
func (c *Controller) Grid() *core.Grid { return c.game.Grid() }
func (c *Controller) Iteration() int { return c.game.Iteration() }
func (c *Controller) Game() *life.Game { return c.game }
func (c *Controller) Done() bool { return c.quit }
func (c *Controller) Logger() *log.Logger { return c.logger }

// Tick advances the simulation by one generation if it is running.
func (c *Controller) Tick() {
	if !c.flags.Running {
		return
	}
	c.game.Step()
}

// Frame snapshots the state for a renderer.
func (c *Controller) Frame() Frame {
	mode := c.Mode()
	f := Frame{
		Grid:      c.game.Grid(),
		Iteration: c.game.Iteration(),
		Mode:      mode,
		Help:      mode == ModeHelp,
		Params:    c.game.Parameters(),
	}
	if mode == ModeEditing {
		cur := c.cursor
		f.Cursor = &cur
	}
	return f
}

// HandleEvent routes ev through the current mode and applies the result.
func (c *Controller) HandleEvent(ev Event) Action {
	mode := c.Mode()
	a := Route(mode, ev)
	c.logger.Debug("key", "mode", mode, "event", ev, "action", a)
	c.Apply(a)
	return a
}

// Apply performs a routed action.
func (c *Controller) Apply(a Action) {
	g := c.game.Grid()
	switch a {
	case ActionNone:
		return
	case ActionQuit:
		c.quit = true
		c.logger.Info("quit", "iteration", c.game.Iteration())
	case ActionToggleHelp:
		c.flags.ShowHelp = !c.flags.ShowHelp
	case ActionTogglePause:
		c.flags.Running = !c.flags.Running
	case ActionResume:
		c.flags.Running = true
	case ActionDismissHelp:
		c.flags.ShowHelp = false
	case ActionReset:
		c.Reset()
	case ActionCursorLeft:
		c.cursor.Move(-1, 0, g.Width(), g.Height())
	case ActionCursorRight:
		c.cursor.Move(1, 0, g.Width(), g.Height())
	case ActionCursorUp:
		c.cursor.Move(0, 1, g.Width(), g.Height())
	case ActionCursorDown:
		c.cursor.Move(0, -1, g.Width(), g.Height())
	case ActionToggleCell:
		c.ToggleCell()
	}
	for _, fn := range c.observers {
		fn(a)
	}
}

// Reset discards every cell, including edited ones, and re-seeds a blank
// grid of the same size. The cursor is left where it is.
func (c *Controller) Reset() {
	g := c.game.Grid()
	c.game = life.Seed(core.NewGrid(g.Height(), g.Width()), c.rng, c.density)
	c.logger.Info("reset", "w", g.Width(), "h", g.Height())
}

// ToggleCell flips the cell under the cursor in the live grid. It reports
// false when the cursor is off the grid.
func (c *Controller) ToggleCell() bool {
	g := c.game.Grid()
	if !c.cursor.Within(g.Width(), g.Height()) {
		c.logger.Warn("toggle outside grid", "x", c.cursor.X, "y", c.cursor.Y)
		return false
	}
	v := g.Toggle(c.cursor.X, c.cursor.Y)
	c.logger.Debug("toggle", "x", c.cursor.X, "y", c.cursor.Y, "cell", v)
	return true
}

// PlaceCursor moves the cursor straight to (x, y) while editing. It reports
// false outside edit mode or when (x, y) is off the grid.
func (c *Controller) PlaceCursor(x, y int) bool {
	g := c.game.Grid()
	if c.Mode() != ModeEditing || !g.InBounds(x, y) {
		return false
	}
	c.cursor = Cursor{X: x, Y: y}
	return true
}

// Run drives the step/render/poll loop until quit is requested or ctx is
// done. Renderer and input failures end the loop and are returned.
func (c *Controller) Run(ctx context.Context, r Renderer, in InputSource, poll time.Duration) error {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	for !c.quit {
		if ctx.Err() != nil {
			c.logger.Info("context done", "err", ctx.Err())
			return nil
		}
		c.Tick()
		if err := r.Render(c.Frame()); err != nil {
			return errors.Wrapf(err, "render iteration %d", c.game.Iteration())
		}
		ev, ok, err := in.Poll(poll)
		if err != nil {
			return errors.Wrap(err, "poll input")
		}
		if ok {
			c.HandleEvent(ev)
		}
	}
	return nil
}
