//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"termlife/internal/core"
	"termlife/internal/render"
	"termlife/internal/ui"
)

// hudWidth is the status panel width in pixels.
const hudWidth = 200

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	offColor color.Color
	scale    int
	chars    []rune
}

// New constructs a Game that steps ctrl at tps generations per second.
func New(ctrl *Controller, scale, tps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := ctrl.Game().Size()
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(scale),
		hud:      ui.NewHUD(hudWidth),
		timer:    core.NewFixedStep(tps),
		offColor: color.Black,
		scale:    scale,
	}
}

// Update dispatches this frame's key presses and advances the simulation.
func (g *Game) Update() error {
	for _, ev := range g.events() {
		g.ctrl.HandleEvent(ev)
		if g.ctrl.Done() {
			return ebiten.Termination
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		grid := g.ctrl.Grid()
		mx, my := ebiten.CursorPosition()
		if x, y, ok := render.CellAt(mx, my, grid.Width(), grid.Height(), g.scale); ok {
			g.ctrl.PlaceCursor(x, y)
		}
	}
	if g.timer.ShouldStep() {
		g.ctrl.Tick()
	}
	f := g.ctrl.Frame()
	g.hud.Update(f.Params, fmt.Sprintf("%s  iteration %d", f.Mode, f.Iteration))
	return nil
}

// events translates just-pressed keys into controller events.
func (g *Game) events() []Event {
	var out []Event
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		out = append(out, Event{Key: KeyEscape})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		out = append(out, Event{Key: KeyEnter})
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		out = append(out, CtrlEvent('c'))
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		out = append(out, RuneEvent(r))
	}
	return out
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.ctrl.Frame()
	g.painter.Blit(screen, f.Grid, f.Iteration, g.offColor, g.scale)
	if f.Cursor != nil {
		alive := f.Grid.InBounds(f.Cursor.X, f.Cursor.Y) && f.Grid.Get(f.Cursor.X, f.Cursor.Y) == core.CellAlive
		g.overlay.DrawCursor(screen, f.Cursor.X, f.Cursor.Y, f.Grid.Height(), alive)
	}
	g.hud.Draw(screen, f.Grid.Width()*g.scale, f.Grid.Height()*g.scale)
	if f.Help {
		g.overlay.DrawHelp(screen, "Help", HelpLines())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.ctrl.Game().Size()
	return size.W*g.scale + g.hud.Width(), size.H * g.scale
}
