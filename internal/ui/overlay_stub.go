//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// DrawCursor is a no-op in headless builds.
func (o *Overlay) DrawCursor(any, int, int, int, bool) {}

// DrawHelp is a no-op in headless builds.
func (o *Overlay) DrawHelp(any, string, []string) {}
