//go:build ebiten

package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"termlife/internal/app"
	"termlife/internal/core"
)

const (
	defaultWidth  = 120
	defaultHeight = 80
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "life-gui"})

	cfg, err := app.ParseArgs("life-gui", os.Args[1:])
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	rng := core.NewRNG(cfg.ResolveSeed())
	ctrl := app.NewController(cfg.NewGrid(w, h), rng, cfg.Density, logger)
	game := app.New(ctrl, cfg.Scale, cfg.TPS)

	ebiten.SetWindowTitle("termlife")
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run", "err", err)
	}
}
