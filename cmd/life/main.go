package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"termlife/internal/app"
	"termlife/internal/core"
	"termlife/internal/terminal"
)

func main() {
	cfg, err := app.ParseArgs("life", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closeLog, err := setupLogging(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		logger.Error("exit", "err", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *app.Config, logger *log.Logger) error {
	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer func() {
		terminal.HandleCrash(screen, recover())
		terminal.Close(screen)
	}()

	renderer := terminal.NewRenderer(screen)
	w, h := renderer.Size()
	if cfg.Width > 0 {
		w = cfg.Width
	}
	if cfg.Height > 0 {
		h = cfg.Height
	}

	rng := core.NewRNG(cfg.ResolveSeed())
	ctrl := app.NewController(cfg.NewGrid(w, h), rng, cfg.Density, logger)

	if cfg.Sound {
		clicker := terminal.NewClicker(logger)
		if err := clicker.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			ctrl.Observe(clicker.Observe)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return ctrl.Run(ctx, renderer, terminal.NewInput(screen), cfg.PollInterval())
}

// setupLogging writes to path at the given level, or discards everything
// when path is empty since the terminal belongs to the renderer.
func setupLogging(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "log level %q", level)
	}
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", path)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
		Level:           lvl,
	})
	return logger, func() { f.Close() }, nil
}
