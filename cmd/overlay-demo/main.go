// Command overlay-demo shows every widget kind in a terminal.
//
// Usage:
//
//	overlay-demo [dir]
//
// dir holds an optional overlay.yaml; it defaults to the working directory.
// Logs go to the file named by OVERLAY_LOG_FILE, if set. Press Ctrl-C or the
// Quit button to exit.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/overlay/pkg/config"
	"github.com/go-drift/overlay/pkg/errors"
	"github.com/go-drift/overlay/pkg/host/terminal"
	"github.com/go-drift/overlay/pkg/overlay"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "overlay-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	cfg, err := config.LoadOptional(dir)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if path := os.Getenv("OVERLAY_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := cfg.Logger(logOut)
	if err != nil {
		return err
	}
	errors.SetHandler(errors.NewSlogHandler(logger))
	logger.Info("starting", slog.String("app", cfg.ResolveAppName(dir)))

	opts, err := cfg.ContextOptions()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	opts.Window = terminal.NewWindow(screen)
	opts.Logger = logger
	ui := overlay.New(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	cell := terminal.DefaultCellSize()
	w, h := screen.Size()
	d, err := newDemo(ui, cell, float64(w)*cell.Width, float64(h)*cell.Height, logger, quit)
	if err != nil {
		return err
	}
	defer d.release()

	host := terminal.New(screen, ui, terminal.Options{
		CellSize: cell,
		OnFrame:  d.poll,
		Logger:   logger,
	})
	return host.Run(ctx)
}
