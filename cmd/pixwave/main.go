// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command pixwave shows an image rippling over a gradient in the terminal.
//
// Usage:
//
//	pixwave [speed [rate]] [flags]
//
// UP and DOWN change the speed, LEFT and RIGHT the ripple rate. Esc or q
// quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/gogpu/pixwave"
	"github.com/gogpu/pixwave/integration/termcanvas"
	"github.com/gogpu/pixwave/internal/app"
	"github.com/gogpu/pixwave/text"
)

func main() {
	var cfg app.Config
	parser := kong.Must(&cfg,
		kong.Name("pixwave"),
		kong.Description("Sine ripple compositor running in the terminal."),
		kong.UsageOnError(),
	)
	_, err := parser.Parse(app.PositionalArgs(os.Args[1:]))
	parser.FatalIfErrorf(err)

	if err := run(cfg); err != nil {
		slog.Error("pixwave failed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "pixwave:", err)
		os.Exit(1)
	}
}

// ErrNotTerminal is returned when stdout cannot host the canvas.
var ErrNotTerminal = errors.New("pixwave: stdout is not a terminal")

func run(cfg app.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	labels, err := newLabels(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	canvas, err := termcanvas.New(screen, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer func() { _ = canvas.Close() }()

	demo, err := app.New(cfg, canvas, labels)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return demo.Run(ctx)
}

// setupLogger routes library and application logs to cfg.LogFile. The
// terminal belongs to the canvas, so without a file logs are dropped.
func setupLogger(cfg app.Config) (func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)
	pixwave.SetLogger(logger)
	return closeFn, nil
}

func newLabels(cfg app.Config) (*app.Labels, error) {
	if !cfg.Labels {
		return nil, nil
	}
	provider := text.NewGoFontProvider()
	measurer, err := text.NewMeasurer(provider.Data())
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	overlay := text.NewOverlay(provider).WithMeasurer(measurer)
	return app.NewLabels(overlay, cfg.FontSize, language.English), nil
}
