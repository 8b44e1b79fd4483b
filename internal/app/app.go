// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package app runs the ripple demo: it seeds the animated image, then
// polls input, renders and presents one frame per fixed delay.
package app

import (
	"context"
	"image/draw"
	"log/slog"
	"time"

	"github.com/gogpu/pixwave"
	"github.com/gogpu/pixwave/integration/termcanvas"
	"github.com/gogpu/pixwave/pattern"
	"github.com/gogpu/pixwave/ripple"
)

// Background gradient colors.
const (
	gradientTop    = pixwave.Black
	gradientBottom = pixwave.White
)

// Display is the presentation surface and input source of the demo.
type Display interface {
	pixwave.PresentationSink

	// Width and Height return the surface size in pixels.
	Width() int
	Height() int

	// Surface returns the image labels are drawn on.
	Surface() draw.Image

	// Present shows the surface.
	Present() error

	// PollEvents returns pending input without blocking.
	PollEvents() []termcanvas.Event
}

// App is the demo. App is NOT safe for concurrent use.
type App struct {
	cfg     Config
	display Display
	labels  *Labels
	logger  *slog.Logger

	source *pixwave.Pixmap
	render *pixwave.Pixmap
	anim   *ripple.Animation

	background     pixwave.Rectbox
	imageX, imageY int
}

// New checks cfg and prepares the scene. labels may be nil.
func New(cfg Config, display Display, labels *Labels) (*App, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	a := &App{
		cfg:        cfg,
		display:    display,
		labels:     labels,
		logger:     pixwave.Logger(),
		source:     NewSource(cfg),
		render:     pixwave.NewPixmapFilled(cfg.Width, cfg.Height, pixwave.Black, false),
		anim:       ripple.NewAnimation(cfg.Params()),
		background: pixwave.NewRectbox(0, 0, cfg.Width-1, cfg.Height-1),
	}
	a.imageX, a.imageY = cfg.imageOrigin()

	a.logger.Info("app: scene ready",
		slog.String("pattern", cfg.PatternKind.String()),
		slog.Int("image_x", a.imageX), slog.Int("image_y", a.imageY),
		slog.Float64("phase_factor", cfg.Params().PhaseFactor),
		slog.Float64("ripple_rate", cfg.Params().RippleRate))
	return a, nil
}

// NewSource paints the animated image: the selected pattern on white,
// then the optional blur and grayscale passes.
func NewSource(cfg Config) *pixwave.Pixmap {
	pm := pixwave.NewPixmapFilled(cfg.ImageWidth, cfg.ImageHeight, pixwave.White, false)
	pattern.Paint(cfg.PatternKind, pm, cfg.Cell)
	if cfg.Blur > 0 {
		pm.BoxBlur(cfg.Blur)
	}
	if cfg.Grayscale {
		pm.Grayscale()
	}
	return pm
}

// Animation returns the ripple state.
func (a *App) Animation() *ripple.Animation {
	return a.anim
}

// Render returns the render target.
func (a *App) Render() *pixwave.Pixmap {
	return a.render
}

// HandleEvents applies input and reports whether the demo should stop.
func (a *App) HandleEvents(events []termcanvas.Event) (quit bool) {
	for _, ev := range events {
		switch ev {
		case termcanvas.EventQuit:
			return true
		case termcanvas.EventUp:
			a.anim.SpeedUp()
		case termcanvas.EventDown:
			a.anim.SlowDown()
		case termcanvas.EventLeft:
			a.anim.DecreaseRate()
		case termcanvas.EventRight:
			a.anim.IncreaseRate()
		}
	}
	return false
}

// Frame renders one frame and presents it.
func (a *App) Frame() error {
	a.render.VerticalGradient(a.background, gradientTop, gradientBottom)
	a.anim.Render(a.source, a.render, a.imageX, a.imageY)
	a.render.ExportCentered(a.display, a.display.Width(), a.display.Height())

	if a.labels != nil {
		a.labels.Draw(a.display.Surface(), a.anim)
	}
	return a.display.Present()
}

// Run loops until quit is requested, ctx is done or the configured number
// of frames has been shown. Cancellation is observed between frames.
func (a *App) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			a.logger.Info("app: stopped", slog.Int("frames", a.anim.Tick()))
			return nil
		}
		if a.HandleEvents(a.display.PollEvents()) {
			a.logger.Info("app: quit", slog.Int("frames", a.anim.Tick()))
			return nil
		}
		if err := a.Frame(); err != nil {
			return err
		}
		if a.cfg.Frames > 0 && a.anim.Tick() >= a.cfg.Frames {
			a.logger.Info("app: frame limit reached", slog.Int("frames", a.anim.Tick()))
			return nil
		}

		select {
		case <-ctx.Done():
		case <-time.After(a.cfg.Delay):
		}
	}
}
