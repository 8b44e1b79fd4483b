// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"image/color"
	"image/draw"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixwave"
	"github.com/gogpu/pixwave/ripple"
	"github.com/gogpu/pixwave/text"
)

// Label layout, in surface pixels.
const (
	labelMargin = 25
	labelBottom = 90 // distance from the bottom edge to the top of the hint labels
)

var (
	valueColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	hintColor  = color.NRGBA{A: 255}
)

// Labels draws the speed and ripple rate readouts with their key hints.
type Labels struct {
	overlay *text.Overlay
	printer *message.Printer
	size    float64
}

// NewLabels creates labels of the given point size formatted for tag.
func NewLabels(overlay *text.Overlay, size float64, tag language.Tag) *Labels {
	return &Labels{
		overlay: overlay,
		printer: message.NewPrinter(tag),
		size:    size,
	}
}

// SpeedText returns the speed readout.
func (l *Labels) SpeedText(a *ripple.Animation) string {
	return l.printer.Sprintf("SPEED: %d", a.Speed())
}

// RateText returns the ripple rate readout.
func (l *Labels) RateText(a *ripple.Animation) string {
	return l.printer.Sprintf("RIPPLE RATE: %d", a.Rate())
}

// Draw renders the four labels in the corners of dst. Failures are
// logged and the remaining labels are still drawn.
func (l *Labels) Draw(dst draw.Image, a *ripple.Animation) {
	b := dst.Bounds()
	left := b.Min.X + labelMargin
	right := b.Max.X - labelMargin
	top := b.Min.Y + labelMargin
	bottom := b.Max.Y - labelBottom

	l.check(l.overlay.Draw(dst, l.SpeedText(a), left, top, l.size, valueColor))
	l.check(l.overlay.Draw(dst, "UP / DOWN", left, bottom, l.size, hintColor))
	l.check(l.overlay.DrawRight(dst, l.RateText(a), right, top, l.size, valueColor))
	l.check(l.overlay.DrawRight(dst, "LEFT / RIGHT", right, bottom, l.size, hintColor))
}

func (l *Labels) check(err error) {
	if err != nil {
		pixwave.Logger().Warn("app: label not drawn", slog.Any("error", err))
	}
}
