// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

import "log/slog"

// VerticalGradient shades r, clipped to the pixmap, from top to bottom.
//
// Row y gets f1 = (y-Y1)/(Y2-Y1) and f2 = 1-f1. Every output channel uses
// the red channel of top as its upper term:
//
//	r = top.r*f2 + bottom.r*f1
//	g = top.r*f2 + bottom.g*f1
//	b = top.r*f2 + bottom.b*f1
//	a = top.r*f2 + bottom.a*f1
//
// Channels are truncated. Each row is filled with its color, blended when
// the alpha mode is on. A clipped rectangle of a single row is skipped,
// as is one whose columns are inverted.
func (p *Pixmap) VerticalGradient(r Rectbox, top, bottom Pixel) {
	cr := r.ClippedTo(p.width, p.height)
	if cr.Y1 >= cr.Y2 || cr.X1 > cr.X2 {
		if debugEnabled() {
			Logger().Debug("pixwave: degenerate gradient skipped",
				slog.Int("x1", cr.X1), slog.Int("y1", cr.Y1),
				slog.Int("x2", cr.X2), slog.Int("y2", cr.Y2))
		}
		return
	}

	upR, _, _, _ := Decompose(top)
	downR, downG, downB, downA := Decompose(bottom)

	span := cr.X2 - cr.X1 + 1
	height := float32(cr.Y2 - cr.Y1)

	for y := cr.Y1; y <= cr.Y2; y++ {
		f1 := float32(y-cr.Y1) / height
		f2 := 1.0 - f1

		c := Compose(
			lerpChannel(upR, downR, f1, f2),
			lerpChannel(upR, downG, f1, f2),
			lerpChannel(upR, downB, f1, f2),
			lerpChannel(upR, downA, f1, f2),
		)
		p.fillSpan(p.index(cr.X1, y), span, c)
	}
}

// lerpChannel returns up*f2 + f1*down truncated to a channel value.
func lerpChannel(up, down uint8, f1, f2 float32) uint8 {
	return uint8(float32(up)*f2 + f1*float32(down))
}
