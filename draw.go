// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

import "log/slog"

// DrawRectUnchecked overwrites the inclusive rectangle r with c.
//
// No clipping and no blending are performed. The caller must keep r inside
// the pixmap: columns past the right edge spill into the next row and rows
// outside the buffer panic.
func (p *Pixmap) DrawRectUnchecked(r Rectbox, c Pixel) {
	for y := r.Y1; y <= r.Y2; y++ {
		row := p.index(0, y)
		for x := r.X1; x <= r.X2; x++ {
			p.pix[row+x] = c
		}
	}
}

// DrawRectClipped fills r clipped to the pixmap bounds. Rectangles that
// are empty after clipping are skipped. With alpha mode on, c is blended
// onto the existing pixels.
func (p *Pixmap) DrawRectClipped(r Rectbox, c Pixel) {
	cr := r.ClippedTo(p.width, p.height)
	if cr.Empty() {
		if debugEnabled() {
			Logger().Debug("pixwave: empty rect skipped",
				slog.Int("x1", r.X1), slog.Int("y1", r.Y1),
				slog.Int("x2", r.X2), slog.Int("y2", r.Y2))
		}
		return
	}

	for y := cr.Y1; y <= cr.Y2; y++ {
		p.fillSpan(p.index(cr.X1, y), cr.X2-cr.X1+1, c)
	}
}

// fillSpan writes n pixels starting at buffer index i, blending when the
// alpha mode is on.
func (p *Pixmap) fillSpan(i, n int, c Pixel) {
	span := p.pix[i : i+n]
	if !p.withAlpha {
		for j := range span {
			span[j] = c
		}
		return
	}
	for j := range span {
		BlendOnto(c, &span[j])
	}
}
