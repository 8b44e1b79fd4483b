// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

// BlitScanline copies row of p (its full width) into target starting at
// column x of row y.
//
// Blending follows p's alpha mode, not target's. BlitScanline does not
// check bounds: the caller guarantees 0 <= row < p.Height() and that
// x .. x+p.Width()-1 on row y lies inside target. Violations panic or
// write into neighboring rows of target.
func (p *Pixmap) BlitScanline(target *Pixmap, row, x, y int) {
	start := p.index(0, row)
	src := p.pix[start : start+p.width]

	at := target.index(x, y)
	dst := target.pix[at : at+p.width]

	if !p.withAlpha {
		copy(dst, src)
		return
	}
	for i, c := range src {
		BlendOnto(c, &dst[i])
	}
}
