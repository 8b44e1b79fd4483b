// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

// Luma weights used by Grayscale.
const (
	lumaR = 0.3
	lumaG = 0.59
	lumaB = 0.11
)

// Grayscale replaces the color channels of every pixel with its luma
// (0.59G + 0.3R + 0.11B, truncated). Alpha is preserved.
func (p *Pixmap) Grayscale() {
	for i, c := range p.pix {
		r, g, b, a := Decompose(c)
		grey := uint8(lumaG*float64(g) + lumaR*float64(r) + lumaB*float64(b))
		p.pix[i] = Compose(grey, grey, grey, a)
	}
}

// BoxBlur replaces each pixel with the mean of the square window of
// int(radius) pixels around it, computed per channel.
//
// The window is clipped at the edges, so border pixels average fewer
// neighbors. The means are computed from a snapshot of the pixmap taken
// before the first write. Radius 0 (or any radius below 1) leaves the
// pixmap unchanged.
func (p *Pixmap) BoxBlur(radius float64) {
	rad := int(radius)
	if rad <= 0 {
		return
	}

	src := p.Clone()
	i := 0
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.pix[i] = src.windowMean(rad, x, y)
			i++
		}
	}
}

// windowMean averages the channels over the window of the given radius
// centered at (cx, cy), clipped to the pixmap.
func (p *Pixmap) windowMean(radius, cx, cy int) Pixel {
	x1 := clampInt(cx-radius, 0, p.width-1)
	y1 := clampInt(cy-radius, 0, p.height-1)
	x2 := clampInt(cx+radius, 0, p.width-1)
	y2 := clampInt(cy+radius, 0, p.height-1)

	area := (x2 - x1 + 1) * (y2 - y1 + 1)

	var sumR, sumG, sumB, sumA int
	for y := y1; y <= y2; y++ {
		row := p.pix[p.index(x1, y) : p.index(x2, y)+1]
		for _, c := range row {
			r, g, b, a := Decompose(c)
			sumR += int(r)
			sumG += int(g)
			sumB += int(b)
			sumA += int(a)
		}
	}

	return Compose(
		uint8(sumR/area),
		uint8(sumG/area),
		uint8(sumB/area),
		uint8(sumA/area),
	)
}
