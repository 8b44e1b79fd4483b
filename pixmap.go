// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

import (
	"image"
	"image/color"
	"log/slog"
)

// Pixmap is a rectangular buffer of ARGB pixels stored row-major.
//
// Width, height and the alpha mode are fixed at construction. When the
// alpha mode is on, compositing operations (DrawRectClipped,
// VerticalGradient, BlitScanline) blend with BlendOnto; raw operations
// (Fill, DrawRectUnchecked, WritePixel) always overwrite.
//
// Pixmap is NOT safe for concurrent use.
type Pixmap struct {
	width     int
	height    int
	pix       []Pixel
	withAlpha bool
}

// NewPixmap creates a zeroed (transparent black) pixmap with alpha
// compositing enabled.
func NewPixmap(width, height int) *Pixmap {
	return newPixmap(width, height, true)
}

// NewPixmapFilled creates a pixmap filled with background.
// withAlpha selects blending for compositing operations.
func NewPixmapFilled(width, height int, background Pixel, withAlpha bool) *Pixmap {
	p := newPixmap(width, height, withAlpha)
	p.Fill(background)
	return p
}

// newPixmap allocates the buffer. Non-positive dimensions yield an empty
// 0x0 pixmap on which every operation is a no-op.
func newPixmap(width, height int, withAlpha bool) *Pixmap {
	if width <= 0 || height <= 0 {
		Logger().Debug("pixwave: empty pixmap", slog.Int("width", width), slog.Int("height", height))
		width, height = 0, 0
	}
	return &Pixmap{
		width:     width,
		height:    height,
		pix:       make([]Pixel, width*height),
		withAlpha: withAlpha,
	}
}

// Clone returns a deep copy of p.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{
		width:     p.width,
		height:    p.height,
		pix:       make([]Pixel, len(p.pix)),
		withAlpha: p.withAlpha,
	}
	copy(c.pix, p.pix)
	return c
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// WithAlpha reports whether compositing operations blend.
func (p *Pixmap) WithAlpha() bool {
	return p.withAlpha
}

// Pixels returns the backing buffer. Pixel (x, y) lives at index
// y*Width()+x. Writes through the slice are visible to the pixmap.
func (p *Pixmap) Pixels() []Pixel {
	return p.pix
}

// index returns the buffer index of (x, y) without bounds checking.
func (p *Pixmap) index(x, y int) int {
	return y*p.width + x
}

// inBounds reports whether (x, y) addresses a pixel of p.
func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// Fill sets every pixel to c without blending.
func (p *Pixmap) Fill(c Pixel) {
	for i := range p.pix {
		p.pix[i] = c
	}
}

// ReadPixel returns the pixel at (x, y), or Transparent (0) when the
// coordinates fall outside the pixmap.
func (p *Pixmap) ReadPixel(x, y int) Pixel {
	if !p.inBounds(x, y) {
		if debugEnabled() {
			Logger().Debug("pixwave: read out of bounds", slog.Int("x", x), slog.Int("y", y))
		}
		return Transparent
	}
	return p.pix[p.index(x, y)]
}

// WritePixel stores c at (x, y) without blending. Out-of-bounds writes
// are ignored.
func (p *Pixmap) WritePixel(x, y int, c Pixel) {
	if !p.inBounds(x, y) {
		if debugEnabled() {
			Logger().Debug("pixwave: write out of bounds", slog.Int("x", x), slog.Int("y", y))
		}
		return
	}
	p.pix[p.index(x, y)] = c
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return PixelModel
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.ReadPixel(x, y)
}

// Set implements the draw.Image interface. It overwrites like WritePixel.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.WritePixel(x, y, PixelFromColor(c))
}
