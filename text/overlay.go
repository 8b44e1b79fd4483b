// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Overlay draws labels. Each call acquires its own face from the provider
// and closes it before returning.
type Overlay struct {
	provider FontProvider
	measurer *Measurer
}

// NewOverlay creates an overlay backed by provider.
func NewOverlay(provider FontProvider) *Overlay {
	return &Overlay{provider: provider}
}

// WithMeasurer makes DrawRight align labels by their shaped advance
// instead of the face's glyph advances.
func (o *Overlay) WithMeasurer(m *Measurer) *Overlay {
	o.measurer = m
	return o
}

// Draw renders label with its top-left corner at (x, y), at the given
// point size and color, composited over dst. Empty labels draw nothing.
func (o *Overlay) Draw(dst draw.Image, label string, x, y int, size float64, c color.Color) error {
	if dst == nil {
		return ErrNilImage
	}
	if label == "" {
		return nil
	}

	face, err := o.provider.Acquire(size)
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(label)
	return nil
}

// Bounds returns the rectangle covered by label drawn at (x, y) and the
// given size, as laid out by the provider's face.
func (o *Overlay) Bounds(label string, x, y int, size float64) (image.Rectangle, error) {
	face, err := o.provider.Acquire(size)
	if err != nil {
		return image.Rectangle{}, err
	}
	defer func() {
		_ = face.Close()
	}()

	m := face.Metrics()
	width := font.MeasureString(face, label).Ceil()
	return image.Rect(x, y, x+width, y+m.Ascent.Ceil()+m.Descent.Ceil()), nil
}

// DrawRight renders label so that its advance ends at column right.
func (o *Overlay) DrawRight(dst draw.Image, label string, right, y int, size float64, c color.Color) error {
	width, err := o.advance(label, size)
	if err != nil {
		return err
	}
	return o.Draw(dst, label, right-width, y, size, c)
}

// advance returns the width of label in whole pixels, rounded up.
func (o *Overlay) advance(label string, size float64) (int, error) {
	if o.measurer != nil {
		w, err := o.measurer.Advance(label, size)
		if err != nil {
			return 0, err
		}
		return int(math.Ceil(w)), nil
	}
	r, err := o.Bounds(label, 0, 0, size)
	if err != nil {
		return 0, err
	}
	return r.Dx(), nil
}
