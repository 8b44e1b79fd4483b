// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Measurer computes label advances with HarfBuzz shaping, so kerning is
// taken into account.
//
// Measurer is NOT safe for concurrent use.
type Measurer struct {
	face   *font.Face
	shaper shaping.HarfbuzzShaper
}

// NewMeasurer parses TTF/OTF data for shaping.
func NewMeasurer(data []byte) (*Measurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	return &Measurer{face: face}, nil
}

// Advance returns the horizontal advance of label at the given point size,
// in pixels.
func (m *Measurer) Advance(label string, size float64) (float64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if label == "" {
		return 0, nil
	}

	runes := []rune(label)
	out := m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      fixed.Int26_6(size * 64 * DPI / 72),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	})
	return float64(out.Advance) / 64, nil
}
