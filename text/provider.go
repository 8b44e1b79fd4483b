// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"fmt"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/pixwave"
)

// DPI is the resolution at which point sizes are converted to pixels.
// At 72 DPI one point is one pixel.
const DPI = 72

// FontProvider hands out font faces.
//
// Acquire returns a face at the given point size. The caller owns the face
// and must Close it once done.
type FontProvider interface {
	Acquire(size float64) (font.Face, error)
}

// OpenTypeProvider creates faces from a parsed OpenType font.
// The parsed font is shared; each face is independent.
type OpenTypeProvider struct {
	data []byte
	font *opentype.Font
}

// NewOpenTypeProvider parses TTF/OTF data.
func NewOpenTypeProvider(data []byte) (*OpenTypeProvider, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &OpenTypeProvider{data: data, font: f}, nil
}

// NewGoFontProvider returns a provider for the embedded Go Regular font.
// It panics if the embedded font fails to parse.
func NewGoFontProvider() *OpenTypeProvider {
	p, err := NewOpenTypeProvider(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return p
}

// Data returns the raw font data.
func (p *OpenTypeProvider) Data() []byte {
	return p.data
}

// Acquire implements FontProvider.
func (p *OpenTypeProvider) Acquire(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	face, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	pixwave.Logger().Debug("text: face acquired", slog.Float64("size", size))
	return face, nil
}
