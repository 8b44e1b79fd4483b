// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned for non-positive point sizes.
	ErrInvalidSize = errors.New("text: invalid size")

	// ErrNilImage is returned when drawing onto a nil image.
	ErrNilImage = errors.New("text: nil destination image")
)
