// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ripple displaces a pixmap row by row along a horizontal sine
// wave and keeps the state of the animated effect.
package ripple

import (
	"math"

	"github.com/gogpu/pixwave"
)

// Blit copies every row of src into dst, shifting row y horizontally by
// -amplitudeX*sin(y*rate+phase) pixels from column x1. Row y lands on
// dst row y1+y. Rows are not interpolated.
//
// Blit inherits the unchecked contract of [pixwave.Pixmap.BlitScanline]:
// dst must leave at least [Margin] columns free on both sides of the
// placed image and src.Height() rows below y1.
func Blit(src, dst *pixwave.Pixmap, x1, y1, amplitudeX int, phase, rate float64) {
	for y := 0; y < src.Height(); y++ {
		x := int(float64(x1) - float64(amplitudeX)*math.Sin(float64(y)*rate+phase))
		src.BlitScanline(dst, y, x, y1+y)
	}
}

// Margin returns the horizontal room, in pixels, a ripple of the given
// amplitude needs on each side of the image.
func Margin(amplitudeX int) int {
	if amplitudeX < 0 {
		amplitudeX = -amplitudeX
	}
	return amplitudeX + 1
}

// Fits reports whether an image of srcW x srcH placed at (x1, y1) stays
// inside a dstW x dstH pixmap for every phase of a ripple of amplitudeX.
func Fits(srcW, srcH, dstW, dstH, x1, y1, amplitudeX int) bool {
	m := Margin(amplitudeX)
	return x1-m >= 0 && x1+srcW+m <= dstW && y1 >= 0 && y1+srcH <= dstH
}
