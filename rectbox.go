// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

import "image"

// Rectbox is an axis-aligned integer rectangle with inclusive bounds:
// both (X1, Y1) and (X2, Y2) belong to the rectangle.
//
// Corners are stored as given; nothing reorders them.
type Rectbox struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRectbox returns the rectangle spanning the two corners.
func NewRectbox(x1, y1, x2, y2 int) Rectbox {
	return Rectbox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// UnsetRectbox returns the (-1, -1, -1, -1) sentinel.
func UnsetRectbox() Rectbox {
	return Rectbox{X1: -1, Y1: -1, X2: -1, Y2: -1}
}

// ClippedTo clamps X1 and X2 to [0, width-1] and Y1 and Y2 to
// [0, height-1].
func (r Rectbox) ClippedTo(width, height int) Rectbox {
	return Rectbox{
		X1: clampInt(r.X1, 0, width-1),
		Y1: clampInt(r.Y1, 0, height-1),
		X2: clampInt(r.X2, 0, width-1),
		Y2: clampInt(r.Y2, 0, height-1),
	}
}

// Empty reports whether r is too small to draw after clipping.
// Single-column and single-row rectangles count as empty.
func (r Rectbox) Empty() bool {
	return r.X1 >= r.X2 || r.Y1 >= r.Y2
}

// Rectangle converts r to a half-open image.Rectangle.
func (r Rectbox) Rectangle() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2+1, r.Y2+1)
}

// clampInt restricts v to [lo, hi]. When hi < lo the upper bound wins.
func clampInt(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
