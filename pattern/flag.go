// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import "github.com/gogpu/pixwave"

// Flag holds the colors of the three bands, left to right.
type Flag [3]pixwave.Pixel

// Tricolor is the default blue, white and red flag.
var Tricolor = Flag{0xFF0050A4, 0xFFFFFFFF, 0xFFEF4135}

// PaintFlag draws the Tricolor flag over the whole pixmap.
func PaintFlag(pm *pixwave.Pixmap) {
	PaintFlagColors(pm, Tricolor)
}

// PaintFlagColors splits pm into three vertical bands of Width()/3 columns
// and fills them with the given colors through DrawRectClipped.
//
// Each band's rectangle reaches into the first column of the next band,
// which the next band then paints over. The last band extends one column
// further so the rounding remainder on the right is covered.
func PaintFlagColors(pm *pixwave.Pixmap, colors Flag) {
	third := pm.Width() / 3
	bottom := pm.Height() - 1

	for i, c := range colors {
		r := pixwave.NewRectbox(third*i, 0, third*(i+1), bottom)
		if i == len(colors)-1 {
			r.X2++
		}
		pm.DrawRectClipped(r, c)
	}
}
