// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import (
	"log/slog"

	"github.com/gogpu/pixwave"
)

// Checker holds the two colors of a checkerboard. Even is used where the
// cell column and row have the same parity.
type Checker struct {
	Even pixwave.Pixel
	Odd  pixwave.Pixel
}

// BlackWhite is the default white-on-black checkerboard.
var BlackWhite = Checker{Even: pixwave.White, Odd: pixwave.Black}

// DefaultCellSize is the checkerboard cell side of the demo.
const DefaultCellSize = 40

// PaintCheckerboard tiles pm with BlackWhite cells of cellSize pixels.
func PaintCheckerboard(pm *pixwave.Pixmap, cellSize int) {
	PaintCheckerboardColors(pm, cellSize, BlackWhite)
}

// PaintCheckerboardColors tiles pm with (Width()/cellSize) x
// (Height()/cellSize) square cells. Pixels past the last whole cell keep
// their color. Non-positive cell sizes paint nothing.
func PaintCheckerboardColors(pm *pixwave.Pixmap, cellSize int, colors Checker) {
	if cellSize <= 0 {
		pixwave.Logger().Debug("pattern: invalid cell size", slog.Int("cell", cellSize))
		return
	}

	cols := pm.Width() / cellSize
	rows := pm.Height() / cellSize

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			c := colors.Odd
			if cx%2 == cy%2 {
				c = colors.Even
			}
			x1, y1 := cx*cellSize, cy*cellSize
			// Cells lie inside the pixmap; the unchecked path also
			// renders 1x1 cells that clipping would skip as degenerate.
			pm.DrawRectUnchecked(pixwave.NewRectbox(x1, y1, x1+cellSize-1, y1+cellSize-1), c)
		}
	}
}
