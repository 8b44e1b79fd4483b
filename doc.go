// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixwave provides an in-memory ARGB pixmap with alpha compositing,
// rectangle fills, gradient shading, a box-blur filter and scanline
// blitting.
//
// # Quick Start
//
//	pm := pixwave.NewPixmapFilled(320, 240, pixwave.White, false)
//	pm.DrawRectClipped(pixwave.NewRectbox(0, 0, 106, 239), 0xFF0050A4)
//	pm.BoxBlur(6)
//
//	// Push the pixels to a display surface.
//	pm.ExportCentered(sink, 864, 486)
//
// # Pixels
//
// A [Pixel] packs alpha, red, green and blue into bits 31-24, 23-16, 15-8
// and 7-0. [BlendOnto] interpolates every channel, alpha included, by the
// front pixel's alpha.
//
// # Checked and Unchecked Operations
//
// Public per-pixel access ([Pixmap.ReadPixel], [Pixmap.WritePixel]) and
// clipped fills ([Pixmap.DrawRectClipped], [Pixmap.VerticalGradient])
// tolerate any coordinates. [Pixmap.DrawRectUnchecked] and
// [Pixmap.BlitScanline] skip bounds checks for hot loops; their callers
// keep coordinates in range.
//
// # Sub-packages
//
//   - ripple: per-scanline sine displacement and animation state
//   - pattern: flag and checkerboard test patterns
//   - text: label rendering onto any draw.Image
//   - integration/termcanvas: terminal presentation surface (tcell)
//
// # Concurrency
//
// Pixmap is not safe for concurrent use. Only [SetLogger] and [Logger]
// may be called from any goroutine.
package pixwave
