// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package text draws short labels onto any draw.Image.
//
// The pipeline separates a shared font resource from per-call faces:
//
//   - FontProvider: hands out a sized font.Face per call; the caller
//     releases it when done
//   - Overlay: draws a label with a fresh face and releases it
//   - Measurer: shapes a label with go-text/typesetting (HarfBuzz) to
//     obtain its advance, used to right-align labels
//
// # Example usage
//
//	overlay := text.NewOverlay(text.NewGoFontProvider())
//	err := overlay.Draw(img, "SPEED: 50", 25, 25, 32, color.White)
//
// The default provider uses the Go Regular font embedded in
// golang.org/x/image/font/gofont, so no font files are read from disk.
package text
