// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package termcanvas presents pixwave pixmaps in a terminal.
//
// Canvas owns a logical ARGB surface of fixed size (the "texture") that
// pixmaps are exported into. Present scales the surface to the terminal
// grid and draws each cell as an upper half block whose foreground is the
// upper pixel and background the lower one. The data flow is:
//
//	pixwave.Pixmap -> Update (surface) -> Present (scale) -> tcell.Screen
//
// # Usage
//
//	screen, _ := tcell.NewScreen()
//	canvas, err := termcanvas.New(screen, 864, 486)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	render.ExportCentered(canvas, canvas.Width(), canvas.Height())
//	canvas.Present()
//
// Surface alpha is ignored on presentation: every pixel is shown opaque.
//
// Canvas also turns terminal key presses into [Event] values; see
// [Canvas.PollEvents].
package termcanvas
