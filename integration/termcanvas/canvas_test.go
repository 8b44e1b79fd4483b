// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termcanvas

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixwave"
)

func newSimCanvas(t *testing.T, cols, rows, width, height int) (*Canvas, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	c, err := New(screen, width, height)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(func() { _ = c.Close() })
	return c, screen
}

// cellColors returns the foreground and background RGB of a cell.
func cellColors(t *testing.T, screen tcell.SimulationScreen, x, y int) (fg, bg [3]int32) {
	t.Helper()
	mainc, _, style, _ := screen.GetContent(x, y)
	if mainc != upperHalfBlock {
		t.Fatalf("cell (%d,%d) rune = %q, want %q", x, y, mainc, upperHalfBlock)
	}
	f, b, _ := style.Decompose()
	fr, fgc, fb := f.RGB()
	br, bgc, bb := b.RGB()
	return [3]int32{fr, fgc, fb}, [3]int32{br, bgc, bb}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, 10, 10); !errors.Is(err, ErrNilScreen) {
		t.Errorf("New(nil) = %v, want ErrNilScreen", err)
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	if _, err := New(screen, 0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("New(0x10) = %v, want ErrInvalidDimensions", err)
	}
}

func TestUpdateClipsAndIgnoresAlpha(t *testing.T) {
	c, _ := newSimCanvas(t, 4, 2, 4, 4)

	pm := pixwave.NewPixmapFilled(3, 3, 0x40102030, false)
	pm.ExportRegion(c, 2, -1)

	img := c.surface
	// Rows 0-1, columns 2-3 come from the pixmap; the rest stays zero.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := img.RGBAAt(x, y)
			inside := x >= 2 && y <= 1
			if inside && (got.R != 0x10 || got.G != 0x20 || got.B != 0x30 || got.A != 0xFF) {
				t.Errorf("pixel (%d,%d) = %v, want opaque 102030", x, y, got)
			}
			if !inside && got.A != 0 {
				t.Errorf("pixel (%d,%d) = %v, want untouched", x, y, got)
			}
		}
	}
}

func TestUpdateOutsideSurface(t *testing.T) {
	c, _ := newSimCanvas(t, 4, 2, 4, 4)

	pm := pixwave.NewPixmapFilled(2, 2, pixwave.White, false)
	pm.ExportRegion(c, 4, 0)
	pm.ExportRegion(c, -2, 1)
	pm.ExportRegion(c, 0, -2)
	c.Update(nil, 1, 1, 0, 0, 0)

	for i, v := range c.surface.Pix {
		if v != 0 {
			t.Fatalf("surface byte %d = %#x, want untouched", i, v)
		}
	}
}

func TestPresentHalfBlocks(t *testing.T) {
	c, screen := newSimCanvas(t, 2, 1, 2, 2)

	pm := pixwave.NewPixmapFilled(2, 2, pixwave.ComposeOpaque(255, 0, 0), false)
	pm.DrawRectUnchecked(pixwave.NewRectbox(0, 1, 1, 1), pixwave.ComposeOpaque(0, 0, 255))
	pm.ExportRegion(c, 0, 0)

	if err := c.Present(); err != nil {
		t.Fatalf("Present() = %v", err)
	}

	for x := 0; x < 2; x++ {
		fg, bg := cellColors(t, screen, x, 0)
		if fg != [3]int32{255, 0, 0} {
			t.Errorf("cell %d foreground = %v, want red (upper pixel)", x, fg)
		}
		if bg != [3]int32{0, 0, 255} {
			t.Errorf("cell %d background = %v, want blue (lower pixel)", x, bg)
		}
	}
}

func TestPresentScalesUniformSurface(t *testing.T) {
	c, screen := newSimCanvas(t, 5, 3, 40, 30)
	c.SetScaler(xdraw.NearestNeighbor)

	pixwave.NewPixmapFilled(40, 30, pixwave.ComposeOpaque(10, 200, 30), false).ExportCentered(c, c.Width(), c.Height())
	if err := c.Present(); err != nil {
		t.Fatalf("Present() = %v", err)
	}

	fg, bg := cellColors(t, screen, 4, 2)
	if fg != [3]int32{10, 200, 30} || bg != [3]int32{10, 200, 30} {
		t.Errorf("scaled cell = %v / %v, want uniform (10,200,30)", fg, bg)
	}
}

func TestClosedCanvas(t *testing.T) {
	c, _ := newSimCanvas(t, 2, 1, 2, 2)
	if err := c.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
	if err := c.Present(); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Present() after Close = %v, want ErrCanvasClosed", err)
	}
	if ev := c.PollEvents(); ev != nil {
		t.Errorf("PollEvents() after Close = %v, want nil", ev)
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Event
	}{
		{tcell.KeyUp, 0, EventUp},
		{tcell.KeyDown, 0, EventDown},
		{tcell.KeyLeft, 0, EventLeft},
		{tcell.KeyRight, 0, EventRight},
		{tcell.KeyEscape, 0, EventQuit},
		{tcell.KeyCtrlC, 0, EventQuit},
		{tcell.KeyRune, 'q', EventQuit},
		{tcell.KeyRune, 'x', EventNone},
		{tcell.KeyEnter, 0, EventNone},
	}

	for _, tt := range tests {
		if got := mapKey(tt.key, tt.r); got != tt.want {
			t.Errorf("mapKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}
