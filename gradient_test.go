// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

import "testing"

func TestVerticalGradientEndRows(t *testing.T) {
	top := Compose(200, 10, 20, 255)
	bottom := Compose(0, 50, 100, 255)

	pm := NewPixmapFilled(4, 5, Transparent, false)
	pm.VerticalGradient(NewRectbox(0, 0, 3, 4), top, bottom)

	tests := []struct {
		y    int
		want Pixel
	}{
		// f1 = 0: every channel takes top's red.
		{0, Compose(200, 200, 200, 200)},
		// f1 = 0.5: top.r/2 + bottom channel/2.
		{2, Compose(100, 125, 150, 227)},
		// f1 = 1: bottom exactly.
		{4, bottom},
	}

	for _, tt := range tests {
		for x := 0; x < 4; x++ {
			if got := pm.ReadPixel(x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %#08x, want %#08x", x, tt.y, uint32(got), uint32(tt.want))
			}
		}
	}
}

func TestVerticalGradientClipped(t *testing.T) {
	pm := NewPixmapFilled(3, 3, White, false)
	pm.VerticalGradient(NewRectbox(-10, 1, 10, 10), Black, Black)

	// Clipped to rows 1..2; row 0 untouched.
	if got := pm.ReadPixel(1, 0); got != White {
		t.Errorf("row above rect = %#08x, want white", uint32(got))
	}
	// top red is 0, so row 1 is all zero.
	if got := pm.ReadPixel(0, 1); got != Transparent {
		t.Errorf("first gradient row = %#08x, want 0", uint32(got))
	}
	if got := pm.ReadPixel(2, 2); got != Black {
		t.Errorf("last gradient row = %#08x, want black", uint32(got))
	}
}

func TestVerticalGradientSingleRowSkipped(t *testing.T) {
	pm := NewPixmapFilled(3, 3, White, false)
	pm.VerticalGradient(NewRectbox(0, 1, 2, 1), Black, Black)
	pm.VerticalGradient(NewRectbox(0, 5, 2, 9), Black, Black) // clips to a single row
	for i, c := range pm.Pixels() {
		if c != White {
			t.Fatalf("pixel %d = %#08x, single-row gradients must be skipped", i, uint32(c))
		}
	}
}

func TestVerticalGradientBlends(t *testing.T) {
	// Top red 0 makes the first row fully transparent, which leaves the
	// background unchanged in alpha mode.
	pm := NewPixmapFilled(2, 3, 0xFF123456, true)
	pm.VerticalGradient(NewRectbox(0, 0, 1, 2), Black, White)

	if got := pm.ReadPixel(0, 0); got != 0xFF123456 {
		t.Errorf("row 0 = %#08x, want background", uint32(got))
	}
	if got := pm.ReadPixel(1, 2); got != White {
		t.Errorf("row 2 = %#08x, want white", uint32(got))
	}
}
