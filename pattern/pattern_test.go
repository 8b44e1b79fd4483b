// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pattern

import (
	"errors"
	"testing"

	"github.com/gogpu/pixwave"
)

func TestCheckerboard3x3(t *testing.T) {
	pm := pixwave.NewPixmapFilled(3, 3, pixwave.Transparent, false)
	PaintCheckerboard(pm, 1)

	a, b := pm.ReadPixel(0, 0), pm.ReadPixel(1, 0)
	if a == b {
		t.Fatalf("pixel(0,0) == pixel(1,0) = %#08x, want different colors", uint32(a))
	}
	if pm.ReadPixel(1, 1) != a {
		t.Errorf("pixel(1,1) = %#08x, want %#08x", uint32(pm.ReadPixel(1, 1)), uint32(a))
	}
	if pm.ReadPixel(0, 1) != b {
		t.Errorf("pixel(0,1) = %#08x, want %#08x", uint32(pm.ReadPixel(0, 1)), uint32(b))
	}
	if a != BlackWhite.Even || b != BlackWhite.Odd {
		t.Errorf("colors = (%#08x, %#08x), want white then black", uint32(a), uint32(b))
	}
}

func TestCheckerboardCells(t *testing.T) {
	colors := Checker{Even: 0xFF111111, Odd: 0xFF222222}
	pm := pixwave.NewPixmapFilled(9, 4, pixwave.Transparent, false)
	PaintCheckerboardColors(pm, 2, colors)

	for y := 0; y < 4; y++ {
		for x := 0; x < 9; x++ {
			want := colors.Odd
			if (x/2)%2 == (y/2)%2 {
				want = colors.Even
			}
			if x == 8 {
				want = pixwave.Transparent // partial cell column untouched
			}
			if got := pm.ReadPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestCheckerboardInvalidCell(t *testing.T) {
	pm := pixwave.NewPixmapFilled(4, 4, pixwave.Transparent, false)
	PaintCheckerboard(pm, 0)
	PaintCheckerboard(pm, -3)
	for i, c := range pm.Pixels() {
		if c != pixwave.Transparent {
			t.Fatalf("pixel %d painted with invalid cell size", i)
		}
	}
}

func TestFlag6x3(t *testing.T) {
	pm := pixwave.NewPixmapFilled(6, 3, pixwave.Transparent, false)
	PaintFlag(pm)

	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			want := Tricolor[x/2]
			if got := pm.ReadPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestFlagRemainderAbsorbedByLastBand(t *testing.T) {
	colors := Flag{0xFF000001, 0xFF000002, 0xFF000003}
	pm := pixwave.NewPixmapFilled(8, 2, pixwave.Transparent, false)
	PaintFlagColors(pm, colors)

	// third = 2: bands [0,1], [2,3], [4,7].
	want := []pixwave.Pixel{1, 1, 2, 2, 3, 3, 3, 3}
	for x, w := range want {
		if got := pm.ReadPixel(x, 1); got != 0xFF000000|w {
			t.Errorf("column %d = %#08x, want %#08x", x, uint32(got), uint32(0xFF000000|w))
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"flag", KindFlag, false},
		{"Checkerboard", KindCheckerboard, false},
		{" checker ", KindCheckerboard, false},
		{"stripes", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownKind) {
				t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if got.String() == "" {
			t.Errorf("Kind(%d).String() is empty", got)
		}
	}
}

func TestPaintDispatch(t *testing.T) {
	flag := pixwave.NewPixmapFilled(6, 3, pixwave.Transparent, false)
	Paint(KindFlag, flag, 0)
	if flag.ReadPixel(0, 0) != Tricolor[0] {
		t.Error("Paint(KindFlag) did not paint the flag")
	}

	board := pixwave.NewPixmapFilled(2, 2, pixwave.Transparent, false)
	Paint(KindCheckerboard, board, 1)
	if board.ReadPixel(1, 0) != BlackWhite.Odd {
		t.Error("Paint(KindCheckerboard) did not paint the board")
	}
}
