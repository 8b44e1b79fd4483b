// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

import "testing"

type update struct {
	x, y, w, h, stride int
	n                  int
}

type recordingSink struct {
	updates []update
	first   Pixel
}

func (s *recordingSink) Update(pixels []Pixel, x, y, width, height, strideBytes int) {
	s.updates = append(s.updates, update{x: x, y: y, w: width, h: height, stride: strideBytes, n: len(pixels)})
	if len(pixels) > 0 {
		s.first = pixels[0]
	}
}

func TestExportRegion(t *testing.T) {
	pm := NewPixmapFilled(4, 3, 0xFF102030, false)
	var sink recordingSink
	pm.ExportRegion(&sink, 7, -2)

	if len(sink.updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(sink.updates))
	}
	want := update{x: 7, y: -2, w: 4, h: 3, stride: 16, n: 12}
	if got := sink.updates[0]; got != want {
		t.Errorf("update = %+v, want %+v", got, want)
	}
	if sink.first != 0xFF102030 {
		t.Errorf("first pixel = %#08x", uint32(sink.first))
	}
}

func TestExportCentered(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		outW, outH   int
		wantX, wantY int
	}{
		{"smaller", 320, 240, 864, 486, 272, 123},
		{"odd remainder", 3, 3, 10, 8, 3, 2},
		{"larger than outer", 10, 10, 5, 7, -2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sink recordingSink
			NewPixmap(tt.w, tt.h).ExportCentered(&sink, tt.outW, tt.outH)
			got := sink.updates[0]
			if got.x != tt.wantX || got.y != tt.wantY {
				t.Errorf("offset = (%d, %d), want (%d, %d)", got.x, got.y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestExportEmptyPixmap(t *testing.T) {
	var sink recordingSink
	NewPixmap(0, 0).ExportRegion(&sink, 0, 0)
	if len(sink.updates) != 0 {
		t.Errorf("empty pixmap produced %d updates", len(sink.updates))
	}
}
