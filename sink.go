// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

// BytesPerPixel is the size of a packed Pixel in a sink buffer.
const BytesPerPixel = 4

// PresentationSink receives pixel regions for display.
//
// Update copies a width x height region of row-major packed ARGB pixels,
// strideBytes bytes apart row to row, into the sink's surface with its
// top-left corner at (x, y). Offsets may be negative or push the region
// past the surface; the sink clips.
type PresentationSink interface {
	Update(pixels []Pixel, x, y, width, height, strideBytes int)
}

// ExportRegion pushes the whole pixmap to sink with its top-left corner at
// (x1, y1).
func (p *Pixmap) ExportRegion(sink PresentationSink, x1, y1 int) {
	if len(p.pix) == 0 {
		return
	}
	sink.Update(p.pix, x1, y1, p.width, p.height, p.width*BytesPerPixel)
}

// ExportCentered pushes the whole pixmap to sink centered in an outer area
// of outerW x outerH pixels. The offset is negative when the pixmap is
// larger than the area.
func (p *Pixmap) ExportCentered(sink PresentationSink, outerW, outerH int) {
	x1, y1 := CenterOffset(p.width, p.height, outerW, outerH)
	p.ExportRegion(sink, x1, y1)
}

// CenterOffset returns the top-left corner placing an inner area centered
// in an outer one, using truncating division.
func CenterOffset(innerW, innerH, outerW, outerH int) (x, y int) {
	return (outerW - innerW) / 2, (outerH - innerH) / 2
}
