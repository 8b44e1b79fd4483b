// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package termcanvas

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixwave"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("termcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("termcanvas: invalid dimensions")

	// ErrNilScreen is returned when a nil screen is passed.
	ErrNilScreen = errors.New("termcanvas: nil screen")
)

// upperHalfBlock paints the upper half of a cell in the foreground color.
const upperHalfBlock = '▀'

// Canvas is a terminal-backed pixwave.PresentationSink.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	screen  tcell.Screen
	surface *image.RGBA
	cells   *image.RGBA // surface scaled to cols x rows*2
	scaler  xdraw.Scaler
	closed  bool
}

var _ pixwave.PresentationSink = (*Canvas)(nil)

// New initializes screen and creates a canvas with a logical surface of
// width x height pixels.
func New(screen tcell.Screen, width, height int) (*Canvas, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termcanvas: screen init failed: %w", err)
	}
	screen.HideCursor()

	c := &Canvas{
		screen:  screen,
		surface: image.NewRGBA(image.Rect(0, 0, width, height)),
		scaler:  xdraw.ApproxBiLinear,
	}
	cols, rows := screen.Size()
	pixwave.Logger().Info("termcanvas: created",
		slog.Int("width", width), slog.Int("height", height),
		slog.Int("cols", cols), slog.Int("rows", rows))
	return c, nil
}

// Width returns the surface width in pixels.
func (c *Canvas) Width() int {
	return c.surface.Rect.Dx()
}

// Height returns the surface height in pixels.
func (c *Canvas) Height() int {
	return c.surface.Rect.Dy()
}

// Surface returns the logical surface. Drawing on it (labels, for
// example) shows up on the next Present.
func (c *Canvas) Surface() draw.Image {
	return c.surface
}

// SetScaler selects the interpolator used when the terminal grid and the
// surface differ in size. The default is xdraw.ApproxBiLinear.
func (c *Canvas) SetScaler(s xdraw.Scaler) {
	c.scaler = s
}

// Update implements pixwave.PresentationSink. The region is clipped to the
// surface and stored opaque.
func (c *Canvas) Update(pixels []pixwave.Pixel, x, y, width, height, strideBytes int) {
	if c.closed {
		return
	}
	stride := strideBytes / pixwave.BytesPerPixel
	region := pixwave.NewRectbox(x, y, x+width-1, y+height-1)
	dst := region.Rectangle().Intersect(c.surface.Rect)
	if dst.Empty() {
		return
	}

	for py := dst.Min.Y; py < dst.Max.Y; py++ {
		row := pixels[(py-y)*stride:]
		o := c.surface.PixOffset(dst.Min.X, py)
		for px := dst.Min.X; px < dst.Max.X; px++ {
			r, g, b, _ := pixwave.Decompose(row[px-x])
			c.surface.Pix[o+0] = r
			c.surface.Pix[o+1] = g
			c.surface.Pix[o+2] = b
			c.surface.Pix[o+3] = 0xFF
			o += 4
		}
	}
}

// Present scales the surface to the terminal and shows it.
func (c *Canvas) Present() error {
	if c.closed {
		return ErrCanvasClosed
	}

	cols, rows := c.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	cells := c.cellImage(cols, rows)

	if cells.Rect.Eq(c.surface.Rect) {
		draw.Draw(cells, cells.Rect, c.surface, image.Point{}, draw.Src)
	} else {
		c.scaler.Scale(cells, cells.Rect, c.surface, c.surface.Rect, draw.Src, nil)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := cells.RGBAAt(col, row*2)
			bottom := cells.RGBAAt(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			c.screen.SetContent(col, row, upperHalfBlock, nil, style)
		}
	}
	c.screen.Show()
	return nil
}

// cellImage returns the scratch image for a cols x rows grid, reallocating
// it when the terminal was resized.
func (c *Canvas) cellImage(cols, rows int) *image.RGBA {
	want := image.Rect(0, 0, cols, rows*2)
	if c.cells == nil || !c.cells.Rect.Eq(want) {
		c.cells = image.NewRGBA(want)
	}
	return c.cells
}

// Close restores the terminal. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.screen.Fini()
	return nil
}
