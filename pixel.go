// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

import "image/color"

// Pixel is a packed 32-bit ARGB color.
// Alpha occupies bits 31-24, red 23-16, green 15-8 and blue 7-0.
type Pixel uint32

// Common pixels.
const (
	Transparent Pixel = 0x00000000
	Black       Pixel = 0xFF000000
	White       Pixel = 0xFFFFFFFF
)

// Decompose splits a pixel into its four channels.
func Decompose(p Pixel) (r, g, b, a uint8) {
	a = uint8(p >> 24)
	r = uint8(p >> 16)
	g = uint8(p >> 8)
	b = uint8(p)
	return r, g, b, a
}

// Compose packs four channels into a pixel.
func Compose(r, g, b, a uint8) Pixel {
	return Pixel(a)<<24 | Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// ComposeOpaque packs an opaque pixel.
func ComposeOpaque(r, g, b uint8) Pixel {
	return Compose(r, g, b, 0xFF)
}

// BlendOnto composites front over *back using front's alpha as the
// weight for every channel, alpha included:
//
//	back = back*(1-fa/255) + front*(fa/255)
//
// Results are truncated. The destination alpha is interpolated the same
// way as the color channels rather than accumulated as in Porter-Duff
// source-over.
func BlendOnto(front Pixel, back *Pixel) {
	r, g, b, a := Decompose(front)
	rr, gg, bb, aa := Decompose(*back)

	f1 := float32(a) / 255.0
	f2 := 1.0 - f1

	*back = Compose(
		uint8(float32(rr)*f2+f1*float32(r)),
		uint8(float32(gg)*f2+f1*float32(g)),
		uint8(float32(bb)*f2+f1*float32(b)),
		uint8(float32(aa)*f2+f1*float32(a)),
	)
}

// NRGBA converts the pixel to a non-premultiplied color.
func (p Pixel) NRGBA() color.NRGBA {
	r, g, b, a := Decompose(p)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// RGBA implements the color.Color interface.
// Pixel channels are straight (non-premultiplied) alpha.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.NRGBA().RGBA()
}

// PixelFromColor converts any color.Color to a Pixel.
func PixelFromColor(c color.Color) Pixel {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Compose(n.R, n.G, n.B, n.A)
}

// PixelModel converts colors to Pixel values.
var PixelModel = color.ModelFunc(func(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	return PixelFromColor(c)
})
