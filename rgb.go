// Copyright (c) 2026, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tint

import (
	"fmt"
	"image/color"

	"github.com/tintlab/tint/cie"
)

// RGB is an 8-bit-per-channel sRGB color, the display-oriented
// representation. Each channel is bounded to 0-255 by its storage
// width, so every RGB value is in gamut by construction.
type RGB struct {
	R, G, B uint8
}

// XYZ implements [Color], gamma-decoding the channels and applying the
// linear sRGB-to-XYZ transform. No clamping is needed: integer storage
// already bounds the input to the sRGB gamut.
func (c RGB) XYZ() XYZ {
	rl, gl, bl := cie.SRGBToLinear(cie.SRGBUint8ToFloat(c.R, c.G, c.B))
	x, y, z := cie.SRGBLinToXYZ(rl, gl, bl)
	return XYZ{X: x, Y: y, Z: z}
}

// SetXYZ implements [XYZSetter], applying the XYZ-to-linear-sRGB
// transform, gamma-encoding each channel, and quantizing to uint8.
// Out-of-gamut XYZ colors are gamut-mapped by clamping each encoded
// channel to [0, 1] before scaling; the final scaling rounds half away
// from zero.
func (c *RGB) SetXYZ(xyz XYZ) {
	rl, gl, bl := cie.XYZToSRGBLin(xyz.X, xyz.Y, xyz.Z)
	c.R, c.G, c.B = cie.SRGBFloatToUint8(cie.SRGBFromLinear(rl, gl, bl))
}

// RGBFromValues constructs an RGB color from an ordered r, g, b
// sequence. The slice must have at least three elements; anything
// shorter is a caller error and panics.
func RGBFromValues(vals []uint8) RGB {
	return RGB{R: vals[0], G: vals[1], B: vals[2]}
}

// Values returns the channels as an ordered r, g, b slice.
func (c RGB) Values() []uint8 {
	return []uint8{c.R, c.G, c.B}
}

// String returns the color as an uppercase #RRGGBB hex string.
func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements the [color.Color] interface, as a fully opaque color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// RGBFromColor constructs an RGB color from a standard [color.Color],
// discarding alpha.
func RGBFromColor(ci color.Color) RGB {
	r, g, b, _ := ci.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Model is the standard [color.Model] that converts colors to RGB.
var Model = color.ModelFunc(model)

func model(ci color.Color) color.Color {
	if c, ok := ci.(RGB); ok {
		return c
	}
	return RGBFromColor(ci)
}
