// Copyright (c) 2026, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE standard color conversion routines
// relating the CIE 1931 XYZ interchange space to the sRGB display
// space: the piecewise sRGB transfer (gamma) function and the 3x3
// linear transforms between XYZ and linear-light sRGB, per IEC
// 61966-2-1 with the D65 white point.
package cie

import "math"

// D65 standard illuminant white point in XYZ coordinates,
// the fixed default illuminant for all conversions in this package.
const (
	WhiteD65X = 0.95047
	WhiteD65Y = 1.0
	WhiteD65Z = 1.08883
)

// SRGBToLinearComp converts an sRGB gamma-encoded component
// to its linear-light value, using the sRGB piecewise curve.
func SRGBToLinearComp(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear-light component to its sRGB
// gamma-encoded value, using the sRGB piecewise curve.
// Non-positive inputs take the linear segment, so negative
// out-of-gamut values pass through without NaN and can be
// clamped downstream.
func SRGBFromLinearComp(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// SRGBToLinear converts sRGB gamma-encoded r, g, b values
// to linear-light values.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear-light rl, gl, bl values
// to sRGB gamma-encoded values.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBLinToXYZ converts linear-light sRGB to XYZ tristimulus values
// under the D65 illuminant.
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	x = 0.4124*rl + 0.3576*gl + 0.1805*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.0193*rl + 0.1192*gl + 0.9505*bl
	return
}

// XYZToSRGBLin converts XYZ tristimulus values to linear-light sRGB
// under the D65 illuminant. The result is unbounded: XYZ colors
// outside the sRGB gamut produce components below 0 or above 1,
// which callers clamp (see [SRGBFloatToUint8]).
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	rl = 3.2406*x - 1.5372*y - 0.4986*z
	gl = -0.9689*x + 1.8758*y + 0.0415*z
	bl = 0.0557*x - 0.2040*y + 1.0570*z
	return
}

// Clamp01 clamps the value to the [0, 1] display range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SRGBCompToUint8 converts a 0-1 normalized sRGB component to a uint8,
// clamping to the displayable range and rounding half away from zero.
// This is the one lossy, gamut-mapping step in the conversion chain.
func SRGBCompToUint8(c float64) uint8 {
	return uint8(Clamp01(c)*255 + 0.5)
}

// SRGBFloatToUint8 converts 0-1 normalized sRGB components to uint8,
// clamping and rounding each channel independently.
func SRGBFloatToUint8(r, g, b float64) (ru, gu, bu uint8) {
	ru = SRGBCompToUint8(r)
	gu = SRGBCompToUint8(g)
	bu = SRGBCompToUint8(b)
	return
}

// SRGBUint8ToFloat converts uint8 sRGB components to
// 0-1 normalized floating point values.
func SRGBUint8ToFloat(r, g, b uint8) (rf, gf, bf float64) {
	rf = float64(r) / 255
	gf = float64(g) / 255
	bf = float64(b) / 255
	return
}
