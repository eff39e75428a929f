// Copyright (c) 2026, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tint

// Color is the capability implemented by any color representation that
// can be converted to and from the CIE 1931 XYZ interchange space.
// The XYZ method is the inbound half of the contract; the outbound
// half is the SetXYZ method of [XYZSetter], implemented on the pointer
// type. Both halves are total: they always produce a value, accepting
// precision and gamut loss silently.
type Color interface {

	// XYZ returns this color in the XYZ interchange space.
	XYZ() XYZ
}

// XYZSetter is the constructor half of the [Color] capability:
// setting a value from an XYZ interchange color. It is implemented on
// pointer receivers so that [Convert] can fill in a fresh value.
type XYZSetter interface {

	// SetXYZ sets this color from the given XYZ interchange color,
	// clamping to the representable range as needed.
	SetXYZ(xyz XYZ)
}

// Convert converts any [Color] to the representation T, routing
// through the XYZ interchange space. Converting a value to its own
// type through XYZ is the identity for [XYZ] (trivially) and for [RGB]
// (the decode and encode paths invert each other to within less than
// half a quantization step). Converting between two different lossy
// representations is not exact in general: gamma rounding and gamut
// clamping are silent, deterministic policy.
func Convert[T any, P interface {
	*T
	XYZSetter
}](c Color) T {
	var dst T
	P(&dst).SetXYZ(c.XYZ())
	return dst
}

// ColoredString returns text wrapped in terminal escape codes that
// render it with c as the foreground color, followed by a reset so
// later output is unaffected. It works on any [Color] by converting
// to [RGB] first. The text is passed through unmodified, including any
// escape sequences it already contains.
func ColoredString(c Color, text string) string {
	return colorize(Convert[RGB](c), text)
}
