// Copyright (c) 2026, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tint

// XYZ is a point in the CIE 1931 XYZ color space, the canonical
// interchange representation that every other representation converts
// through. Tristimulus values of real light are non-negative; that
// invariant is documented, not enforced, so callers can hold
// intermediate out-of-range values. The zero value is black.
type XYZ struct {
	X, Y, Z float64
}

// XYZ implements [Color]: the interchange space converts to itself
// exactly, as the identity.
func (c XYZ) XYZ() XYZ {
	return c
}

// SetXYZ implements [XYZSetter] as the exact identity.
func (c *XYZ) SetXYZ(xyz XYZ) {
	*c = xyz
}

// XYZFromValues constructs an XYZ color from an ordered x, y, z
// sequence. The slice must have at least three elements; anything
// shorter is a caller error and panics.
func XYZFromValues(vals []float64) XYZ {
	return XYZ{X: vals[0], Y: vals[1], Z: vals[2]}
}

// Values returns the tristimulus components as an ordered x, y, z slice.
func (c XYZ) Values() []float64 {
	return []float64{c.X, c.Y, c.Z}
}
