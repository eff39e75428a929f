// Copyright (c) 2026, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXYZToRGB(t *testing.T) {
	xyz := XYZ{X: 0.41874, Y: 0.21967, Z: 0.05649}
	rgb := Convert[RGB](xyz)
	assert.Equal(t, RGB{R: 254, G: 23, B: 55}, rgb)
}

func TestRGBToXYZ(t *testing.T) {
	rgb := RGB{R: 45, G: 28, B: 156}
	xyz := rgb.XYZ()
	assert.InDelta(t, 0.0750, xyz.X, 0.01)
	assert.InDelta(t, 0.0379, xyz.Y, 0.01)
	assert.InDelta(t, 0.3178, xyz.Z, 0.01)

	// Convert to XYZ goes through the same path
	assert.Equal(t, xyz, Convert[XYZ](rgb))
}

// Converting the interchange space to itself is the exact identity,
// even for values that no real light can produce.
func TestXYZIdentity(t *testing.T) {
	for _, c := range []XYZ{
		{},
		{X: 0.41874, Y: 0.21967, Z: 0.05649},
		{X: -0.3, Y: 2.5, Z: 1e9},
	} {
		assert.Equal(t, c, Convert[XYZ](c))
		assert.Equal(t, c, c.XYZ())
	}
}

// A round trip through the interchange space recovers every 8-bit RGB
// value exactly: the decode and encode paths invert each other to
// within less than half a quantization step.
func TestRGBSelfConvert(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				assert.Equal(t, c, Convert[RGB](c))
			}
		}
	}
}

func TestRoundTripClose(t *testing.T) {
	// in-gamut XYZ survives a trip through RGB with only gamma
	// rounding loss
	c := XYZ{X: 0.41874, Y: 0.21967, Z: 0.05649}
	back := Convert[RGB](c).XYZ()
	assert.InDelta(t, c.X, back.X, 0.01)
	assert.InDelta(t, c.Y, back.Y, 0.01)
	assert.InDelta(t, c.Z, back.Z, 0.01)
}

func TestDeterminism(t *testing.T) {
	xyz := XYZ{X: 0.2, Y: 0.3, Z: 0.4}
	first := Convert[RGB](xyz)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Convert[RGB](xyz))
	}
	rgb := RGB{R: 12, G: 200, B: 99}
	assert.Equal(t, rgb.XYZ(), rgb.XYZ())
}

// Out-of-gamut XYZ colors are gamut-mapped by clamping: channels
// saturate at 0 or 255 and never wrap.
func TestClampingBoundary(t *testing.T) {
	rgb := Convert[RGB](XYZ{X: 2, Y: 0, Z: 0})
	assert.Equal(t, uint8(255), rgb.R)
	assert.Equal(t, uint8(0), rgb.G)

	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, Convert[RGB](XYZ{X: 10, Y: 10, Z: 10}))
	assert.Equal(t, RGB{}, Convert[RGB](XYZ{X: -1, Y: -1, Z: -1}))
}

// Sweeping a grid across (and beyond) the sRGB gamut must always
// produce valid values and renderable escape strings.
func TestPaletteSweep(t *testing.T) {
	const y = 0.5
	for i := 0; i <= 20; i++ {
		x := float64(i) * 0.94 / 20
		for j := 0; j <= 20; j++ {
			z := float64(j) * 1.08883 / 20
			c := XYZ{X: x, Y: y, Z: z}
			rgb := Convert[RGB](c)
			assert.Len(t, rgb.String(), 7)
			s := ColoredString(c, "■")
			assert.Contains(t, s, "■")
		}
	}
}
