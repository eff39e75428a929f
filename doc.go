// Copyright (c) 2026, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tint models colors as immutable values in multiple
// representations and converts between them through a single shared
// interchange space, the CIE 1931 XYZ space.
//
// Every representation implements the [Color] capability by providing
// just two operations: a conversion into [XYZ] and a conversion out of
// it. The generic [Convert] function then reaches any representation
// from any other for free, so adding a new color space never requires
// pairwise converters. All conversions are total: out-of-gamut colors
// are silently clamped to the displayable range, never rejected.
package tint
