// Copyright (c) 2026, The Tint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tint

import "github.com/muesli/termenv"

// colorize wraps text in a foreground-set escape for the given color
// and a trailing reset. It is a variable so the escape encoding stays
// behind a single seam: the conversion core never touches terminal
// sequences directly, and tests can substitute a plain formatter.
var colorize = termenvColorize

// termenvColorize renders through termenv with the profile pinned to
// TrueColor, so the output is deterministic regardless of what
// terminal (if any) is attached.
func termenvColorize(c RGB, text string) string {
	return termenv.TrueColor.String(text).Foreground(termenv.RGBColor(c.String())).String()
}
