// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/material/colors/cam/hct"

// blue, red, green, yellow, violet, aqua, orange, blueviolet
var spacedHues = []float64{255, 25, 150, 105, 340, 210, 60, 300}

// even 45:       30, 75, 120, 165, 210, 255, 300, 345,
var (
	spacedToneOffsetsLight = []float64{0, -10, 0, 5, 0, 0, 5, 0}
	spacedToneOffsetsDark  = []float64{0, -10, 0, 10, 0, 0, 5, 0}
	spacedTones            = []float64{65, 80, 45, 65, 80}
	spacedChromas          = []float64{90, 90, 90, 20, 20}
)

// Spaced returns a maximally widely spaced sequence of ARGB colors
// for progressive values of the index, using the HCT space.
// This is useful, for example, for assigning colors in graphs.
// The sequence repeats after 40 colors. Negative indexes are
// treated as 0.
func Spaced(idx int, dark bool) uint32 {
	idx = max(idx, 0)
	toffs := spacedToneOffsetsLight
	if dark {
		toffs = spacedToneOffsetsDark
	}
	ncats := len(spacedHues)
	ntc := len(spacedTones)
	hi := idx % ncats
	hr := idx / ncats
	tci := hr % ntc
	hue := spacedHues[hi]
	tone := toffs[hi] + spacedTones[tci]
	chroma := spacedChromas[tci]
	return hct.New(hue, chroma, tone).ARGB()
}
