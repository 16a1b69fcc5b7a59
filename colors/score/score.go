// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package score ranks colors by their suitability as the source
// color of a UI theme, based on how much of an image they cover
// and how colorful they are.
package score

import (
	"math"
	"sort"

	"cogentcore.org/material/base/mathx"
	"cogentcore.org/material/colors/cam/cam16"
	"cogentcore.org/material/colors/cam/cie"
	"github.com/kovidgoyal/go-parallel"
)

const (
	// TargetChroma is the chroma at which colors stop being penalized.
	TargetChroma = 48.0

	// WeightProportion is the weight of the excited proportion of a color.
	WeightProportion = 0.7

	// WeightChromaAbove is the weight of chroma above [TargetChroma].
	WeightChromaAbove = 0.3

	// WeightChromaBelow is the weight of chroma below [TargetChroma].
	WeightChromaBelow = 0.1

	// CutoffChroma is the minimum chroma of a suitable color.
	CutoffChroma = 15.0

	// CutoffTone is the minimum tone of a suitable color, and
	// 100 minus the maximum tone for content colors.
	CutoffTone = 10.0

	// CutoffExcitedProportion is the minimum excited proportion
	// of a suitable color.
	CutoffExcitedProportion = 0.01

	// DedupeHueDistance is the hue distance in degrees within which
	// only the highest scoring color is kept.
	DedupeHueDistance = 15.0

	// Fallback is the color returned when no color is suitable (Google Blue).
	Fallback uint32 = 0xff4285f4

	// parallelMin is the number of colors at or above which
	// the appearance of the colors is computed in parallel.
	parallelMin = 1024
)

// scored is a candidate color with its appearance and score.
type scored struct {
	argb    uint32
	cam     cam16.CAM
	tone    float64
	excited float64
	score   float64
}

// Score returns the given colors ranked by suitability as the source
// color of a UI theme, most suitable first. The map gives the population
// (for example the pixel count in an image) of each ARGB color.
// Colors that are too gray, too dark, or too rare are removed, as are
// colors whose hue is within [DedupeHueDistance] of a higher scoring color.
// If content is true, colors that are too light are removed as well.
// The result is never empty: [Fallback] is returned if no color is suitable.
func Score(colorsToPopulation map[uint32]int, content bool) []uint32 {
	cands := make([]scored, 0, len(colorsToPopulation))
	total := 0.0
	for c, pop := range colorsToPopulation {
		if pop <= 0 {
			continue
		}
		cands = append(cands, scored{argb: c})
		total += float64(pop)
	}
	if len(cands) == 0 {
		return []uint32{Fallback}
	}

	appearance := func(start, limit int) {
		for i := start; i < limit; i++ {
			cands[i].cam = cam16.FromARGB(cands[i].argb)
			cands[i].tone = cie.LstarFromARGB(cands[i].argb)
		}
	}
	if len(cands) < parallelMin || parallel.Run_in_parallel_over_range(0, appearance, 0, len(cands)) != nil {
		appearance(0, len(cands))
	}

	var hueProportions [360]float64
	for _, c := range cands {
		hueProportions[roundHue(c.cam.Hue)] += float64(colorsToPopulation[c.argb]) / total
	}

	for i := range cands {
		c := &cands[i]
		hue := roundHue(c.cam.Hue)
		for h := hue - 15; h < hue+15; h++ {
			c.excited += hueProportions[mathx.SanitizeDegreesInt(h)]
		}
		weight := WeightChromaAbove
		if c.cam.Chroma < TargetChroma {
			weight = WeightChromaBelow
		}
		c.score = c.excited*100*WeightProportion + (c.cam.Chroma-TargetChroma)*weight
	}

	suitable := cands[:0]
	for _, c := range cands {
		if isSuitable(c, content) {
			suitable = append(suitable, c)
		}
	}
	sort.Slice(suitable, func(i, j int) bool {
		if suitable[i].score != suitable[j].score {
			return suitable[i].score > suitable[j].score
		}
		return suitable[i].argb < suitable[j].argb
	})

	var chosen []scored
	for _, c := range suitable {
		duplicate := false
		for _, o := range chosen {
			if mathx.DifferenceDegrees(c.cam.Hue, o.cam.Hue) < DedupeHueDistance {
				duplicate = true
				break
			}
		}
		if !duplicate {
			chosen = append(chosen, c)
		}
	}
	if len(chosen) == 0 {
		return []uint32{Fallback}
	}
	res := make([]uint32, len(chosen))
	for i, c := range chosen {
		res[i] = c.argb
	}
	return res
}

func isSuitable(c scored, content bool) bool {
	if c.cam.Chroma < CutoffChroma || c.tone < CutoffTone || c.excited < CutoffExcitedProportion {
		return false
	}
	return !content || c.tone <= 100-CutoffTone
}

func roundHue(hue float64) int {
	return mathx.SanitizeDegreesInt(int(math.Round(hue)))
}
