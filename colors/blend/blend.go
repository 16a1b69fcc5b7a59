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

// Package blend provides functions for interpolating and harmonizing
// colors in the HCT and CAM16 color spaces.
package blend

import (
	"fmt"
	"strings"

	"cogentcore.org/material/base/mathx"
	"cogentcore.org/material/colors/cam/cam16"
	"cogentcore.org/material/colors/cam/hct"
)

// Types are different ways of blending two colors.
type Types int32

const (
	// Hue rotates the hue of the first color toward the second,
	// keeping the chroma and tone of the first. See [HCTHue].
	Hue Types = iota

	// UCS interpolates linearly in the CAM16-UCS space. See [CAM16UCS].
	UCS

	// Harmonized shifts the first color toward the second by a fixed
	// amount, ignoring the given amount. See [Harmonize].
	Harmonized
)

var typeNames = [...]string{"hue", "ucs", "harmonize"}

// String returns the lower case name of the blend type.
func (t Types) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Types(%d)", int32(t))
	}
	return typeNames[t]
}

// ParseTypes returns the blend type with the given name, ignoring case.
// "hct" and "cam16" are accepted as aliases.
func ParseTypes(s string) (Types, error) {
	switch strings.ToLower(s) {
	case "hue", "hct":
		return Hue, nil
	case "ucs", "cam16", "cam16ucs":
		return UCS, nil
	case "harmonize", "harmonized":
		return Harmonized, nil
	}
	return 0, fmt.Errorf("blend: unknown blend type %q (want hue, ucs, or harmonize)", s)
}

// HarmonizeAmount is the fraction of the hue difference by which
// [Harmonize] rotates a design color toward the source color.
const HarmonizeAmount = 0.3

// Blend returns a blend of the two ARGB colors using the given
// blend type, where amount is the 0-1 fraction of the way from
// x to y.
func Blend(typ Types, amount float64, x, y uint32) uint32 {
	switch typ {
	case UCS:
		return CAM16UCS(x, y, amount)
	case Harmonized:
		return Harmonize(x, y)
	default:
		return HCTHue(x, y, amount)
	}
}

// HCTHue returns the from color with its hue rotated toward the hue
// of the to color along the shorter arc, by the given amount (clamped
// to 0-1). The chroma and tone of from are kept, and the result
// is solved back into a displayable color. An amount of 0
// returns from unchanged.
func HCTHue(from, to uint32, amount float64) uint32 {
	amount = mathx.Clamp(amount, 0, 1)
	if amount == 0 {
		return from
	}
	f := hct.FromARGB(from)
	t := hct.FromARGB(to)
	diff := mathx.DifferenceDegrees(f.Hue(), t.Hue())
	rot := mathx.RotationDirection(f.Hue(), t.Hue())
	return f.WithHue(f.Hue() + diff*amount*rot).ARGB()
}

// CAM16UCS returns the linear interpolation between the two colors
// in the CAM16-UCS space, by the given amount (clamped to 0-1).
func CAM16UCS(from, to uint32, amount float64) uint32 {
	amount = mathx.Clamp(amount, 0, 1)
	f := cam16.FromARGB(from)
	t := cam16.FromARGB(to)
	ucs := mathx.Vec3{f.JStar, f.AStar, f.BStar}.Lerp(mathx.Vec3{t.JStar, t.AStar, t.BStar}, amount)
	return cam16.FromUCS(ucs[0], ucs[1], ucs[2]).ARGB()
}

// Harmonize shifts the hue of the design color toward the hue of the
// source color by [HarmonizeAmount] of their difference, so that custom
// and brand colors sit cohesively within a theme generated from source.
func Harmonize(design, source uint32) uint32 {
	return HCTHue(design, source, HarmonizeAmount)
}
