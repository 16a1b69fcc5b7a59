// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"math"

	"cogentcore.org/material/base/mathx"
	"cogentcore.org/material/colors/cam/cie"
)

// Lighten returns an ARGB color that is lighter by the
// given absolute HCT tone amount (0-100, ranges enforced)
func Lighten(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	return h.WithTone(h.tone + amount).argb
}

// Darken returns an ARGB color that is darker by the
// given absolute HCT tone amount (0-100, ranges enforced)
func Darken(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	return h.WithTone(h.tone - amount).argb
}

// Highlight returns an ARGB color that is lighter or darker by the
// given absolute HCT tone amount (0-100, ranges enforced),
// making the color darker if it is light (tone >= 50) and
// lighter otherwise. It is the opposite of [Samelight].
func Highlight(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	if h.tone >= 50 {
		return h.WithTone(h.tone - amount).argb
	}
	return h.WithTone(h.tone + amount).argb
}

// Samelight returns an ARGB color that is lighter or darker by the
// given absolute HCT tone amount (0-100, ranges enforced),
// making the color lighter if it is light (tone >= 50) and
// darker otherwise. It is the opposite of [Highlight].
func Samelight(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	if h.tone >= 50 {
		return h.WithTone(h.tone + amount).argb
	}
	return h.WithTone(h.tone - amount).argb
}

// Saturate returns an ARGB color that is more saturated by the
// given absolute HCT chroma amount (0-max that depends
// on other params but is around 150, ranges enforced)
func Saturate(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	return h.WithChroma(h.chroma + amount).argb
}

// Desaturate returns an ARGB color that is less saturated by the
// given absolute HCT chroma amount (0-max that depends
// on other params but is around 150, ranges enforced)
func Desaturate(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	return h.WithChroma(h.chroma - amount).argb
}

// Spin returns an ARGB color that has a different hue by the
// given absolute HCT hue amount (±0-360, ranges enforced)
func Spin(argb uint32, amount float64) uint32 {
	h := FromARGB(argb)
	return h.WithHue(h.hue + amount).argb
}

// MinHueDistance finds the minimum distance between two hues.
// A positive number means add to a to get to b.
// A negative number means subtract from a to get to b.
func MinHueDistance(a, b float64) float64 {
	d1 := b - a
	d2 := (b + 360) - a
	d3 := (b - (a + 360))
	d1a := math.Abs(d1)
	d2a := math.Abs(d2)
	d3a := math.Abs(d3)
	if d1a < d2a && d1a < d3a {
		return d1
	}
	if d2a < d1a && d2a < d3a {
		return d2
	}
	return d3
}

// Blend returns an ARGB color that is the given percent blend between the
// first and second color; 10 = 10% of the first and 90% of the second, etc;
// blending is done directly on the HCT values, with the hue weighted by
// the chroma of each color, since the hue of a near gray is unreliable.
func Blend(pct float64, x, y uint32) uint32 {
	hx := FromARGB(x)
	hy := FromARGB(y)
	pct = mathx.Clamp(pct, 0, 100)
	px := pct / 100
	py := 1 - px

	dhue := MinHueDistance(hx.hue, hy.hue)

	cpy := 0.0
	if cs := px*hx.chroma + py*hy.chroma; cs > 0 {
		cpy = py * hy.chroma / cs
	}
	hue := hx.hue + cpy*dhue

	chroma := px*hx.chroma + py*hy.chroma
	tone := px*hx.tone + py*hy.tone
	alpha := px*float64(cie.AlphaFromARGB(x)) + py*float64(cie.AlphaFromARGB(y))
	rgb := New(hue, chroma, tone).argb & 0x00ffffff
	return uint32(math.Round(alpha))<<24 | rgb
}

// IsLight returns whether the given ARGB color is light
// (has an HCT tone greater than or equal to 50)
func IsLight(argb uint32) bool {
	return cie.LstarFromARGB(argb) >= 50
}

// IsDark returns whether the given ARGB color is dark
// (has an HCT tone less than 50)
func IsDark(argb uint32) bool {
	return cie.LstarFromARGB(argb) < 50
}
