// Copyright (c) 2023, Cogent Core. All rights reserved.
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

// Package hct implements the HCT (hue, chroma, tone) color space, which
// combines the CAM16 hue and chroma with the L* tone of L*a*b*, and the
// solver that maps HCT coordinates back into the sRGB gamut.
package hct

import (
	"fmt"
	"image/color"

	"cogentcore.org/material/base/mathx"
	"cogentcore.org/material/colors/cam/cam16"
	"cogentcore.org/material/colors/cam/cie"
)

// HCT, hue, chroma, and tone. A color system that provides a perceptually
// accurate color measurement system that can also accurately render what
// colors will appear as in different lighting environments.
//
// An HCT is an immutable value: the With methods return a new color,
// solved again from the requested coordinates. Because the maximum chroma
// depends on hue and tone, the resulting chroma may be lower than requested.
type HCT struct {
	hue    float64
	chroma float64
	tone   float64
	argb   uint32
}

// New returns the HCT color closest to the given hue (in degrees, wrapped
// into [0, 360)), chroma, and tone (clamped to [0, 100]). The chroma may be
// reduced to the maximum that is within the sRGB gamut at that hue and tone.
func New(hue, chroma, tone float64) HCT {
	hue = mathx.SanitizeDegrees(hue)
	tone = mathx.Clamp(tone, 0, 100)
	return FromARGB(SolveToARGB(hue, max(chroma, 0), tone))
}

// FromARGB returns the HCT color of the given ARGB color.
// The alpha of the color is preserved by [HCT.ARGB].
func FromARGB(argb uint32) HCT {
	cam := cam16.FromARGB(argb)
	return HCT{hue: cam.Hue, chroma: cam.Chroma, tone: cie.LstarFromARGB(argb), argb: argb}
}

// FromColor returns the HCT color of the given standard [color.Color].
func FromColor(c color.Color) HCT {
	if h, ok := c.(HCT); ok {
		return h
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromARGB(uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))
}

// Model is the standard [color.Model] that converts colors to HCT.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// Hue returns the hue (h) of the color, the spectral identity of the color
// (red, green, blue etc) in degrees, in [0, 360).
func (h HCT) Hue() float64 { return h.hue }

// Chroma returns the chroma (C) of the color, the colorfulness of the color.
// Grayscale colors have no chroma; the maximum varies as a function of
// hue and tone.
func (h HCT) Chroma() float64 { return h.chroma }

// Tone returns the tone of the color, the L* component of L*a*b*, in [0, 100].
func (h HCT) Tone() float64 { return h.tone }

// ARGB returns the ARGB encoding of the color.
func (h HCT) ARGB() uint32 { return h.argb }

// WithHue returns the color with the given hue and the same chroma and tone.
// The chroma may decrease because chroma has a different maximum
// for any given hue and tone.
func (h HCT) WithHue(hue float64) HCT {
	return New(hue, h.chroma, h.tone)
}

// WithChroma returns the color with the given chroma and the same
// hue and tone. The chroma may be reduced to keep the color in gamut.
func (h HCT) WithChroma(chroma float64) HCT {
	return New(h.hue, chroma, h.tone)
}

// WithTone returns the color with the given tone and the same hue and chroma.
// The chroma may decrease to keep the color in gamut.
func (h HCT) WithTone(tone float64) HCT {
	return New(h.hue, h.chroma, tone)
}

// InViewingConditions translates the color into the given viewing
// conditions: it returns the color that, seen under [cam16.StdView],
// appears the way this color appears under vw.
func (h HCT) InViewingConditions(vw *cam16.View) HCT {
	// XYZ of the color as seen in the given conditions
	xyz := cam16.FromARGB(h.argb).XYZView(vw)
	// recast in the standard conditions
	recast := cam16.FromXYZView(xyz[0], xyz[1], xyz[2], cam16.StdView)
	return New(recast.Hue, recast.Chroma, cie.LstarFromY(xyz[1]))
}

// RGBA implements the [color.Color] interface.
func (h HCT) RGBA() (r, g, b, a uint32) {
	return h.AsRGBA().RGBA()
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (h HCT) AsRGBA() color.RGBA {
	n := color.NRGBA{
		R: uint8(cie.RedFromARGB(h.argb)),
		G: uint8(cie.GreenFromARGB(h.argb)),
		B: uint8(cie.BlueFromARGB(h.argb)),
		A: uint8(cie.AlphaFromARGB(h.argb)),
	}
	return color.RGBAModel.Convert(n).(color.RGBA)
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.hue, h.chroma, h.tone)
}
