// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"

	"cogentcore.org/material/base/mathx"
)

// Linearized converts an 8-bit sRGB component (0-255) into
// its linear value on a 0-100 scale, removing gamma correction.
func Linearized(comp int) float64 {
	return SRGBToLinearComp(float64(comp)/255) * 100
}

// Delinearized converts a linear component on a 0-100 scale into
// an 8-bit sRGB component, applying gamma correction and rounding
// to the nearest integer in [0, 255].
func Delinearized(comp float64) int {
	d := SRGBFromLinearComp(comp / 100)
	return mathx.Clamp(int(math.Round(d*255)), 0, 255)
}

// SRGBToLinearComp removes the sRGB gamma from a 0-1 normalized component.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.040449936 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp applies the sRGB gamma to a 0-1 normalized linear component.
// The piecewise linear segment applies at or below 0.0031308.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return lin * 12.92
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinear removes the sRGB gamma from 0-1 normalized components.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}

// SRGBFromLinear applies the sRGB gamma to 0-1 normalized linear components.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	return SRGBFromLinearComp(rl), SRGBFromLinearComp(gl), SRGBFromLinearComp(bl)
}
