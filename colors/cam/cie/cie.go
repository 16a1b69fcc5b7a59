// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the basic color space conversions between
// packed ARGB, gamma corrected sRGB, linear RGB, CIE XYZ, and CIE L*a*b*.
// All XYZ values are 100-based, and linear RGB values use a 0-100 scale,
// which is the convention of the CAM16 and HCT color models.
package cie

import "cogentcore.org/material/base/mathx"

// WhiteD65 is the standard D65 white point in 100-based XYZ coordinates.
var WhiteD65 = mathx.Vec3{95.047, 100.0, 108.883}

// WhitePointD65 returns the standard D65 white point.
func WhitePointD65() mathx.Vec3 {
	return WhiteD65
}

// SRGBToXYZ converts linear sRGB to XYZ.
var SRGBToXYZ = mathx.Mat3{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// XYZToSRGB converts XYZ to linear sRGB.
var XYZToSRGB = mathx.Mat3{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}
