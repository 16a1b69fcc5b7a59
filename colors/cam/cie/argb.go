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

package cie

import "cogentcore.org/material/base/mathx"

// ARGB colors are packed into a uint32 as 0xAARRGGBB:
// bits 24-31 alpha, 16-23 red, 8-15 green, and 0-7 blue.

// ARGBFromRGB returns the opaque ARGB color for the given 8-bit
// red, green, and blue components. Components outside of 0-255
// are masked to their low 8 bits.
func ARGBFromRGB(r, g, b int) uint32 {
	return 0xff000000 | uint32(r&0xff)<<16 | uint32(g&0xff)<<8 | uint32(b&0xff)
}

// ARGBFromLinRGB returns the opaque ARGB color for the given
// linear RGB components, each on a 0-100 scale.
func ARGBFromLinRGB(lin mathx.Vec3) uint32 {
	return ARGBFromRGB(Delinearized(lin[0]), Delinearized(lin[1]), Delinearized(lin[2]))
}

// AlphaFromARGB returns the alpha component of the given ARGB color.
func AlphaFromARGB(argb uint32) int {
	return int(argb>>24) & 0xff
}

// RedFromARGB returns the red component of the given ARGB color.
func RedFromARGB(argb uint32) int {
	return int(argb>>16) & 0xff
}

// GreenFromARGB returns the green component of the given ARGB color.
func GreenFromARGB(argb uint32) int {
	return int(argb>>8) & 0xff
}

// BlueFromARGB returns the blue component of the given ARGB color.
func BlueFromARGB(argb uint32) int {
	return int(argb) & 0xff
}

// IsOpaque returns whether the given ARGB color has a full alpha.
func IsOpaque(argb uint32) bool {
	return AlphaFromARGB(argb) == 255
}

// LinRGBFromARGB returns the linear RGB components of the
// given ARGB color, each on a 0-100 scale.
func LinRGBFromARGB(argb uint32) mathx.Vec3 {
	return mathx.Vec3{
		Linearized(RedFromARGB(argb)),
		Linearized(GreenFromARGB(argb)),
		Linearized(BlueFromARGB(argb)),
	}
}

// ARGBFromXYZ returns the opaque ARGB color for the given
// 100-based XYZ coordinates, clamping out-of-gamut results.
func ARGBFromXYZ(x, y, z float64) uint32 {
	return ARGBFromLinRGB(mathx.MatMul(mathx.Vec3{x, y, z}, XYZToSRGB))
}

// XYZFromARGB returns the 100-based XYZ coordinates of the given ARGB color.
func XYZFromARGB(argb uint32) mathx.Vec3 {
	return mathx.MatMul(LinRGBFromARGB(argb), SRGBToXYZ)
}

// ARGBFromLab returns the opaque ARGB color for the given
// L*a*b* coordinates under the D65 white point.
func ARGBFromLab(l, a, b float64) uint32 {
	x, y, z := LABToXYZ(l, a, b)
	return ARGBFromXYZ(x, y, z)
}

// LabFromARGB returns the L*a*b* coordinates of the given ARGB color.
func LabFromARGB(argb uint32) (l, a, b float64) {
	xyz := XYZFromARGB(argb)
	return XYZToLAB(xyz[0], xyz[1], xyz[2])
}

// ARGBFromLstar returns the gray ARGB color with the given L*.
func ARGBFromLstar(lstar float64) uint32 {
	c := Delinearized(YFromLstar(lstar))
	return ARGBFromRGB(c, c, c)
}

// LstarFromARGB returns the L* (tone) of the given ARGB color.
func LstarFromARGB(argb uint32) float64 {
	return LstarFromY(XYZFromARGB(argb)[1])
}
