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

// Package cam16 implements the CAM16 color appearance model and its
// CAM16-UCS uniform color space, under configurable viewing conditions.
package cam16

import (
	"math"

	"cogentcore.org/material/base/mathx"
	"cogentcore.org/material/colors/cam/cie"
)

// XYZToCone converts 100-based XYZ into CAM16 cone responses.
var XYZToCone = mathx.Mat3{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

// ConeToXYZ converts CAM16 cone responses into 100-based XYZ.
var ConeToXYZ = mathx.Mat3{
	{1.86206786, -1.01125463, 0.14918677},
	{0.38752654, 0.62144744, -0.00897398},
	{-0.0158415, -0.03412294, 1.04996444},
}

// CAM represents a point in the CAM16 color model along the perceived
// hue, colorfulness, and brightness dimensions, similar to HSL but much
// more well-calibrated to actual human subjective judgments. All of the
// fields are computed together by the constructor functions, so a CAM
// should be treated as a read-only value.
type CAM struct {

	// Hue (h) is the spectral identity of the color
	// (red, green, blue etc) in degrees, in [0, 360).
	Hue float64

	// Chroma (C) is the colorfulness of the color relative to the
	// brightness of white. Grayscale colors have no chroma.
	Chroma float64

	// Lightness (J) is the brightness relative to a reference white.
	Lightness float64

	// Brightness (Q) is the apparent amount of light from the color,
	// which is not a simple function of actual light energy emitted.
	Brightness float64

	// Colorfulness (M) is the absolute chromatic intensity.
	Colorfulness float64

	// Saturation (s) is the colorfulness relative to brightness.
	Saturation float64

	// JStar is the CAM16-UCS lightness.
	JStar float64

	// AStar is the CAM16-UCS red-green coordinate.
	AStar float64

	// BStar is the CAM16-UCS yellow-blue coordinate.
	BStar float64
}

// FromARGB returns the CAM of the given ARGB color under [StdView].
func FromARGB(argb uint32) CAM {
	return FromARGBView(argb, StdView)
}

// FromARGBView returns the CAM of the given ARGB color
// under the given viewing conditions.
func FromARGBView(argb uint32, vw *View) CAM {
	xyz := cie.XYZFromARGB(argb)
	return FromXYZView(xyz[0], xyz[1], xyz[2], vw)
}

// FromXYZView returns the CAM of the given 100-based XYZ coordinates
// under the given viewing conditions.
func FromXYZView(x, y, z float64, vw *View) CAM {
	rgbC := mathx.MatMul(mathx.Vec3{x, y, z}, XYZToCone)
	var rgbA mathx.Vec3
	for i := range 3 {
		d := vw.rgbD[i] * rgbC[i]
		af := math.Pow(vw.fl*math.Abs(d)/100, 0.42)
		rgbA[i] = mathx.Signum(d) * 400 * af / (af + 27.13)
	}
	rA, gA, bA := rgbA[0], rgbA[1], rgbA[2]

	// redness-greenness and yellowness-blueness
	a := (11*rA - 12*gA + bA) / 11
	b := (rA + gA - 2*bA) / 9
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	hue := mathx.SanitizeDegrees(mathx.RadToDeg(math.Atan2(b, a)))

	ac := p2 * vw.nbb
	j := 100 * math.Pow(ac/vw.aw, vw.c*vw.z)

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(mathx.DegToRad(huePrime)+2) + 3.8)
	p1 := 50000.0 / 13 * eHue * vw.nc * vw.ncb
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.n), 0.73)

	c := alpha * math.Sqrt(j/100)
	return newCAM(hue, c, j, alpha, vw)
}

// FromJCH returns the CAM with the given lightness (j), chroma (c),
// and hue (h) under [StdView].
func FromJCH(j, c, h float64) CAM {
	return FromJCHView(j, c, h, StdView)
}

// FromJCHView returns the CAM with the given lightness (j), chroma (c),
// and hue (h) under the given viewing conditions.
func FromJCHView(j, c, h float64, vw *View) CAM {
	alpha := 0.0
	if j != 0 {
		alpha = c / math.Sqrt(j/100)
	}
	return newCAM(h, c, j, alpha, vw)
}

// newCAM computes all of the derived CAM fields.
func newCAM(hue, chroma, j, alpha float64, vw *View) CAM {
	cam := CAM{Hue: hue, Chroma: chroma, Lightness: j}
	cam.Brightness = 4 / vw.c * math.Sqrt(j/100) * (vw.aw + 4) * vw.flRoot
	cam.Colorfulness = chroma * vw.flRoot
	cam.Saturation = 50 * math.Sqrt(alpha*vw.c/(vw.aw+4))

	hr := mathx.DegToRad(hue)
	mstar := math.Log1p(0.0228*cam.Colorfulness) / 0.0228
	cam.JStar = (1 + 100*0.007) * j / (1 + 0.007*j)
	cam.AStar = mstar * math.Cos(hr)
	cam.BStar = mstar * math.Sin(hr)
	return cam
}

// FromUCS returns the CAM with the given CAM16-UCS coordinates
// under [StdView].
func FromUCS(jstar, astar, bstar float64) CAM {
	return FromUCSView(jstar, astar, bstar, StdView)
}

// FromUCSView returns the CAM with the given CAM16-UCS coordinates
// under the given viewing conditions.
func FromUCSView(jstar, astar, bstar float64, vw *View) CAM {
	m := math.Hypot(astar, bstar)
	M := math.Expm1(m*0.0228) / 0.0228
	c := M / vw.flRoot
	h := mathx.SanitizeDegrees(mathx.RadToDeg(math.Atan2(bstar, astar)))
	j := jstar / (1 - (jstar-100)*0.007)
	return FromJCHView(j, c, h, vw)
}

// ARGB returns the ARGB color of the CAM under [StdView].
func (cam CAM) ARGB() uint32 {
	return cam.Viewed(StdView)
}

// Viewed returns the ARGB color of the CAM under the given viewing
// conditions. Colors outside of the sRGB gamut are clamped.
func (cam CAM) Viewed(vw *View) uint32 {
	xyz := cam.XYZView(vw)
	return cie.ARGBFromXYZ(xyz[0], xyz[1], xyz[2])
}

// RGBA implements the [color.Color] interface.
func (cam CAM) RGBA() (r, g, b, a uint32) {
	argb := cam.ARGB()
	r = uint32(cie.RedFromARGB(argb)) * 0x101
	g = uint32(cie.GreenFromARGB(argb)) * 0x101
	b = uint32(cie.BlueFromARGB(argb)) * 0x101
	a = 0xffff
	return
}

// XYZView returns the 100-based XYZ coordinates of the CAM
// under the given viewing conditions.
func (cam CAM) XYZView(vw *View) mathx.Vec3 {
	alpha := 0.0
	if cam.Chroma != 0 && cam.Lightness != 0 {
		alpha = cam.Chroma / math.Sqrt(cam.Lightness/100)
	}
	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vw.n), 0.73), 1/0.9)
	hr := mathx.DegToRad(cam.Hue)

	eHue := 0.25 * (math.Cos(hr+2) + 3.8)
	ac := vw.aw * math.Pow(cam.Lightness/100, 1/vw.c/vw.z)
	p1 := eHue * (50000.0 / 13) * vw.nc * vw.ncb
	p2 := ac / vw.nbb

	hSin, hCos := math.Sincos(hr)
	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rgbA := mathx.Vec3{
		(460*p2 + 451*a + 288*b) / 1403,
		(460*p2 - 891*a - 261*b) / 1403,
		(460*p2 - 220*a - 6300*b) / 1403,
	}
	var rgbF mathx.Vec3
	for i, ca := range rgbA {
		base := max(0, 27.13*math.Abs(ca)/(400-math.Abs(ca)))
		rgbF[i] = mathx.Signum(ca) * (100 / vw.fl) * math.Pow(base, 1/0.42) / vw.rgbD[i]
	}
	return mathx.MatMul(rgbF, ConeToXYZ)
}

// Distance returns the perceptual distance between two colors,
// based on the Euclidean distance of their CAM16-UCS coordinates.
func (cam CAM) Distance(other CAM) float64 {
	dJ := cam.JStar - other.JStar
	dA := cam.AStar - other.AStar
	dB := cam.BStar - other.BStar
	dEPrime := math.Sqrt(dJ*dJ + dA*dA + dB*dB)
	return 1.41 * math.Pow(dEPrime, 0.63)
}
