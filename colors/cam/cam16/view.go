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

package cam16

import (
	"math"

	"cogentcore.org/material/base/mathx"
	"cogentcore.org/material/colors/cam/cie"
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. A View is immutable once
// created by [NewView]; all of its derived constants are computed up front
// and exposed through accessor methods. [StdView] holds the standard
// conditions that all of the functions without an explicit View use.
type View struct {
	whitePoint        mathx.Vec3
	adaptingLuminance float64
	bgLstar           float64
	surround          float64
	discounting       bool

	n      float64
	aw     float64
	nbb    float64
	ncb    float64
	c      float64
	nc     float64
	rgbD   mathx.Vec3
	fl     float64
	flRoot float64
	z      float64
}

// StdView is the standard viewing conditions: an sRGB display
// under D65 white in 200 lux of ambient light, viewed against a
// background of L* 50 in an average surround, without discounting
// the illuminant.
var StdView = NewView(cie.WhiteD65, 200, 50, 2, false)

// LuxToAdaptingLuminance converts an ambient light level in lux into the
// adapting luminance in cd/m^2 of a surface with L* 50 in that light.
func LuxToAdaptingLuminance(lux float64) float64 {
	return (lux / math.Pi) * (cie.YFromLstar(50) / 100)
}

// NewView returns new viewing conditions computed from the given physical
// parameters:
//   - whitePoint is the 100-based XYZ of the white point, typically [cie.WhiteD65].
//   - lux is the ambient light strength.
//   - bgLstar is the L* of the background surrounding the color. It is
//     raised to a minimum of 0.1, since a pure black background is non-physical
//     and leads to infinities.
//   - surround is the brightness of the entire environment, from 0 (dark,
//     like a movie theater) through 1 (dim) to 2 (average); it is clamped to [0, 2].
//   - discounting is whether the eyes have fully adapted to the illuminant.
func NewView(whitePoint mathx.Vec3, lux, bgLstar, surround float64, discounting bool) *View {
	return NewViewAdapting(whitePoint, LuxToAdaptingLuminance(lux), bgLstar, surround, discounting)
}

// NewViewAdapting is like [NewView], but takes the adapting luminance
// in cd/m^2 directly instead of an ambient light level in lux.
func NewViewAdapting(whitePoint mathx.Vec3, adaptingLuminance, bgLstar, surround float64, discounting bool) *View {
	vw := &View{
		whitePoint:        whitePoint,
		adaptingLuminance: adaptingLuminance,
		bgLstar:           max(0.1, bgLstar),
		surround:          mathx.Clamp(surround, 0, 2),
		discounting:       discounting,
	}

	// cone responses to the white point
	rgbW := mathx.MatMul(whitePoint, XYZToCone)

	// scale surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0)
	f := 0.8 + vw.surround/10
	if f >= 0.9 {
		vw.c = mathx.Lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.c = mathx.Lerp(0.525, 0.59, (f-0.8)*10)
	}
	d := 1.0
	if !discounting {
		d = f * (1 - (1/3.6)*math.Exp((-adaptingLuminance-42)/92))
	}
	d = mathx.Clamp(d, 0, 1)
	vw.nc = f

	// 100 is used instead of the white point luminance, per Fairchild
	for i := range 3 {
		vw.rgbD[i] = d*(100/rgbW[i]) + 1 - d
	}

	k := 1 / (5*adaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	vw.fl = k4*adaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5*adaptingLuminance)
	vw.flRoot = math.Pow(vw.fl, 0.25)

	vw.n = cie.YFromLstar(vw.bgLstar) / whitePoint[1]
	vw.z = 1.48 + math.Sqrt(vw.n)
	vw.nbb = 0.725 / math.Pow(vw.n, 0.2)
	vw.ncb = vw.nbb

	var rgbA mathx.Vec3
	for i := range 3 {
		af := math.Pow(vw.fl*vw.rgbD[i]*rgbW[i]/100, 0.42)
		rgbA[i] = 400 * af / (af + 27.13)
	}
	vw.aw = (2*rgbA[0] + rgbA[1] + 0.05*rgbA[2]) * vw.nbb
	return vw
}

// WhitePoint returns the 100-based XYZ white point.
func (vw *View) WhitePoint() mathx.Vec3 { return vw.whitePoint }

// AdaptingLuminance returns the adapting luminance in cd/m^2.
func (vw *View) AdaptingLuminance() float64 { return vw.adaptingLuminance }

// BgLstar returns the L* of the background, after applying its minimum.
func (vw *View) BgLstar() float64 { return vw.bgLstar }

// Surround returns the surround, in [0, 2].
func (vw *View) Surround() float64 { return vw.surround }

// Discounting returns whether the illuminant is discounted.
func (vw *View) Discounting() bool { return vw.discounting }

// N returns the ratio of the background relative luminance
// to the white relative luminance.
func (vw *View) N() float64 { return vw.n }

// AW returns the achromatic response to the white point.
func (vw *View) AW() float64 { return vw.aw }

// NBB returns the brightness background induction factor.
func (vw *View) NBB() float64 { return vw.nbb }

// NCB returns the chromatic background induction factor.
func (vw *View) NCB() float64 { return vw.ncb }

// C returns the exponential nonlinearity.
func (vw *View) C() float64 { return vw.c }

// NC returns the chromatic induction factor.
func (vw *View) NC() float64 { return vw.nc }

// RGBD returns the cone responses to the white point,
// adjusted for discounting.
func (vw *View) RGBD() mathx.Vec3 { return vw.rgbD }

// FL returns the luminance-level adaptation factor.
func (vw *View) FL() float64 { return vw.fl }

// FLRoot returns FL to the 1/4 power.
func (vw *View) FLRoot() float64 { return vw.flRoot }

// Z returns the base exponential nonlinearity.
func (vw *View) Z() float64 { return vw.z }
