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

// Package mathx provides the float64 scalar, angle, and matrix helpers
// used throughout the color science packages.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec3 is a three component vector, used for linear RGB, XYZ,
// and cone response triplets.
type Vec3 [3]float64

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// Signum returns -1 for negative numbers, 0 for 0, and 1 for positive numbers.
func Signum(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x == 0:
		return 0
	default:
		return 1
	}
}

// Lerp returns the linear interpolation between start and stop
// by the given amount: start when amount is 0, stop when it is 1.
func Lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

// Clamp returns input restricted to the [min, max] range.
func Clamp[T constraints.Integer | constraints.Float](input, min, max T) T {
	if input < min {
		return min
	}
	if input > max {
		return max
	}
	return input
}

// SanitizeDegreesInt returns degrees wrapped into [0, 360).
func SanitizeDegreesInt(degrees int) int {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// SanitizeDegrees returns degrees wrapped into [0, 360).
func SanitizeDegrees(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	if degrees >= 360 {
		// math.Mod of a tiny negative number can round up to 360
		degrees = 0
	}
	return degrees
}

// SanitizeRadians returns angle wrapped into [0, 2π).
func SanitizeRadians(angle float64) float64 {
	return math.Mod(angle+math.Pi*8, math.Pi*2)
}

// RotationDirection returns the sign of the direction (1 or -1)
// of the shortest rotation from the from angle to the to angle,
// both in degrees.
func RotationDirection(from, to float64) float64 {
	if SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}

// DifferenceDegrees returns the unsigned distance between two angles
// in degrees, in [0, 180].
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// MatMul multiplies the row vector v by the matrix m,
// returning m * v treating v as a column.
func MatMul(v Vec3, m Mat3) Vec3 {
	return Vec3{
		v[0]*m[0][0] + v[1]*m[0][1] + v[2]*m[0][2],
		v[0]*m[1][0] + v[1]*m[1][1] + v[2]*m[1][2],
		v[0]*m[2][0] + v[1]*m[2][1] + v[2]*m[2][2],
	}
}

// Lerp returns the point t of the way from v to o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v[0] + (o[0]-v[0])*t,
		v[1] + (o[1]-v[1])*t,
		v[2] + (o[2]-v[2])*t,
	}
}

// Midpoint returns the point halfway between v and o.
func (v Vec3) Midpoint(o Vec3) Vec3 {
	return Vec3{(v[0] + o[0]) / 2, (v[1] + o[1]) / 2, (v[2] + o[2]) / 2}
}
