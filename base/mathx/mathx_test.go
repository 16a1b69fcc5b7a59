// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignum(t *testing.T) {
	assert.Equal(t, -1.0, Signum(-0.3))
	assert.Equal(t, 0.0, Signum(0))
	assert.Equal(t, 1.0, Signum(12))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 255))
	assert.Equal(t, 255, Clamp(300, 0, 255))
	assert.Equal(t, 42.5, Clamp(42.5, 0, 100))
	assert.Equal(t, 100.0, Clamp(100.1, 0, 100))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 2.0, Lerp(2, 4, 0))
	assert.Equal(t, 4.0, Lerp(2, 4, 1))
	assert.Equal(t, 3.0, Lerp(2, 4, 0.5))
}

func TestSanitizeDegrees(t *testing.T) {
	assert.Equal(t, 0, SanitizeDegreesInt(360))
	assert.Equal(t, 330, SanitizeDegreesInt(-30))
	assert.Equal(t, 15, SanitizeDegreesInt(735))

	assert.Equal(t, 0.0, SanitizeDegrees(360))
	assert.Equal(t, 330.0, SanitizeDegrees(-30))
	assert.InDelta(t, 15.5, SanitizeDegrees(735.5), 1e-9)
	d := SanitizeDegrees(-1e-15)
	assert.True(t, d >= 0 && d < 360)

	r := SanitizeRadians(-math.Pi / 2)
	assert.InDelta(t, 3*math.Pi/2, r, 1e-9)
}

func TestDegrees(t *testing.T) {
	assert.Equal(t, 1.0, RotationDirection(10, 50))
	assert.Equal(t, -1.0, RotationDirection(50, 10))
	assert.Equal(t, 1.0, RotationDirection(350, 10))
	assert.Equal(t, -1.0, RotationDirection(10, 350))

	assert.Equal(t, 40.0, DifferenceDegrees(10, 50))
	assert.Equal(t, 20.0, DifferenceDegrees(350, 10))
	assert.Equal(t, 180.0, DifferenceDegrees(0, 180))

	assert.InDelta(t, math.Pi, DegToRad(180), 1e-12)
	assert.InDelta(t, 90, RadToDeg(math.Pi/2), 1e-12)
}

func TestMatMul(t *testing.T) {
	id := Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	v := Vec3{0.25, 0.5, 0.75}
	assert.Equal(t, v, MatMul(v, id))

	m := Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Equal(t, Vec3{14, 32, 50}, MatMul(Vec3{1, 2, 3}, m))

	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}
	assert.Equal(t, Vec3{5, 10, 15}, a.Midpoint(b))
	assert.Equal(t, Vec3{2.5, 5, 7.5}, a.Lerp(b, 0.25))
}
