// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"testing"

	"cogentcore.org/material/base/tolassert"
	"cogentcore.org/material/colors/cam/cie"
	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	blue := uint32(0xff0000ff)
	bt := cie.LstarFromARGB(blue)
	tolassert.EqualTol(t, bt+30, cie.LstarFromARGB(Lighten(blue, 30)), 0.5)
	tolassert.EqualTol(t, bt-30, cie.LstarFromARGB(Darken(blue, 30)), 0.5)
	tolassert.EqualTol(t, bt+15, cie.LstarFromARGB(Highlight(blue, 15)), 0.5)
	tolassert.EqualTol(t, bt-15, cie.LstarFromARGB(Samelight(blue, 15)), 0.5)

	light := uint32(0xffb259cb)
	lt := cie.LstarFromARGB(light)
	tolassert.EqualTol(t, lt-18, cie.LstarFromARGB(Highlight(light, 18)), 0.5)
	tolassert.EqualTol(t, lt+18, cie.LstarFromARGB(Samelight(light, 18)), 0.5)

	purple := uint32(0xff7023ce)
	pc := FromARGB(purple).Chroma()
	tolassert.EqualTol(t, pc-43, FromARGB(Desaturate(purple, 43)).Chroma(), 1)
	assert.LessOrEqual(t, FromARGB(Saturate(purple, 16)).Chroma(), pc+16+1)

	teal := uint32(0xff1e5574)
	th := FromARGB(teal).Hue()
	tolassert.EqualTol(t, th+91, FromARGB(Spin(teal, 91)).Hue(), 2)

	assert.Equal(t, 80.0, MinHueDistance(240, 320))
	assert.Equal(t, -80.0, MinHueDistance(320, 240))
	assert.Equal(t, 46.0, MinHueDistance(320, 6))
	assert.Equal(t, -46.0, MinHueDistance(6, 320))

	c := Blend(50, 0xffffffff, 0xff000000)
	tolassert.EqualTol(t, 50, cie.LstarFromARGB(c), 0.5)
	assert.Equal(t, 0xff, cie.AlphaFromARGB(c))
	assert.Equal(t, uint32(0xff127fcd), Blend(100, 0xff127fcd, 0xffb259cb))
	assert.Equal(t, uint32(0xffb259cb), Blend(0, 0xff127fcd, 0xffb259cb))
	assert.Equal(t, 0x80, cie.AlphaFromARGB(Blend(50, 0xff777777, 0x00777777)))

	assert.False(t, IsLight(0xff11265b))
	assert.True(t, IsLight(light))
	assert.True(t, IsDark(0xff11265b))
	assert.False(t, IsDark(light))
}

func TestToneContrastRatio(t *testing.T) {
	tolassert.Equal(t, 21, ToneContrastRatio(0, 100))
	tolassert.Equal(t, 21, ToneContrastRatio(100, 0))
	tolassert.Equal(t, 1, ToneContrastRatio(50, 50))
	tolassert.Equal(t, 21, ToneContrastRatio(-20, 150))
	tolassert.Equal(t, 21, ContrastRatio(0xff000000, 0xffffffff))
	tolassert.Equal(t, 1.05, ContrastRatioOfYs(0, 0.25))
}

func TestContrastTone(t *testing.T) {
	for _, tone := range []float64{0, 10, 30, 50, 70, 90, 100} {
		ct, ok := ContrastTone(tone, 4.5)
		if !ok {
			continue
		}
		assert.GreaterOrEqual(t, ToneContrastRatio(tone, ct), 4.5-0.04, "tone %g", tone)
	}

	l, ok := ContrastToneLighter(20, 3)
	assert.True(t, ok)
	assert.Greater(t, l, 20.0)
	d, ok := ContrastToneDarker(80, 3)
	assert.True(t, ok)
	assert.Less(t, d, 80.0)

	_, ok = ContrastToneLighter(90, 7)
	assert.False(t, ok)
	assert.Equal(t, 100.0, ContrastToneLighterUnsafe(90, 7))
	_, ok = ContrastToneDarker(10, 7)
	assert.False(t, ok)
	assert.Equal(t, 0.0, ContrastToneDarkerUnsafe(10, 7))
	_, ok = ContrastToneLighter(-1, 2)
	assert.False(t, ok)

	// 50 can't reach 21 in either direction
	_, ok = ContrastTone(50, 21)
	assert.False(t, ok)
	assert.Equal(t, 0.0, ContrastToneUnsafe(60, 21))
	assert.Equal(t, 100.0, ContrastToneUnsafe(40, 21))

	c, ok := ContrastColor(0xff6750a4, 4.5)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, ContrastRatio(0xff6750a4, c), 4.5-0.1)
	_, ok = ContrastColor(0xff777777, 21)
	assert.False(t, ok)
	assert.NotZero(t, ContrastColorUnsafe(0xff777777, 21))
}
