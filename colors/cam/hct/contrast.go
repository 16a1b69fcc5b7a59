// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"math"

	"cogentcore.org/material/base/mathx"
	"cogentcore.org/material/colors/cam/cie"
)

// ContrastRatio returns the contrast ratio between the given two ARGB colors.
// The contrast ratio will be between 1 and 21.
func ContrastRatio(a, b uint32) float64 {
	return ToneContrastRatio(cie.LstarFromARGB(a), cie.LstarFromARGB(b))
}

// ToneContrastRatio returns the contrast ratio between the given two tones.
// The contrast ratio will be between 1 and 21, and the tones should be
// between 0 and 100 and will be clamped to such.
func ToneContrastRatio(a, b float64) float64 {
	a = mathx.Clamp(a, 0, 100)
	b = mathx.Clamp(b, 0, 100)
	return ContrastRatioOfYs(cie.YFromLstar(a), cie.YFromLstar(b))
}

// ContrastColor returns the ARGB color with the hue and chroma of the given
// color that meets the given contrast ratio against it. It returns 0, false if
// the given ratio can not be achieved with the given color. The ratio must be between
// 1 and 21. If the tone of the given color is greater than 50, it tries darker tones first,
// and otherwise it tries lighter tones first.
func ContrastColor(argb uint32, ratio float64) (uint32, bool) {
	h := FromARGB(argb)
	ct, ok := ContrastTone(h.tone, ratio)
	if !ok {
		return 0, false
	}
	return h.WithTone(ct).argb, true
}

// ContrastColorUnsafe is like [ContrastColor], but if the given ratio can
// not be achieved, it returns the color that would result in the highest
// contrast ratio. This function is unsafe because the returned value
// may not satisfy the ratio requirement.
func ContrastColorUnsafe(argb uint32, ratio float64) uint32 {
	h := FromARGB(argb)
	return h.WithTone(ContrastToneUnsafe(h.tone, ratio)).argb
}

// ContrastTone returns the tone that will ensure that the given contrast ratio
// between the given tone and the resulting tone is met. It returns -1, false if
// the given ratio can not be achieved with the given tone. The tone must be between 0
// and 100 and the ratio must be between 1 and 21. If the given tone is greater than 50,
// it tries darker tones first, and otherwise it tries lighter tones first.
func ContrastTone(tone, ratio float64) (float64, bool) {
	if tone > 50 {
		if d, ok := ContrastToneDarker(tone, ratio); ok {
			return d, true
		}
		if l, ok := ContrastToneLighter(tone, ratio); ok {
			return l, true
		}
		return -1, false
	}
	if l, ok := ContrastToneLighter(tone, ratio); ok {
		return l, true
	}
	if d, ok := ContrastToneDarker(tone, ratio); ok {
		return d, true
	}
	return -1, false
}

// ContrastToneUnsafe returns the tone that will ensure that the given contrast ratio
// between the given tone and the resulting tone is met. If the given ratio can
// not be achieved with the given tone, it returns the tone that would result in
// the highest contrast ratio (0 or 100). This function is unsafe because the returned
// value may not satisfy the ratio requirement.
func ContrastToneUnsafe(tone, ratio float64) float64 {
	if ct, ok := ContrastTone(tone, ratio); ok {
		return ct
	}
	if ToneContrastRatio(tone, 0) > ToneContrastRatio(tone, 100) {
		return 0
	}
	return 100
}

// ContrastToneLighter returns a tone greater than or equal to the given tone
// that ensures that given contrast ratio between the two tones is met.
// It returns -1, false if the given ratio can not be achieved with the
// given tone. The tone must be between 0 and 100 and the ratio must be
// between 1 and 21.
func ContrastToneLighter(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	darkY := cie.YFromLstar(tone)
	lightY := ratio*(darkY+5) - 5
	realContrast := ContrastRatioOfYs(lightY, darkY)
	delta := math.Abs(realContrast - ratio)
	if realContrast < ratio && delta > 0.04 {
		return -1, false
	}
	// lighten slightly so that gamut mapping still meets the ratio
	ret := cie.LstarFromY(lightY) + 0.4
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// ContrastToneDarker returns a tone less than or equal to the given tone
// that ensures that given contrast ratio between the two tones is met.
// It returns -1, false if the given ratio can not be achieved with the
// given tone. The tone must be between 0 and 100 and the ratio must be
// between 1 and 21.
func ContrastToneDarker(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	lightY := cie.YFromLstar(tone)
	darkY := (lightY+5)/ratio - 5
	realContrast := ContrastRatioOfYs(lightY, darkY)
	delta := math.Abs(realContrast - ratio)
	if realContrast < ratio && delta > 0.04 {
		return -1, false
	}
	// darken slightly so that gamut mapping still meets the ratio
	ret := cie.LstarFromY(darkY) - 0.4
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// ContrastToneLighterUnsafe is like [ContrastToneLighter], but returns
// 100 if the given ratio can not be achieved.
func ContrastToneLighterUnsafe(tone, ratio float64) float64 {
	if safe, ok := ContrastToneLighter(tone, ratio); ok {
		return safe
	}
	return 100
}

// ContrastToneDarkerUnsafe is like [ContrastToneDarker], but returns
// 0 if the given ratio can not be achieved.
func ContrastToneDarkerUnsafe(tone, ratio float64) float64 {
	if safe, ok := ContrastToneDarker(tone, ratio); ok {
		return safe
	}
	return 0
}

// ContrastRatioOfYs returns the contrast ratio of two XYZ Y values.
func ContrastRatioOfYs(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 5) / (darker + 5)
}
