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

package matcolor

import "cogentcore.org/material/base/ordmap"

// SchemeAndroid contains the colors of the Android system color roles
// for one color scheme (ie: light or dark), as packed ARGB values.
type SchemeAndroid struct {
	ColorAccentPrimary          uint32 `json:"colorAccentPrimary"`
	ColorAccentPrimaryVariant   uint32 `json:"colorAccentPrimaryVariant"`
	ColorAccentSecondary        uint32 `json:"colorAccentSecondary"`
	ColorAccentSecondaryVariant uint32 `json:"colorAccentSecondaryVariant"`
	ColorAccentTertiary         uint32 `json:"colorAccentTertiary"`
	ColorAccentTertiaryVariant  uint32 `json:"colorAccentTertiaryVariant"`
	TextColorPrimary            uint32 `json:"textColorPrimary"`
	TextColorSecondary          uint32 `json:"textColorSecondary"`
	TextColorTertiary           uint32 `json:"textColorTertiary"`
	TextColorPrimaryInverse     uint32 `json:"textColorPrimaryInverse"`
	TextColorSecondaryInverse   uint32 `json:"textColorSecondaryInverse"`
	TextColorTertiaryInverse    uint32 `json:"textColorTertiaryInverse"`
	ColorBackground             uint32 `json:"colorBackground"`
	ColorBackgroundFloating     uint32 `json:"colorBackgroundFloating"`
	ColorSurface                uint32 `json:"colorSurface"`
	ColorSurfaceVariant         uint32 `json:"colorSurfaceVariant"`
	ColorSurfaceHighlight       uint32 `json:"colorSurfaceHighlight"`
	SurfaceHeader               uint32 `json:"surfaceHeader"`
	UnderSurface                uint32 `json:"underSurface"`
	OffState                    uint32 `json:"offState"`
	AccentSurface               uint32 `json:"accentSurface"`
	TextPrimaryOnAccent         uint32 `json:"textPrimaryOnAccent"`
	TextSecondaryOnAccent       uint32 `json:"textSecondaryOnAccent"`
	VolumeBackground            uint32 `json:"volumeBackground"`
	Scrim                       uint32 `json:"scrim"`
}

// NewLightSchemeAndroid returns the light [SchemeAndroid]
// for the given ARGB source color.
func NewLightSchemeAndroid(argb uint32) *SchemeAndroid {
	return LightAndroidFromCorePalette(NewCorePalette(argb))
}

// NewDarkSchemeAndroid returns the dark [SchemeAndroid]
// for the given ARGB source color.
func NewDarkSchemeAndroid(argb uint32) *SchemeAndroid {
	return DarkAndroidFromCorePalette(NewCorePalette(argb))
}

// NewLightContentSchemeAndroid returns the light [SchemeAndroid] for the
// given ARGB source color, based on the content core palette.
func NewLightContentSchemeAndroid(argb uint32) *SchemeAndroid {
	return LightAndroidFromCorePalette(NewContentCorePalette(argb))
}

// NewDarkContentSchemeAndroid returns the dark [SchemeAndroid] for the
// given ARGB source color, based on the content core palette.
func NewDarkContentSchemeAndroid(argb uint32) *SchemeAndroid {
	return DarkAndroidFromCorePalette(NewContentCorePalette(argb))
}

// LightAndroidFromCorePalette returns the light [SchemeAndroid]
// for the given [CorePalette].
func LightAndroidFromCorePalette(p *CorePalette) *SchemeAndroid {
	return &SchemeAndroid{
		ColorAccentPrimary:          p.A1.Tone(90),
		ColorAccentPrimaryVariant:   p.A1.Tone(40),
		ColorAccentSecondary:        p.A2.Tone(90),
		ColorAccentSecondaryVariant: p.A2.Tone(40),
		ColorAccentTertiary:         p.A3.Tone(90),
		ColorAccentTertiaryVariant:  p.A3.Tone(40),
		TextColorPrimary:            p.N1.Tone(10),
		TextColorSecondary:          p.N2.Tone(30),
		TextColorTertiary:           p.N2.Tone(50),
		TextColorPrimaryInverse:     p.N1.Tone(95),
		TextColorSecondaryInverse:   p.N1.Tone(80),
		TextColorTertiaryInverse:    p.N1.Tone(90),
		ColorBackground:             p.N1.Tone(95),
		ColorBackgroundFloating:     p.N1.Tone(98),
		ColorSurface:                p.N1.Tone(98),
		ColorSurfaceVariant:         p.N1.Tone(90),
		ColorSurfaceHighlight:       p.N1.Tone(100),
		SurfaceHeader:               p.N1.Tone(90),
		UnderSurface:                p.N1.Tone(0),
		OffState:                    p.N1.Tone(20),
		AccentSurface:               p.A2.Tone(95),
		TextPrimaryOnAccent:         p.N1.Tone(10),
		TextSecondaryOnAccent:       p.N2.Tone(30),
		VolumeBackground:            p.N1.Tone(25),
		Scrim:                       p.N1.Tone(80),
	}
}

// DarkAndroidFromCorePalette returns the dark [SchemeAndroid]
// for the given [CorePalette].
func DarkAndroidFromCorePalette(p *CorePalette) *SchemeAndroid {
	return &SchemeAndroid{
		ColorAccentPrimary:          p.A1.Tone(90),
		ColorAccentPrimaryVariant:   p.A1.Tone(70),
		ColorAccentSecondary:        p.A2.Tone(10),
		ColorAccentSecondaryVariant: p.A2.Tone(70),
		ColorAccentTertiary:         p.A3.Tone(90),
		ColorAccentTertiaryVariant:  p.A3.Tone(70),
		TextColorPrimary:            p.N1.Tone(95),
		TextColorSecondary:          p.N2.Tone(80),
		TextColorTertiary:           p.N2.Tone(60),
		TextColorPrimaryInverse:     p.N1.Tone(10),
		TextColorSecondaryInverse:   p.N1.Tone(30),
		TextColorTertiaryInverse:    p.N1.Tone(50),
		ColorBackground:             p.N1.Tone(10),
		ColorBackgroundFloating:     p.N1.Tone(10),
		ColorSurface:                p.N1.Tone(20),
		ColorSurfaceVariant:         p.N1.Tone(30),
		ColorSurfaceHighlight:       p.N1.Tone(35),
		SurfaceHeader:               p.N1.Tone(30),
		UnderSurface:                p.N1.Tone(0),
		OffState:                    p.N1.Tone(20),
		AccentSurface:               p.A2.Tone(95),
		TextPrimaryOnAccent:         p.N1.Tone(10),
		TextSecondaryOnAccent:       p.N2.Tone(30),
		VolumeBackground:            p.N1.Tone(25),
		Scrim:                       p.N1.Tone(80),
	}
}

// Roles returns the colors of the scheme keyed by role name,
// in the canonical role order.
func (s *SchemeAndroid) Roles() *ordmap.Map[string, uint32] {
	return ordmap.Make([]ordmap.KeyValue[string, uint32]{
		{Key: "colorAccentPrimary", Value: s.ColorAccentPrimary},
		{Key: "colorAccentPrimaryVariant", Value: s.ColorAccentPrimaryVariant},
		{Key: "colorAccentSecondary", Value: s.ColorAccentSecondary},
		{Key: "colorAccentSecondaryVariant", Value: s.ColorAccentSecondaryVariant},
		{Key: "colorAccentTertiary", Value: s.ColorAccentTertiary},
		{Key: "colorAccentTertiaryVariant", Value: s.ColorAccentTertiaryVariant},
		{Key: "textColorPrimary", Value: s.TextColorPrimary},
		{Key: "textColorSecondary", Value: s.TextColorSecondary},
		{Key: "textColorTertiary", Value: s.TextColorTertiary},
		{Key: "textColorPrimaryInverse", Value: s.TextColorPrimaryInverse},
		{Key: "textColorSecondaryInverse", Value: s.TextColorSecondaryInverse},
		{Key: "textColorTertiaryInverse", Value: s.TextColorTertiaryInverse},
		{Key: "colorBackground", Value: s.ColorBackground},
		{Key: "colorBackgroundFloating", Value: s.ColorBackgroundFloating},
		{Key: "colorSurface", Value: s.ColorSurface},
		{Key: "colorSurfaceVariant", Value: s.ColorSurfaceVariant},
		{Key: "colorSurfaceHighlight", Value: s.ColorSurfaceHighlight},
		{Key: "surfaceHeader", Value: s.SurfaceHeader},
		{Key: "underSurface", Value: s.UnderSurface},
		{Key: "offState", Value: s.OffState},
		{Key: "accentSurface", Value: s.AccentSurface},
		{Key: "textPrimaryOnAccent", Value: s.TextPrimaryOnAccent},
		{Key: "textSecondaryOnAccent", Value: s.TextSecondaryOnAccent},
		{Key: "volumeBackground", Value: s.VolumeBackground},
		{Key: "scrim", Value: s.Scrim},
	})
}
