// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"encoding/json"
	"testing"

	"cogentcore.org/material/colors/cam/cie"
	"cogentcore.org/material/colors/cam/hct"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seeds = []uint32{0xff4285f4, 0xff0000ff, 0xff6750a4, 0xffb3261e, 0xff00ff00, 0xff000000, 0xffffffff, 0x00679cbe, 0xfffa2bec}

func TestSchemeKnown(t *testing.T) {
	assert.Equal(t, uint32(0xff343dff), NewLightScheme(0xff0000ff).Primary)
	assert.Equal(t, uint32(0xffbec2ff), NewDarkScheme(0xff0000ff).Primary)
}

func TestSchemeCompleteness(t *testing.T) {
	for _, seed := range seeds {
		light, dark := NewLightScheme(seed), NewDarkScheme(seed)
		for _, s := range []*Scheme{light, dark, NewLightContentScheme(seed), NewDarkContentScheme(seed)} {
			roles := s.Roles()
			assert.Equal(t, 27, roles.Len())
			for _, kv := range roles.Order {
				assert.True(t, cie.IsOpaque(kv.Value), "%s of %08x", kv.Key, seed)
			}
		}
		assert.NotEqual(t, light.Primary, dark.Primary)
		assert.NotEqual(t, light.Background, dark.Background)
	}
}

func TestSchemeTones(t *testing.T) {
	seed := uint32(0xff4285f4)
	p := NewCorePalette(seed)
	light := NewLightScheme(seed)
	assert.Equal(t, p.A1.Tone(40), light.Primary)
	assert.Equal(t, p.A1.Tone(100), light.OnPrimary)
	assert.Equal(t, p.A2.Tone(90), light.SecondaryContainer)
	assert.Equal(t, p.A3.Tone(10), light.OnTertiaryContainer)
	assert.Equal(t, p.Error.Tone(40), light.Error)
	assert.Equal(t, p.Error.Tone(10), light.OnErrorContainer)
	assert.Equal(t, p.N1.Tone(99), light.Background)
	assert.Equal(t, p.N2.Tone(50), light.Outline)
	assert.Equal(t, uint32(0xff000000), light.Shadow)
	assert.Equal(t, p.A1.Tone(80), light.InversePrimary)

	dark := NewDarkScheme(seed)
	assert.Equal(t, p.A1.Tone(80), dark.Primary)
	assert.Equal(t, p.A1.Tone(20), dark.OnPrimary)
	assert.Equal(t, p.Error.Tone(80), dark.OnErrorContainer)
	assert.Equal(t, p.N1.Tone(10), dark.Surface)
	assert.Equal(t, p.N2.Tone(60), dark.Outline)
	assert.Equal(t, p.A1.Tone(40), dark.InversePrimary)

	// light text on dark surfaces and the reverse
	assert.Greater(t, hct.FromARGB(dark.OnSurface).Tone(), hct.FromARGB(dark.Surface).Tone())
	assert.Less(t, hct.FromARGB(light.OnSurface).Tone(), hct.FromARGB(light.Surface).Tone())

	assert.Empty(t, cmp.Diff(light, NewLightScheme(seed)))
	assert.Empty(t, cmp.Diff(dark, DarkFromCorePalette(NewCorePalette(seed))))
	assert.NotEmpty(t, cmp.Diff(light, NewLightContentScheme(seed)))
}

func TestSchemeJSON(t *testing.T) {
	s := NewLightScheme(0xff4285f4)
	b, err := json.Marshal(s)
	require.NoError(t, err)
	var m map[string]uint32
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Len(t, m, 27)
	for _, kv := range s.Roles().Order {
		assert.Equal(t, kv.Value, m[kv.Key], kv.Key)
	}

	rb, err := json.Marshal(s.Roles())
	require.NoError(t, err)
	assert.Contains(t, string(rb), `{"primary":`)
}

func TestSchemeAndroid(t *testing.T) {
	for _, seed := range seeds {
		for _, s := range []*SchemeAndroid{NewLightSchemeAndroid(seed), NewDarkSchemeAndroid(seed),
			NewLightContentSchemeAndroid(seed), NewDarkContentSchemeAndroid(seed)} {
			roles := s.Roles()
			assert.Equal(t, 25, roles.Len())
			for _, kv := range roles.Order {
				assert.True(t, cie.IsOpaque(kv.Value), "%s of %08x", kv.Key, seed)
			}
		}
	}

	p := NewCorePalette(0xff6750a4)
	light := LightAndroidFromCorePalette(p)
	assert.Equal(t, p.A1.Tone(90), light.ColorAccentPrimary)
	assert.Equal(t, p.A1.Tone(40), light.ColorAccentPrimaryVariant)
	assert.Equal(t, p.N1.Tone(95), light.ColorBackground)
	assert.Equal(t, p.A2.Tone(95), light.AccentSurface)
	assert.Equal(t, p.N1.Tone(80), light.Scrim)

	dark := DarkAndroidFromCorePalette(p)
	assert.Equal(t, p.A2.Tone(10), dark.ColorAccentSecondary)
	assert.Equal(t, p.A3.Tone(70), dark.ColorAccentTertiaryVariant)
	assert.Equal(t, p.N1.Tone(35), dark.ColorSurfaceHighlight)
	assert.Equal(t, p.N1.Tone(10), dark.TextColorPrimaryInverse)
	assert.NotEqual(t, light.ColorBackground, dark.ColorBackground)
	assert.Equal(t, light.VolumeBackground, dark.VolumeBackground)
}
