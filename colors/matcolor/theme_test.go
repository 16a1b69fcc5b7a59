// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"encoding/json"
	"strings"
	"testing"

	"cogentcore.org/material/base/tolassert"
	"cogentcore.org/material/colors/blend"
	"cogentcore.org/material/colors/cam/hct"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestThemeFromSourceColor(t *testing.T) {
	source := uint32(0xff4285f4)
	th := ThemeFromSourceColor(source)
	assert.Equal(t, source, th.Source)
	assert.Empty(t, cmp.Diff(NewLightScheme(source), th.Schemes.Light))
	assert.Empty(t, cmp.Diff(NewDarkScheme(source), th.Schemes.Dark))
	assert.Equal(t, NewCorePalette(source).A3.Tones(), th.Palettes.A3.Tones())
	assert.Empty(t, th.CustomColors)
}

func TestCustomColor(t *testing.T) {
	source := uint32(0xff4285f4)
	plain := CustomColor{Value: 0xff386a20, Name: "leaf"}
	g := NewCustomColor(source, plain)
	assert.Equal(t, plain, g.Color)
	assert.Equal(t, plain.Value, g.Value)
	tones := NewCorePalette(plain.Value).A1
	assert.Equal(t, NewColorGroupLight(tones), g.Light)
	assert.Equal(t, NewColorGroupDark(tones), g.Dark)
	assert.Equal(t, tones.Tone(40), g.Light.Color)
	assert.Equal(t, tones.Tone(30), g.Dark.ColorContainer)

	blended := plain
	blended.Blend = true
	bg := NewCustomColor(source, blended)
	assert.Equal(t, blend.Harmonize(plain.Value, source), bg.Value)
	assert.NotEqual(t, g.Light.Color, bg.Light.Color)

	th := ThemeFromSourceColor(source, plain, blended)
	require.Len(t, th.CustomColors, 2)
	assert.Equal(t, g, th.CustomColors[0])
	assert.Equal(t, bg, th.CustomColors[1])
}

func TestThemeFromColors(t *testing.T) {
	_, err := ThemeFromColors(Key{Secondary: 0xff00ff00})
	assert.Error(t, err)

	primary := uint32(0xff0000ff)
	only, err := ThemeFromColors(Key{Primary: primary})
	require.NoError(t, err)
	assert.Equal(t, primary, only.Source)

	// the primary palette is built from the primary color itself
	ph := hct.FromARGB(primary)
	assert.Equal(t, ph.Chroma(), only.Palettes.A1.Chroma())

	// a zero secondary color is still a valid color
	zero, err := ThemeFromColors(Key{Primary: primary, Secondary: 0})
	require.NoError(t, err)
	assert.Equal(t, only.Palettes.A3.Tones(), zero.Palettes.A3.Tones())
	assert.Equal(t, TonalPaletteFromARGB(0).Tones(), zero.Palettes.A2.Tones())
	assert.NotEqual(t, only.Palettes.A2.Tones(), zero.Palettes.A2.Tones())

	green := uint32(0xff00ff00)
	multi, err := ThemeFromColors(Key{Primary: primary, Secondary: green, NeutralVariant: 0xff8a8a70})
	require.NoError(t, err)
	gh := hct.FromARGB(green)
	tolassert.Equal(t, gh.Hue(), multi.Palettes.A2.Hue())
	assert.Equal(t, gh.Chroma(), multi.Palettes.A2.Chroma())
	assert.Equal(t, multi.Palettes.A2.Tone(40), multi.Schemes.Light.Secondary)
	assert.Equal(t, multi.Palettes.N2.Tone(50), multi.Schemes.Light.Outline)
	assert.Equal(t, only.Palettes.N1.Tones(), multi.Palettes.N1.Tones())
}

func TestPerfectColors(t *testing.T) {
	_, err := PerfectColors(Key{Tertiary: 0xff00ff00})
	assert.Error(t, err)

	primary := uint32(0xff6750a4)
	p := NewCorePalette(primary)
	key, err := PerfectColors(Key{Primary: primary, Secondary: 0, NeutralVariant: 0xff777777})
	require.NoError(t, err)
	assert.Equal(t, Key{
		Primary:        primary,
		Secondary:      0,
		Tertiary:       p.A3.Tone(60),
		Neutral:        p.N1.Tone(60),
		NeutralVariant: 0xff777777,
	}, key)

	hex := key.Hex()
	assert.Equal(t, []string{"primary", "secondary", "tertiary", "neutral", "neutralVariant"}, hex.Keys())
	assert.Equal(t, "#6750a4", hex.ValueByKey("primary"))
	assert.Equal(t, "#000000", hex.ValueByKey("secondary"))
}

func TestThemeDoc(t *testing.T) {
	th := ThemeFromSourceColor(0xff4285f4, CustomColor{Value: 0xff386a20, Name: "leaf", Blend: true})
	d := th.Doc()
	assert.Equal(t, "#4285f4", d.Source)
	assert.Equal(t, 27, d.Schemes["light"].Len())
	assert.Equal(t, "primary", d.Schemes["dark"].Keys()[0])
	assert.Equal(t, []string{"primary", "secondary", "tertiary", "neutral", "neutralVariant", "error"}, d.Palettes.Keys())
	pal := d.Palettes.ValueByKey("primary")
	assert.Equal(t, 16, pal.Len())
	assert.Equal(t, "100", pal.Keys()[0])
	assert.Equal(t, "#ffffff", pal.ValueByKey("100"))
	assert.Equal(t, "#000000", pal.ValueByKey("0"))
	require.Len(t, d.CustomColors, 1)
	assert.Equal(t, "leaf", d.CustomColors[0].Name)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, `{"source":"#4285f4","schemes":{"dark":{"primary":"#`))
	assert.Less(t, strings.Index(s, `"onPrimary"`), strings.Index(s, `"inversePrimary"`))
	assert.Less(t, strings.Index(s, `"palettes":{"primary":{"100":"#ffffff","99":`), strings.Index(s, `"customColors"`))

	y, err := yaml.Marshal(d)
	require.NoError(t, err)
	var back map[string]any
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, "#4285f4", back["source"])

	few := th.Doc(0, 50, 100)
	assert.Equal(t, []string{"0", "50", "100"}, few.Palettes.ValueByKey("error").Keys())
}
