// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"testing"

	"cogentcore.org/material/base/mathx"
	"cogentcore.org/material/base/tolassert"
	"cogentcore.org/material/colors/cam/hct"
	"github.com/stretchr/testify/assert"
)

func TestTonalPalette(t *testing.T) {
	for _, c := range []uint32{0xff4285f4, 0xff6750a4, 0xffb3261e, 0xff000000, 0xffffffff} {
		tp := TonalPaletteFromARGB(c)
		h := hct.FromARGB(c)
		assert.Equal(t, h.Hue(), tp.Hue())
		assert.Equal(t, h.Chroma(), tp.Chroma())
		for tone := 0; tone <= 100; tone++ {
			assert.Equal(t, hct.New(h.Hue(), h.Chroma(), float64(tone)).ARGB(), tp.Tone(tone))
		}
	}

	tp := NewTonalPalette(270, 36)
	assert.Equal(t, uint32(0xff000000), tp.Tone(0))
	assert.Equal(t, uint32(0xffffffff), tp.Tone(100))
	assert.Equal(t, tp.Tone(50), tp.Tone(50))

	tones := tp.Tones()
	assert.Len(t, tones, len(StandardTones))
	assert.Equal(t, tp.Tone(40), tones[40])
	assert.Equal(t, map[int]uint32{10: tp.Tone(10), 90: tp.Tone(90)}, tp.Tones(10, 90))

	// separate palettes with the same hue and chroma agree
	assert.Equal(t, tp.Tones(), NewTonalPalette(270, 36).Tones())
}

func TestCorePalette(t *testing.T) {
	seed := uint32(0x00679cbe)
	h := hct.FromARGB(seed)
	p := NewCorePalette(seed)

	// secondary is derived from the hue of the seed
	sec := NewTonalPalette(h.Hue(), 16)
	for tone := 0; tone <= 100; tone++ {
		assert.Equal(t, sec.Tone(tone), p.A2.Tone(tone), "tone %d", tone)
	}

	tolassert.Equal(t, h.Hue(), p.A1.Hue())
	assert.Equal(t, max(48, h.Chroma()), p.A1.Chroma())
	tolassert.Equal(t, mathx.SanitizeDegrees(h.Hue()+60), p.A3.Hue())
	assert.Equal(t, 24.0, p.A3.Chroma())
	assert.Equal(t, 4.0, p.N1.Chroma())
	assert.Equal(t, 8.0, p.N2.Chroma())
	assert.Equal(t, 25.0, p.Error.Hue())
	assert.Equal(t, 84.0, p.Error.Chroma())

	// high chroma seeds keep their chroma for the primary palette
	blue := hct.FromARGB(0xff0000ff)
	assert.Equal(t, blue.Chroma(), NewCorePalette(0xff0000ff).A1.Chroma())

	// the tertiary hue wraps around
	magenta := hct.FromARGB(0xffff00ff)
	assert.Greater(t, magenta.Hue()+60, 360.0)
	for _, mp := range []*CorePalette{NewCorePalette(0xffff00ff), NewContentCorePalette(0xffff00ff)} {
		tolassert.Equal(t, magenta.Hue()+60-360, mp.A3.Hue())
		assert.Less(t, mp.A3.Hue(), 360.0)
	}
}

func TestContentCorePalette(t *testing.T) {
	h := hct.FromARGB(0xff0000ff)
	p := NewContentCorePalette(0xff0000ff)
	assert.Equal(t, h.Chroma(), p.A1.Chroma())
	tolassert.Equal(t, h.Chroma()/3, p.A2.Chroma())
	tolassert.Equal(t, h.Chroma()/2, p.A3.Chroma())
	assert.Equal(t, 4.0, p.N1.Chroma())
	assert.Equal(t, 8.0, p.N2.Chroma())

	gray := NewContentCorePalette(0xff777777)
	tolassert.Equal(t, hct.FromARGB(0xff777777).Chroma(), gray.A1.Chroma())
	assert.Less(t, gray.A1.Chroma(), 3.0)
	tolassert.Equal(t, gray.A1.Chroma()/12, gray.N1.Chroma())
	tolassert.Equal(t, gray.A1.Chroma()/6, gray.N2.Chroma())
}

func TestCoreOptions(t *testing.T) {
	custom := NewTonalPalette(120, 30)
	p := NewCorePalette(0xff4285f4, WithPalette(Tertiary, custom), WithColor(Neutral, 0xffb3261e))
	assert.Same(t, custom, p.A3)
	g := hct.FromARGB(0xffb3261e)
	assert.Equal(t, g.Hue(), p.N1.Hue())
	assert.Equal(t, g.Chroma(), p.N1.Chroma())
	assert.Equal(t, NewCorePalette(0xff4285f4).A2.Tones(), p.A2.Tones())

	for _, role := range PaletteRoles() {
		assert.NotNil(t, *p.Palette(role), role.String())
	}
	assert.Same(t, p.Error, *p.Palette(Error))
	assert.Same(t, p.N2, *p.Palette(NeutralVariant))
}

func TestPaletteRole(t *testing.T) {
	for _, role := range PaletteRoles() {
		got, err := ParsePaletteRole(role.String())
		assert.NoError(t, err)
		assert.Equal(t, role, got)
	}
	aliases := map[string]PaletteRole{
		"a1": Primary, "A2": Secondary, "a3": Tertiary, "n1": Neutral, "n2": NeutralVariant,
		"background": Neutral, "outline": NeutralVariant, "neutral-variant": NeutralVariant,
		"neutral_variant": NeutralVariant, "ERROR": Error,
	}
	for s, want := range aliases {
		got, err := ParsePaletteRole(s)
		assert.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParsePaletteRole("surface")
	assert.Error(t, err)
	assert.Equal(t, "PaletteRole(9)", PaletteRole(9).String())

	var r PaletteRole
	assert.NoError(t, r.UnmarshalText([]byte("tertiary")))
	assert.Equal(t, Tertiary, r)
	b, err := NeutralVariant.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "neutralVariant", string(b))
}
