// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"sync"

	"cogentcore.org/material/colors/cam/hct"
)

// StandardTones are the tones included when a [TonalPalette]
// is serialized, from lightest to darkest.
var StandardTones = []int{100, 99, 98, 95, 90, 80, 70, 60, 50, 40, 35, 30, 25, 20, 10, 0}

// TonalPalette contains the colors that are constant in hue and chroma,
// but vary in tone. To get a tonal value, use [TonalPalette.Tone].
// Computed tones are cached per palette; a TonalPalette is safe
// for concurrent use.
type TonalPalette struct {
	hue    float64
	chroma float64

	mu    sync.RWMutex
	tones map[int]uint32
}

// NewTonalPalette returns a new [TonalPalette] with the given HCT hue and chroma.
func NewTonalPalette(hue, chroma float64) *TonalPalette {
	return &TonalPalette{hue: hue, chroma: chroma, tones: map[int]uint32{}}
}

// TonalPaletteFromARGB returns a new [TonalPalette] with the
// HCT hue and chroma of the given ARGB color.
func TonalPaletteFromARGB(argb uint32) *TonalPalette {
	h := hct.FromARGB(argb)
	return NewTonalPalette(h.Hue(), h.Chroma())
}

// Hue returns the HCT hue of the palette.
func (tp *TonalPalette) Hue() float64 { return tp.hue }

// Chroma returns the requested HCT chroma of the palette. The actual
// chroma of each tone may be lower, as limited by the sRGB gamut.
func (tp *TonalPalette) Chroma() float64 { return tp.chroma }

// Tone returns the ARGB color at the given tone on a scale of 0 to 100.
// It uses the cached value if it exists, and it caches the value if
// it is not already.
func (tp *TonalPalette) Tone(tone int) uint32 {
	tp.mu.RLock()
	c, ok := tp.tones[tone]
	tp.mu.RUnlock()
	if ok {
		return c
	}
	c = hct.New(tp.hue, tp.chroma, float64(tone)).ARGB()
	tp.mu.Lock()
	tp.tones[tone] = c
	tp.mu.Unlock()
	return c
}

// Tones returns the ARGB colors at each of the given tones, keyed by tone.
// If no tones are given, [StandardTones] are used.
func (tp *TonalPalette) Tones(tones ...int) map[int]uint32 {
	if len(tones) == 0 {
		tones = StandardTones
	}
	m := make(map[int]uint32, len(tones))
	for _, t := range tones {
		m[t] = tp.Tone(t)
	}
	return m
}
