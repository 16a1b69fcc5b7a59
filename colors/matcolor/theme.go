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

import (
	"fmt"
	"sort"
	"strconv"

	"cogentcore.org/material/base/ordmap"
	"cogentcore.org/material/colors"
	"cogentcore.org/material/colors/blend"
)

// Schemes contains the light and dark [Scheme] of a [Theme].
type Schemes struct {
	Light *Scheme `json:"light"`
	Dark  *Scheme `json:"dark"`
}

// Theme is a complete Material Design 3 color theme generated from
// a source color: light and dark schemes, the tonal palettes they
// were built from, and any custom color groups.
type Theme struct {

	// Source is the source (seed) color of the theme
	Source uint32 `json:"source"`

	// Schemes are the light and dark schemes of the theme
	Schemes Schemes `json:"schemes"`

	// Palettes are the tonal palettes of the theme
	Palettes *CorePalette `json:"-"`

	// CustomColors are the harmonized custom color groups of the theme
	CustomColors []CustomColorGroup `json:"customColors,omitempty"`
}

// CustomColor is a user-defined color added to a [Theme].
type CustomColor struct {

	// Value is the ARGB value of the color
	Value uint32 `json:"value"`

	// Name is the name of the color
	Name string `json:"name"`

	// Blend is whether to harmonize the color with the source color of the theme
	Blend bool `json:"blend"`
}

// CustomColorGroup contains the light and dark color groups of a [CustomColor].
type CustomColorGroup struct {

	// Color is the custom color as given
	Color CustomColor `json:"color"`

	// Value is the color after any harmonization with the theme source
	Value uint32 `json:"value"`

	// Light is the color group for light schemes
	Light ColorGroup `json:"light"`

	// Dark is the color group for dark schemes
	Dark ColorGroup `json:"dark"`
}

// ThemeFromSourceColor returns a new [Theme] for the given ARGB source
// color, with the given custom colors harmonized against it.
func ThemeFromSourceColor(source uint32, customColors ...CustomColor) *Theme {
	return ThemeFromCorePalette(source, NewCorePalette(source), customColors...)
}

// ThemeFromCorePalette returns a new [Theme] with the given ARGB source
// color whose schemes are built from the given [CorePalette].
func ThemeFromCorePalette(source uint32, p *CorePalette, customColors ...CustomColor) *Theme {
	t := &Theme{
		Source:   source,
		Schemes:  Schemes{Light: LightFromCorePalette(p), Dark: DarkFromCorePalette(p)},
		Palettes: p,
	}
	for _, c := range customColors {
		t.CustomColors = append(t.CustomColors, NewCustomColor(source, c))
	}
	return t
}

// NewCustomColor returns the [CustomColorGroup] of the given custom color
// in a theme with the given ARGB source color.
func NewCustomColor(source uint32, c CustomColor) CustomColorGroup {
	value := c.Value
	if c.Blend {
		value = blend.Harmonize(value, source)
	}
	tones := NewCorePalette(value).A1
	return CustomColorGroup{
		Color: c,
		Value: value,
		Light: NewColorGroupLight(tones),
		Dark:  NewColorGroupDark(tones),
	}
}

// Key contains the key colors of a multi-color theme, by palette role.
// A role that is present in the map is used even if its value is 0.
type Key map[PaletteRole]uint32

// ThemeFromColors returns a new [Theme] whose palettes are built from the
// given key colors. The primary key color is required and is the source
// of the theme. Every given color replaces the palette of its role with
// a palette of its own hue and chroma, and the remaining palettes are
// derived from the primary color.
func ThemeFromColors(key Key, customColors ...CustomColor) (*Theme, error) {
	primary, ok := key[Primary]
	if !ok {
		return nil, fmt.Errorf("matcolor: theme key colors must include a %v color", Primary)
	}
	opts := make([]CoreOption, 0, len(key))
	for _, role := range key.roles() {
		opts = append(opts, WithColor(role, key[role]))
	}
	return ThemeFromCorePalette(primary, NewCorePalette(primary, opts...), customColors...), nil
}

// PerfectColors returns a copy of the given key with any missing
// secondary, tertiary, and neutral colors filled in with tone 60 of
// the corresponding palette derived from the primary color.
func PerfectColors(key Key) (Key, error) {
	primary, ok := key[Primary]
	if !ok {
		return nil, fmt.Errorf("matcolor: key colors must include a %v color", Primary)
	}
	p := NewCorePalette(primary)
	res := make(Key, len(key)+3)
	for role, c := range key {
		res[role] = c
	}
	for _, role := range []PaletteRole{Secondary, Tertiary, Neutral} {
		if _, ok := res[role]; !ok {
			res[role] = (*p.Palette(role)).Tone(60)
		}
	}
	return res, nil
}

// roles returns the roles of the key in role order.
func (k Key) roles() []PaletteRole {
	roles := make([]PaletteRole, 0, len(k))
	for role := range k {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Hex returns the key as hex color strings keyed by role name, in role order.
func (k Key) Hex() *ordmap.Map[string, string] {
	om := ordmap.New[string, string]()
	for _, role := range k.roles() {
		om.Add(role.String(), colors.AsHex(k[role]))
	}
	return om
}

// ThemeDoc is a [Theme] with all of its colors as "#rrggbb" hex strings,
// suitable for encoding as JSON or YAML with roles in canonical order.
type ThemeDoc struct {
	Source       string                                           `json:"source" yaml:"source"`
	Schemes      map[string]*ordmap.Map[string, string]           `json:"schemes" yaml:"schemes"`
	Palettes     *ordmap.Map[string, *ordmap.Map[string, string]] `json:"palettes" yaml:"palettes"`
	CustomColors []CustomColorDoc                                 `json:"customColors,omitempty" yaml:"customColors,omitempty"`
}

// CustomColorDoc is a [CustomColorGroup] with hex string colors.
type CustomColorDoc struct {
	Name  string                      `json:"name" yaml:"name"`
	Value string                      `json:"value" yaml:"value"`
	Blend bool                        `json:"blend" yaml:"blend"`
	Light *ordmap.Map[string, string] `json:"light" yaml:"light"`
	Dark  *ordmap.Map[string, string] `json:"dark" yaml:"dark"`
}

// Doc returns the theme with all colors converted to hex strings.
// Palettes are serialized at the given tones, or at [StandardTones]
// if none are given.
func (t *Theme) Doc(tones ...int) *ThemeDoc {
	if len(tones) == 0 {
		tones = StandardTones
	}
	hex := func(m *ordmap.Map[string, uint32]) *ordmap.Map[string, string] {
		return ordmap.Apply(m, colors.AsHex)
	}
	d := &ThemeDoc{
		Source: colors.AsHex(t.Source),
		Schemes: map[string]*ordmap.Map[string, string]{
			"light": hex(t.Schemes.Light.Roles()),
			"dark":  hex(t.Schemes.Dark.Roles()),
		},
		Palettes: ordmap.New[string, *ordmap.Map[string, string]](),
	}
	for _, role := range PaletteRoles() {
		d.Palettes.Add(role.String(), hex(PaletteTones(*t.Palettes.Palette(role), tones...)))
	}
	for _, cc := range t.CustomColors {
		d.CustomColors = append(d.CustomColors, CustomColorDoc{
			Name:  cc.Color.Name,
			Value: colors.AsHex(cc.Value),
			Blend: cc.Color.Blend,
			Light: hex(cc.Light.Roles()),
			Dark:  hex(cc.Dark.Roles()),
		})
	}
	return d
}

// PaletteTones returns the given tones of the palette keyed by the
// decimal tone number, in the given order.
func PaletteTones(tp *TonalPalette, tones ...int) *ordmap.Map[string, uint32] {
	if len(tones) == 0 {
		tones = StandardTones
	}
	om := ordmap.New[string, uint32]()
	for _, tone := range tones {
		om.Add(strconv.Itoa(tone), tp.Tone(tone))
	}
	return om
}
