// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import "cogentcore.org/material/base/ordmap"

// ColorGroup contains the four standard variations of an accent color.
type ColorGroup struct {

	// Color is the base color
	Color uint32 `json:"color"`

	// OnColor is the color applied to content on top of [ColorGroup.Color]
	OnColor uint32 `json:"onColor"`

	// ColorContainer is the color applied to elements with less emphasis than [ColorGroup.Color]
	ColorContainer uint32 `json:"colorContainer"`

	// OnColorContainer is the color applied to content on top of [ColorGroup.ColorContainer]
	OnColorContainer uint32 `json:"onColorContainer"`
}

// NewColorGroupLight returns a new light theme [ColorGroup] from the given [TonalPalette]
func NewColorGroupLight(tones *TonalPalette) ColorGroup {
	return ColorGroup{
		Color:            tones.Tone(40),
		OnColor:          tones.Tone(100),
		ColorContainer:   tones.Tone(90),
		OnColorContainer: tones.Tone(10),
	}
}

// NewColorGroupDark returns a new dark theme [ColorGroup] from the given [TonalPalette]
func NewColorGroupDark(tones *TonalPalette) ColorGroup {
	return ColorGroup{
		Color:            tones.Tone(80),
		OnColor:          tones.Tone(20),
		ColorContainer:   tones.Tone(30),
		OnColorContainer: tones.Tone(90),
	}
}

// Roles returns the colors of the group keyed by role name.
func (cg ColorGroup) Roles() *ordmap.Map[string, uint32] {
	return ordmap.Make([]ordmap.KeyValue[string, uint32]{
		{Key: "color", Value: cg.Color},
		{Key: "onColor", Value: cg.OnColor},
		{Key: "colorContainer", Value: cg.ColorContainer},
		{Key: "onColorContainer", Value: cg.OnColorContainer},
	})
}
