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

// Scheme contains the colors for one Material Design 3 color scheme
// (ie: light or dark), as packed ARGB values.
type Scheme struct {

	// Primary is the primary color applied to important elements
	Primary uint32 `json:"primary"`

	// OnPrimary is the color applied to content on top of Primary
	OnPrimary uint32 `json:"onPrimary"`

	// PrimaryContainer is the color applied to elements with less emphasis than Primary
	PrimaryContainer uint32 `json:"primaryContainer"`

	// OnPrimaryContainer is the color applied to content on top of PrimaryContainer
	OnPrimaryContainer uint32 `json:"onPrimaryContainer"`

	// Secondary is the secondary color applied to less important elements
	Secondary uint32 `json:"secondary"`

	// OnSecondary is the color applied to content on top of Secondary
	OnSecondary uint32 `json:"onSecondary"`

	// SecondaryContainer is the color applied to elements with less emphasis than Secondary
	SecondaryContainer uint32 `json:"secondaryContainer"`

	// OnSecondaryContainer is the color applied to content on top of SecondaryContainer
	OnSecondaryContainer uint32 `json:"onSecondaryContainer"`

	// Tertiary is the tertiary color applied as an accent to highlight elements and create contrast between other colors
	Tertiary uint32 `json:"tertiary"`

	// OnTertiary is the color applied to content on top of Tertiary
	OnTertiary uint32 `json:"onTertiary"`

	// TertiaryContainer is the color applied to elements with less emphasis than Tertiary
	TertiaryContainer uint32 `json:"tertiaryContainer"`

	// OnTertiaryContainer is the color applied to content on top of TertiaryContainer
	OnTertiaryContainer uint32 `json:"onTertiaryContainer"`

	// Error is the error color applied to elements that indicate an error or danger
	Error uint32 `json:"error"`

	// OnError is the color applied to content on top of Error
	OnError uint32 `json:"onError"`

	// ErrorContainer is the color applied to elements with less emphasis than Error
	ErrorContainer uint32 `json:"errorContainer"`

	// OnErrorContainer is the color applied to content on top of ErrorContainer
	OnErrorContainer uint32 `json:"onErrorContainer"`

	// Background is the color applied to the background of the app and other low-emphasis areas
	Background uint32 `json:"background"`

	// OnBackground is the color applied to content on top of Background
	OnBackground uint32 `json:"onBackground"`

	// Surface is the color applied to contained areas, like the background of an app
	Surface uint32 `json:"surface"`

	// OnSurface is the color applied to content on top of Surface elements
	OnSurface uint32 `json:"onSurface"`

	// SurfaceVariant is the color applied to contained areas that contrast standard Surface elements
	SurfaceVariant uint32 `json:"surfaceVariant"`

	// OnSurfaceVariant is the color applied to content on top of SurfaceVariant elements
	OnSurfaceVariant uint32 `json:"onSurfaceVariant"`

	// Outline is the color applied to borders to create emphasized boundaries that need to have sufficient contrast
	Outline uint32 `json:"outline"`

	// Shadow is the color applied to shadows
	Shadow uint32 `json:"shadow"`

	// InverseSurface is the color applied to elements to make them the reverse color of the surrounding elements and create a contrasting effect
	InverseSurface uint32 `json:"inverseSurface"`

	// InverseOnSurface is the color applied to content on top of InverseSurface
	InverseOnSurface uint32 `json:"inverseOnSurface"`

	// InversePrimary is the color applied to interactive elements on top of InverseSurface
	InversePrimary uint32 `json:"inversePrimary"`
}

// NewLightScheme returns the light [Scheme] for the given ARGB source color.
func NewLightScheme(argb uint32) *Scheme {
	return LightFromCorePalette(NewCorePalette(argb))
}

// NewDarkScheme returns the dark [Scheme] for the given ARGB source color.
func NewDarkScheme(argb uint32) *Scheme {
	return DarkFromCorePalette(NewCorePalette(argb))
}

// NewLightContentScheme returns the light [Scheme] for the given ARGB
// source color, based on the content core palette.
func NewLightContentScheme(argb uint32) *Scheme {
	return LightFromCorePalette(NewContentCorePalette(argb))
}

// NewDarkContentScheme returns the dark [Scheme] for the given ARGB
// source color, based on the content core palette.
func NewDarkContentScheme(argb uint32) *Scheme {
	return DarkFromCorePalette(NewContentCorePalette(argb))
}

// LightFromCorePalette returns the light [Scheme] for the given [CorePalette].
func LightFromCorePalette(p *CorePalette) *Scheme {
	s := &Scheme{}
	s.setGroups(NewColorGroupLight(p.A1), NewColorGroupLight(p.A2), NewColorGroupLight(p.A3), NewColorGroupLight(p.Error))

	s.Background = p.N1.Tone(99)
	s.OnBackground = p.N1.Tone(10)
	s.Surface = p.N1.Tone(99)
	s.OnSurface = p.N1.Tone(10)
	s.SurfaceVariant = p.N2.Tone(90)
	s.OnSurfaceVariant = p.N2.Tone(30)
	s.Outline = p.N2.Tone(50)
	s.Shadow = p.N1.Tone(0)
	s.InverseSurface = p.N1.Tone(20)
	s.InverseOnSurface = p.N1.Tone(95)
	s.InversePrimary = p.A1.Tone(80)
	return s
}

// DarkFromCorePalette returns the dark [Scheme] for the given [CorePalette].
func DarkFromCorePalette(p *CorePalette) *Scheme {
	s := &Scheme{}
	s.setGroups(NewColorGroupDark(p.A1), NewColorGroupDark(p.A2), NewColorGroupDark(p.A3), NewColorGroupDark(p.Error))
	// the dark error container text uses tone 80 rather than 90
	s.OnErrorContainer = p.Error.Tone(80)

	s.Background = p.N1.Tone(10)
	s.OnBackground = p.N1.Tone(90)
	s.Surface = p.N1.Tone(10)
	s.OnSurface = p.N1.Tone(90)
	s.SurfaceVariant = p.N2.Tone(30)
	s.OnSurfaceVariant = p.N2.Tone(80)
	s.Outline = p.N2.Tone(60)
	s.Shadow = p.N1.Tone(0)
	s.InverseSurface = p.N1.Tone(90)
	s.InverseOnSurface = p.N1.Tone(20)
	s.InversePrimary = p.A1.Tone(40)
	return s
}

func (s *Scheme) setGroups(primary, secondary, tertiary, err ColorGroup) {
	s.Primary, s.OnPrimary, s.PrimaryContainer, s.OnPrimaryContainer = primary.Color, primary.OnColor, primary.ColorContainer, primary.OnColorContainer
	s.Secondary, s.OnSecondary, s.SecondaryContainer, s.OnSecondaryContainer = secondary.Color, secondary.OnColor, secondary.ColorContainer, secondary.OnColorContainer
	s.Tertiary, s.OnTertiary, s.TertiaryContainer, s.OnTertiaryContainer = tertiary.Color, tertiary.OnColor, tertiary.ColorContainer, tertiary.OnColorContainer
	s.Error, s.OnError, s.ErrorContainer, s.OnErrorContainer = err.Color, err.OnColor, err.ColorContainer, err.OnColorContainer
}

// Roles returns the colors of the scheme keyed by role name,
// in the canonical role order.
func (s *Scheme) Roles() *ordmap.Map[string, uint32] {
	return ordmap.Make([]ordmap.KeyValue[string, uint32]{
		{Key: "primary", Value: s.Primary},
		{Key: "onPrimary", Value: s.OnPrimary},
		{Key: "primaryContainer", Value: s.PrimaryContainer},
		{Key: "onPrimaryContainer", Value: s.OnPrimaryContainer},
		{Key: "secondary", Value: s.Secondary},
		{Key: "onSecondary", Value: s.OnSecondary},
		{Key: "secondaryContainer", Value: s.SecondaryContainer},
		{Key: "onSecondaryContainer", Value: s.OnSecondaryContainer},
		{Key: "tertiary", Value: s.Tertiary},
		{Key: "onTertiary", Value: s.OnTertiary},
		{Key: "tertiaryContainer", Value: s.TertiaryContainer},
		{Key: "onTertiaryContainer", Value: s.OnTertiaryContainer},
		{Key: "error", Value: s.Error},
		{Key: "onError", Value: s.OnError},
		{Key: "errorContainer", Value: s.ErrorContainer},
		{Key: "onErrorContainer", Value: s.OnErrorContainer},
		{Key: "background", Value: s.Background},
		{Key: "onBackground", Value: s.OnBackground},
		{Key: "surface", Value: s.Surface},
		{Key: "onSurface", Value: s.OnSurface},
		{Key: "surfaceVariant", Value: s.SurfaceVariant},
		{Key: "onSurfaceVariant", Value: s.OnSurfaceVariant},
		{Key: "outline", Value: s.Outline},
		{Key: "shadow", Value: s.Shadow},
		{Key: "inverseSurface", Value: s.InverseSurface},
		{Key: "inverseOnSurface", Value: s.InverseOnSurface},
		{Key: "inversePrimary", Value: s.InversePrimary},
	})
}
