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
	"math"
	"strings"

	"cogentcore.org/material/base/mathx"
	"cogentcore.org/material/colors/cam/hct"
)

// PaletteRole is one of the six tonal palettes of a [CorePalette].
type PaletteRole int32

const (
	// Primary is the palette of the primary accent color (a1).
	Primary PaletteRole = iota

	// Secondary is the palette of the secondary accent color (a2).
	Secondary

	// Tertiary is the palette of the tertiary accent color (a3).
	Tertiary

	// Neutral is the palette of surfaces and backgrounds (n1).
	Neutral

	// NeutralVariant is the palette of outlines and
	// medium emphasis surfaces (n2).
	NeutralVariant

	// Error is the palette of the error color.
	Error
)

var paletteRoleNames = [...]string{"primary", "secondary", "tertiary", "neutral", "neutralVariant", "error"}

// PaletteRoles returns all of the palette roles, in order.
func PaletteRoles() []PaletteRole {
	return []PaletteRole{Primary, Secondary, Tertiary, Neutral, NeutralVariant, Error}
}

// String returns the lower camel case name of the role.
func (r PaletteRole) String() string {
	if r < 0 || int(r) >= len(paletteRoleNames) {
		return fmt.Sprintf("PaletteRole(%d)", int32(r))
	}
	return paletteRoleNames[r]
}

// ParsePaletteRole returns the role with the given name, ignoring case,
// dashes, and underscores. The names of the palette in the core palette
// (a1, a2, a3, n1, n2) are accepted, as are "background" for [Neutral]
// and "outline" for [NeutralVariant].
func ParsePaletteRole(s string) (PaletteRole, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
	switch norm {
	case "primary", "a1":
		return Primary, nil
	case "secondary", "a2":
		return Secondary, nil
	case "tertiary", "a3":
		return Tertiary, nil
	case "neutral", "n1", "background":
		return Neutral, nil
	case "neutralvariant", "n2", "outline":
		return NeutralVariant, nil
	case "error":
		return Error, nil
	}
	return 0, fmt.Errorf("matcolor: unknown palette role %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (r PaletteRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *PaletteRole) UnmarshalText(text []byte) error {
	v, err := ParsePaletteRole(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// CorePalette is an intermediate concept between the key color for a UI
// theme and a full color scheme. Six sets of tones are generated from the
// key color: all except the tertiary and error palettes use the hue of the
// key color, and they vary in chroma.
type CorePalette struct {

	// A1 is the primary palette.
	A1 *TonalPalette

	// A2 is the secondary palette.
	A2 *TonalPalette

	// A3 is the tertiary palette.
	A3 *TonalPalette

	// N1 is the neutral palette.
	N1 *TonalPalette

	// N2 is the neutral variant palette.
	N2 *TonalPalette

	// Error is the error palette.
	Error *TonalPalette
}

// CoreOption is an option for [NewCorePalette] and [NewContentCorePalette].
type CoreOption func(p *CorePalette)

// WithPalette returns an option that uses the given palette
// for the given role instead of deriving it from the key color.
func WithPalette(role PaletteRole, tp *TonalPalette) CoreOption {
	return func(p *CorePalette) {
		*p.Palette(role) = tp
	}
}

// WithColor returns an option that derives the palette of the given role
// from the hue and chroma of the given ARGB color instead of the key color.
func WithColor(role PaletteRole, argb uint32) CoreOption {
	return WithPalette(role, TonalPaletteFromARGB(argb))
}

// NewCorePalette returns the default [CorePalette] for the given ARGB key color.
func NewCorePalette(argb uint32, opts ...CoreOption) *CorePalette {
	h := hct.FromARGB(argb)
	hue, chroma := h.Hue(), h.Chroma()
	p := &CorePalette{
		A1:    NewTonalPalette(hue, max(48, chroma)),
		A2:    NewTonalPalette(hue, 16),
		A3:    NewTonalPalette(mathx.SanitizeDegrees(hue+60), 24),
		N1:    NewTonalPalette(hue, 4),
		N2:    NewTonalPalette(hue, 8),
		Error: NewTonalPalette(25, 84),
	}
	return p.apply(opts)
}

// NewContentCorePalette returns the content [CorePalette] for the given ARGB
// key color, which keeps the chroma of the key color for a more
// saturated, content-driven palette.
func NewContentCorePalette(argb uint32, opts ...CoreOption) *CorePalette {
	h := hct.FromARGB(argb)
	hue, chroma := h.Hue(), h.Chroma()
	p := &CorePalette{
		A1:    NewTonalPalette(hue, chroma),
		A2:    NewTonalPalette(hue, chroma/3),
		A3:    NewTonalPalette(mathx.SanitizeDegrees(hue+60), chroma/2),
		N1:    NewTonalPalette(hue, math.Min(chroma/12, 4)),
		N2:    NewTonalPalette(hue, math.Min(chroma/6, 8)),
		Error: NewTonalPalette(25, 84),
	}
	return p.apply(opts)
}

func (p *CorePalette) apply(opts []CoreOption) *CorePalette {
	for _, o := range opts {
		o(p)
	}
	return p
}

// Palette returns a pointer to the palette field of the given role.
func (p *CorePalette) Palette(role PaletteRole) **TonalPalette {
	switch role {
	case Secondary:
		return &p.A2
	case Tertiary:
		return &p.A3
	case Neutral:
		return &p.N1
	case NeutralVariant:
		return &p.N2
	case Error:
		return &p.Error
	default:
		return &p.A1
	}
}
