// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the boundary between packed ARGB colors,
// hex color strings, and the standard [image/color] types.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/material/base/errors"
)

// ErrMalformedColorString is returned (wrapped) by [FromHex] for strings
// that are not 3, 6, or 8 hexadecimal digits with an optional leading '#'.
var ErrMalformedColorString = errors.New("colors: malformed color string")

// FromHex parses the given hex color string and returns the resulting
// opaque ARGB color. The string can have 3 (rgb), 6 (rrggbb), or 8
// (aarrggbb) hexadecimal digits, with or without a leading '#'.
// The alpha digits of the 8 digit form are ignored.
func FromHex(hex string) (uint32, error) {
	h := strings.TrimPrefix(hex, "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	case 8:
		h = h[2:]
	default:
		return 0, fmt.Errorf("%w %q: want 3, 6, or 8 hex digits", ErrMalformedColorString, hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: invalid hex digits", ErrMalformedColorString, hex)
	}
	return 0xff000000 | uint32(v), nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) uint32 {
	return errors.Must1(FromHex(hex))
}

// LogFromHex parses the given hex color string
// and returns the resulting color. It logs any
// resulting error; see [FromHex] for a version
// that returns an error.
func LogFromHex(hex string) uint32 {
	return errors.Log1(FromHex(hex))
}

// AsHex returns the given ARGB color as a "#rrggbb" string
// of lower case hexadecimal digits, dropping the alpha component.
func AsHex(argb uint32) string {
	return fmt.Sprintf("#%06x", argb&0xffffff)
}

// ToRGBA returns the given ARGB color as a non-premultiplied [color.NRGBA].
func ToRGBA(argb uint32) color.NRGBA {
	return color.NRGBA{R: uint8(argb >> 16), G: uint8(argb >> 8), B: uint8(argb), A: uint8(argb >> 24)}
}

// FromColor returns the given color as a packed ARGB value,
// with the alpha component un-premultiplied.
func FromColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}
