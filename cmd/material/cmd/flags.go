// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/colors/matcolor"
	"github.com/spf13/pflag"
)

// colorValue is a [pflag.Value] for a hex color.
type colorValue struct {
	argb *uint32
}

var _ pflag.Value = colorValue{}

func newColorValue(p *uint32) colorValue {
	return colorValue{argb: p}
}

func (v colorValue) String() string {
	if v.argb == nil || *v.argb == 0 {
		return ""
	}
	return colors.AsHex(*v.argb)
}

func (v colorValue) Set(s string) error {
	c, err := colors.FromHex(s)
	if err != nil {
		return err
	}
	*v.argb = c
	return nil
}

func (v colorValue) Type() string { return "color" }

// colorMapValue is a [pflag.Value] for repeated role=#rrggbb
// key colors, stored as hex strings by palette role name.
type colorMapValue struct {
	m *map[string]string
}

var _ pflag.Value = colorMapValue{}

func newColorMapValue(p *map[string]string) colorMapValue {
	return colorMapValue{m: p}
}

func (v colorMapValue) String() string {
	if v.m == nil || len(*v.m) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(*v.m))
	for role, hex := range *v.m {
		pairs = append(pairs, role+"="+hex)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (v colorMapValue) Set(s string) error {
	for _, pair := range strings.Split(s, ",") {
		name, hex, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("%q is not of the form role=#rrggbb", pair)
		}
		role, err := matcolor.ParsePaletteRole(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		c, err := colors.FromHex(strings.TrimSpace(hex))
		if err != nil {
			return err
		}
		if *v.m == nil {
			*v.m = map[string]string{}
		}
		(*v.m)[role.String()] = colors.AsHex(c)
	}
	return nil
}

func (v colorMapValue) Type() string { return "role=color" }
