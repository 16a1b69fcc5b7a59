// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"

	"cogentcore.org/material/base/ordmap"
	"cogentcore.org/material/cmd/material/config"
	"cogentcore.org/material/colors"
	"cogentcore.org/material/colors/matcolor"
	"github.com/spf13/cobra"
)

func newPaletteCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "palette [role...]",
		Short: "Print the tonal palettes of the source color",
		Long: `Print the tones of the tonal palettes of the source color, for the given
palette roles (primary, secondary, tertiary, neutral, neutralVariant, error),
or for all of them if no role is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := make([]matcolor.PaletteRole, len(args))
			for i, a := range args {
				r, err := matcolor.ParsePaletteRole(a)
				if err != nil {
					return err
				}
				roles[i] = r
			}
			return Palette(st.cfg, roles, cmd.OutOrStdout())
		},
	}
}

// Palette writes the tones of the given palettes of the given
// configuration to the given writer, or of all palettes if roles is empty.
func Palette(c *config.Config, roles []matcolor.PaletteRole, w io.Writer) error {
	p, _, err := corePalette(c)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		roles = matcolor.PaletteRoles()
	}
	res := ordmap.New[string, *ordmap.Map[string, string]]()
	for _, role := range roles {
		tones := matcolor.PaletteTones(*p.Palette(role), c.Tones...)
		res.Add(role.String(), ordmap.Apply(tones, colors.AsHex))
	}
	return encode(w, c.Format, res)
}
