// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"

	"cogentcore.org/material/cmd/material/config"
	"cogentcore.org/material/colors"
	"cogentcore.org/material/colors/blend"
	"github.com/spf13/cobra"
)

func newBlendCmd(st *state) *cobra.Command {
	typ := "harmonize"
	amount := 0.5
	cmd := &cobra.Command{
		Use:   "blend #from #to",
		Short: "Blend or harmonize two colors",
		Long: `Blend the first color toward the second. The hue type rotates the hue of
the first color toward the second, the ucs type interpolates in the CAM16-UCS
space, and the harmonize type shifts the hue of the first color toward the
second by a fixed amount, keeping it cohesive with a theme of the second color.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := blend.ParseTypes(typ)
			if err != nil {
				return err
			}
			from, err := colors.FromHex(args[0])
			if err != nil {
				return err
			}
			to, err := colors.FromHex(args[1])
			if err != nil {
				return err
			}
			return Blend(st.cfg, t, amount, from, to, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", typ, "blend type: hue, ucs, or harmonize")
	cmd.Flags().Float64VarP(&amount, "amount", "a", amount, "fraction of the way from the first color to the second (0-1)")
	return cmd
}

// Blend writes the hex blend of the two colors to the given writer.
func Blend(c *config.Config, typ blend.Types, amount float64, from, to uint32, w io.Writer) error {
	return encode(w, c.Format, colors.AsHex(blend.Blend(typ, amount, from, to)))
}
