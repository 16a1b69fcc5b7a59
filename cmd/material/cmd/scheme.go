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

func newSchemeCmd(st *state) *cobra.Command {
	android := false
	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "Print the light or dark scheme of the source color",
		Long: `Print the colors of the light scheme (or the dark scheme with --dark)
of the source color as a flat record of role names to hex colors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Scheme(st.cfg, android, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&android, "android", false, "print the Android system color roles")
	return cmd
}

// Scheme writes the scheme of the given configuration to the given writer.
func Scheme(c *config.Config, android bool, w io.Writer) error {
	roles, err := SchemeRoles(c, android)
	if err != nil {
		return err
	}
	return encode(w, c.Format, ordmap.Apply(roles, colors.AsHex))
}

// SchemeRoles returns the role colors of the scheme of the given configuration.
func SchemeRoles(c *config.Config, android bool) (*ordmap.Map[string, uint32], error) {
	p, _, err := corePalette(c)
	if err != nil {
		return nil, err
	}
	switch {
	case android && c.Dark:
		return matcolor.DarkAndroidFromCorePalette(p).Roles(), nil
	case android:
		return matcolor.LightAndroidFromCorePalette(p).Roles(), nil
	case c.Dark:
		return matcolor.DarkFromCorePalette(p).Roles(), nil
	default:
		return matcolor.LightFromCorePalette(p).Roles(), nil
	}
}
