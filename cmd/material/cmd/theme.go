// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"log/slog"

	"cogentcore.org/material/cmd/material/config"
	"cogentcore.org/material/colors/matcolor"
	"github.com/spf13/cobra"
)

func newThemeCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Print the theme of the source and key colors",
		Long: `Print the complete theme of the source color: the light and dark schemes,
the tonal palettes, and any custom colors, with all colors as hex strings.
Key colors given with --color or in the config file replace the palette
of their role.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Theme(st.cfg, cmd.OutOrStdout())
		},
	}
}

// Theme writes the theme of the given configuration to the given writer.
func Theme(c *config.Config, w io.Writer) error {
	th, err := NewTheme(c)
	if err != nil {
		return err
	}
	slog.Info("generated theme", "source", c.Source, "customColors", len(th.CustomColors))
	return encode(w, c.Format, th.Doc(c.Tones...))
}

// NewTheme returns the theme of the given configuration.
func NewTheme(c *config.Config) (*matcolor.Theme, error) {
	custom, err := c.CustomColors()
	if err != nil {
		return nil, err
	}
	if len(c.Colors) > 0 && !c.Content {
		key, err := c.Key()
		if err != nil {
			return nil, err
		}
		return matcolor.ThemeFromColors(key, custom...)
	}
	p, source, err := corePalette(c)
	if err != nil {
		return nil, err
	}
	return matcolor.ThemeFromCorePalette(source, p, custom...), nil
}

// corePalette returns the core palette of the given configuration
// and its source color. Every configured key color replaces the
// palette of its role, in the same way as [matcolor.ThemeFromColors].
func corePalette(c *config.Config) (*matcolor.CorePalette, uint32, error) {
	key, err := c.Key()
	if err != nil {
		return nil, 0, err
	}
	source := key[matcolor.Primary]
	var opts []matcolor.CoreOption
	if len(c.Colors) > 0 {
		for role, v := range key {
			opts = append(opts, matcolor.WithColor(role, v))
		}
	}
	if c.Content {
		return matcolor.NewContentCorePalette(source, opts...), source, nil
	}
	return matcolor.NewCorePalette(source, opts...), source, nil
}
