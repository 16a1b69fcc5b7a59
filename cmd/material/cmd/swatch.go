// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"cogentcore.org/material/cmd/material/config"
	"cogentcore.org/material/colors"
	"cogentcore.org/material/colors/cam/hct"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newSwatchCmd(st *state) *cobra.Command {
	android := false
	force := false
	cmd := &cobra.Command{
		Use:   "swatch",
		Short: "Show the colors of a scheme in the terminal",
		Long: `Show each role of the light scheme (or the dark scheme with --dark) of the
source color as a colored swatch, with its text in a same-hue color
of sufficient contrast.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Swatch(st.cfg, android, force, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&android, "android", false, "show the Android system color roles")
	cmd.Flags().BoolVar(&force, "force-color", false, "use true color even if the output is not a terminal")
	return cmd
}

// SwatchContrast is the minimum contrast ratio of swatch text.
const SwatchContrast = 4.5

// Swatch writes the scheme of the given configuration as
// colored swatches to the given writer.
func Swatch(c *config.Config, android, force bool, w io.Writer) error {
	roles, err := SchemeRoles(c, android)
	if err != nil {
		return err
	}
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.TrueColor)
	}
	width := 0
	for _, name := range roles.Keys() {
		width = max(width, len(name))
	}
	for _, kv := range roles.Order {
		text := hct.ContrastColorUnsafe(kv.Value, SwatchContrast)
		st := r.NewStyle().
			Background(lipgloss.Color(colors.AsHex(kv.Value))).
			Foreground(lipgloss.Color(colors.AsHex(text))).
			Padding(0, 1)
		line := st.Render(fmt.Sprintf("%-*s %s", width, kv.Key, colors.AsHex(kv.Value)))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
