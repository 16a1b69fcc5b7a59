// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"math"

	"cogentcore.org/material/base/ordmap"
	"cogentcore.org/material/cmd/material/config"
	"cogentcore.org/material/colors"
	"cogentcore.org/material/colors/cam/hct"
	"github.com/spf13/cobra"
)

// HCTOptions are the options of the hct command.
type HCTOptions struct {

	// Hue, Chroma, and Tone solve for a color when any of them is set,
	// with the unset ones taken from the input color.
	Hue, Chroma, Tone *float64

	// Lighten, Darken, Saturate, Desaturate, and Spin adjust the color
	// by the given absolute amounts, in that order.
	Lighten, Darken, Saturate, Desaturate, Spin float64
}

func newHCTCmd(st *state) *cobra.Command {
	var hue, chroma, tone float64
	opts := &HCTOptions{}
	cmd := &cobra.Command{
		Use:   "hct [#rrggbb]",
		Short: "Print the hue, chroma, and tone of a color",
		Long: `Print the HCT hue, chroma, and tone of the given color (or the source color),
and its contrast ratios with white and black. Given any of --hue, --chroma,
and --tone, the closest displayable color with those values is solved for.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if fs.Changed("hue") {
				opts.Hue = &hue
			}
			if fs.Changed("chroma") {
				opts.Chroma = &chroma
			}
			if fs.Changed("tone") {
				opts.Tone = &tone
			}
			argb, err := st.cfg.SourceARGB()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				argb, err = colors.FromHex(args[0])
				if err != nil {
					return err
				}
			}
			return HCT(st.cfg, argb, opts, cmd.OutOrStdout())
		},
	}
	fs := cmd.Flags()
	fs.Float64Var(&hue, "hue", 0, "hue to solve for, in degrees")
	fs.Float64Var(&chroma, "chroma", 0, "chroma to solve for")
	fs.Float64Var(&tone, "tone", 0, "tone to solve for, from 0 to 100")
	fs.Float64Var(&opts.Lighten, "lighten", 0, "tone to add")
	fs.Float64Var(&opts.Darken, "darken", 0, "tone to subtract")
	fs.Float64Var(&opts.Saturate, "saturate", 0, "chroma to add")
	fs.Float64Var(&opts.Desaturate, "desaturate", 0, "chroma to subtract")
	fs.Float64Var(&opts.Spin, "spin", 0, "degrees to rotate the hue by")
	return cmd
}

// HCT writes the HCT description of the given color, after applying the
// given options, to the given writer.
func HCT(c *config.Config, argb uint32, opts *HCTOptions, w io.Writer) error {
	res := AdjustHCT(argb, opts)
	h := hct.FromARGB(res)
	desc := ordmap.Make([]ordmap.KeyValue[string, any]{
		{Key: "hex", Value: colors.AsHex(res)},
		{Key: "hue", Value: round(h.Hue())},
		{Key: "chroma", Value: round(h.Chroma())},
		{Key: "tone", Value: round(h.Tone())},
		{Key: "contrastWhite", Value: round(hct.ContrastRatio(res, 0xffffffff))},
		{Key: "contrastBlack", Value: round(hct.ContrastRatio(res, 0xff000000))},
	})
	return encode(w, c.Format, desc)
}

// AdjustHCT returns the given color with the given options applied.
func AdjustHCT(argb uint32, opts *HCTOptions) uint32 {
	if opts.Hue != nil || opts.Chroma != nil || opts.Tone != nil {
		h := hct.FromARGB(argb)
		hue, chroma, tone := h.Hue(), h.Chroma(), h.Tone()
		if opts.Hue != nil {
			hue = *opts.Hue
		}
		if opts.Chroma != nil {
			chroma = *opts.Chroma
		}
		if opts.Tone != nil {
			tone = *opts.Tone
		}
		argb = hct.New(hue, chroma, tone).ARGB()
	}
	if opts.Lighten != 0 {
		argb = hct.Lighten(argb, opts.Lighten)
	}
	if opts.Darken != 0 {
		argb = hct.Darken(argb, opts.Darken)
	}
	if opts.Saturate != 0 {
		argb = hct.Saturate(argb, opts.Saturate)
	}
	if opts.Desaturate != 0 {
		argb = hct.Desaturate(argb, opts.Desaturate)
	}
	if opts.Spin != 0 {
		argb = hct.Spin(argb, opts.Spin)
	}
	return argb
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
