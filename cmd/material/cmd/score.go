// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/material/cmd/material/config"
	"cogentcore.org/material/colors"
	"cogentcore.org/material/colors/score"
	"github.com/spf13/cobra"
)

func newScoreCmd(st *state) *cobra.Command {
	limit := 0
	cmd := &cobra.Command{
		Use:   "score #rrggbb[=population]...",
		Short: "Rank colors by their suitability as a theme source",
		Long: `Rank the given colors by their suitability as the source color of a theme,
most suitable first. Each color can have a population, such as its pixel
count in an image, which defaults to 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pop, err := ParsePopulation(args)
			if err != nil {
				return err
			}
			return Score(st.cfg, pop, limit, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of colors to print (0 for all)")
	return cmd
}

// ParsePopulation parses the given color=population arguments.
// The populations of repeated colors are added together.
func ParsePopulation(args []string) (map[uint32]int, error) {
	pop := make(map[uint32]int, len(args))
	for _, a := range args {
		hex, count, hasCount := strings.Cut(a, "=")
		c, err := colors.FromHex(hex)
		if err != nil {
			return nil, err
		}
		n := 1
		if hasCount {
			n, err = strconv.Atoi(count)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid population %q for color %s", count, hex)
			}
		}
		if _, ok := pop[c]; ok {
			slog.Info("adding populations of repeated color", "color", colors.AsHex(c))
		}
		pop[c] += n
	}
	return pop, nil
}

// Score writes the hex colors of the given population ranked by
// suitability as a theme source to the given writer, at most limit
// colors if limit is positive.
func Score(c *config.Config, pop map[uint32]int, limit int, w io.Writer) error {
	ranked := score.Score(pop, c.Content)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	slog.Debug("scored colors", "colors", len(pop), "suitable", len(ranked))
	res := make([]string, len(ranked))
	for i, r := range ranked {
		res[i] = colors.AsHex(r)
	}
	return encode(w, c.Format, res)
}
