// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the material tool,
// which generates Material Design 3 color themes from seed colors.
package cmd

import (
	"log/slog"

	"cogentcore.org/material/base/errors"
	"cogentcore.org/material/base/logx"
	"cogentcore.org/material/cmd/material/config"
	"cogentcore.org/material/colors"
	"github.com/spf13/cobra"
)

// state is the state shared by all of the commands: the values
// of the global flags and the resulting configuration.
type state struct {
	configFile  string
	verbose     bool
	veryVerbose bool
	quiet       bool

	source  uint32
	colors  map[string]string
	format  string
	content bool
	dark    bool
	tones   []int

	// cfg is the configuration, set before any command runs.
	cfg *config.Config
}

// NewRootCmd returns the root material command with all of its subcommands.
func NewRootCmd() *cobra.Command {
	st := &state{}
	root := &cobra.Command{
		Use:   "material",
		Short: "Generate Material Design 3 color themes from seed colors",
		Long: `material computes perceptually accurate color themes from one or more
seed colors using the HCT color space: tonal palettes, light and dark
color schemes, and a ranking of colors by their suitability as a theme source.

Settings are read from the TOML file given by --config, and any flags
given on the command line override them.`,
		Version:           Version(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return st.load(cmd) },
	}

	fs := root.PersistentFlags()
	fs.BoolVarP(&st.verbose, "verbose", "v", false, "print informational log messages")
	fs.BoolVar(&st.veryVerbose, "vv", false, "print debug log messages")
	fs.BoolVarP(&st.quiet, "quiet", "q", false, "only print error log messages")
	fs.StringVarP(&st.configFile, "config", "c", "", "TOML `file` to read settings from")
	fs.VarP(newColorValue(&st.source), "source", "s", "source (seed) color of the theme (default "+config.DefaultSource+")")
	fs.Var(newColorMapValue(&st.colors), "color", "key color of a palette role, as role=#rrggbb (repeatable)")
	fs.StringVarP(&st.format, "format", "f", "", "output format: json, yaml, or toml (default json)")
	fs.BoolVar(&st.content, "content", false, "use the content palette, which keeps the chroma of the source")
	fs.BoolVar(&st.dark, "dark", false, "use the dark scheme")
	fs.IntSliceVar(&st.tones, "tones", nil, "tones at which palettes are output")

	root.AddCommand(
		newThemeCmd(st),
		newSchemeCmd(st),
		newPaletteCmd(st),
		newScoreCmd(st),
		newHCTCmd(st),
		newBlendCmd(st),
		newSwatchCmd(st),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command on the command line arguments
// and logs the error it returns, if any.
func Execute() error {
	return errors.Log(NewRootCmd().Execute())
}

// load sets up logging and builds the configuration
// from the config file and the flags that were given.
func (st *state) load(cmd *cobra.Command) error {
	logx.UserLevel = logx.LevelFromFlags(st.veryVerbose, st.verbose, st.quiet)
	logx.SetDefaultLogger()

	c := &config.Config{}
	if st.configFile != "" {
		var err error
		c, err = config.Open(st.configFile)
		if err != nil {
			return err
		}
		slog.Info("read config file", "file", st.configFile)
	}
	fs := cmd.Flags()
	if fs.Changed("source") {
		c.Source = colors.AsHex(st.source)
	}
	if fs.Changed("format") {
		c.Format = st.format
	}
	if fs.Changed("content") {
		c.Content = st.content
	}
	if fs.Changed("dark") {
		c.Dark = st.dark
	}
	if fs.Changed("tones") {
		c.Tones = st.tones
	}
	for role, hex := range st.colors {
		if c.Colors == nil {
			c.Colors = map[string]string{}
		}
		c.Colors[role] = hex
	}
	c.Defaults()
	if err := c.Validate(); err != nil {
		return err
	}
	slog.Debug("configuration", "source", c.Source, "content", c.Content, "dark", c.Dark, "format", c.Format)
	st.cfg = c
	return nil
}
