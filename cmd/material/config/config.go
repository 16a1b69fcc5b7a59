// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration information for the material tool.
package config

import (
	"fmt"
	"strings"

	"cogentcore.org/material/base/iox/tomlx"
	"cogentcore.org/material/colors"
	"cogentcore.org/material/colors/matcolor"
)

// Formats are the output formats of the material tool.
var Formats = []string{"json", "yaml", "toml"}

// Config is the configuration information for the material tool,
// read from a TOML file and overridden by command line flags.
type Config struct {

	// Source is the hex source (seed) color of the theme
	Source string `toml:"source"`

	// Content is whether to use the content palette, which
	// keeps the chroma of the source color
	Content bool `toml:"content"`

	// Dark is whether to use the dark scheme where one scheme is shown
	Dark bool `toml:"dark"`

	// Format is the output format: json, yaml, or toml
	Format string `toml:"format"`

	// Colors are hex key colors by palette role name
	// (primary, secondary, tertiary, neutral, neutralVariant, error),
	// which replace the palettes derived from the source color
	Colors map[string]string `toml:"colors"`

	// Custom are custom colors added to the theme
	Custom []Custom `toml:"custom"`

	// Tones are the tones at which palettes are output
	Tones []int `toml:"tones"`
}

// Custom is a custom color in the configuration file.
type Custom struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
	Blend bool   `toml:"blend"`
}

// DefaultSource is the source color used when none is configured.
const DefaultSource = "#4285f4"

// Defaults sets the default values of any unset fields.
func (c *Config) Defaults() {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if len(c.Tones) == 0 {
		c.Tones = matcolor.StandardTones
	}
}

// Open reads the configuration from the given TOML file
// and applies the defaults.
func Open(filename string) (*Config, error) {
	c := &Config{}
	if err := tomlx.Open(c, filename); err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", filename, err)
	}
	c.Defaults()
	return c, c.Validate()
}

// Validate returns an error if any of the configured values are invalid.
func (c *Config) Validate() error {
	if _, err := c.SourceARGB(); err != nil {
		return err
	}
	if !isFormat(c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %s", c.Format, strings.Join(Formats, ", "))
	}
	for _, t := range c.Tones {
		if t < 0 || t > 100 {
			return fmt.Errorf("invalid tone %d: must be between 0 and 100", t)
		}
	}
	if _, err := c.Key(); err != nil {
		return err
	}
	_, err := c.CustomColors()
	return err
}

func isFormat(f string) bool {
	for _, ff := range Formats {
		if f == ff {
			return true
		}
	}
	return false
}

// SourceARGB returns the source color as an ARGB value.
func (c *Config) SourceARGB() (uint32, error) {
	return colors.FromHex(c.Source)
}

// Key returns the key colors of the configuration, with the source color
// as the primary color unless a primary color is given in [Config.Colors].
func (c *Config) Key() (matcolor.Key, error) {
	src, err := c.SourceARGB()
	if err != nil {
		return nil, err
	}
	key := matcolor.Key{matcolor.Primary: src}
	for name, hex := range c.Colors {
		role, err := matcolor.ParsePaletteRole(name)
		if err != nil {
			return nil, err
		}
		v, err := colors.FromHex(hex)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		key[role] = v
	}
	return key, nil
}

// CustomColors returns the configured custom colors.
func (c *Config) CustomColors() ([]matcolor.CustomColor, error) {
	res := make([]matcolor.CustomColor, 0, len(c.Custom))
	for _, cc := range c.Custom {
		v, err := colors.FromHex(cc.Value)
		if err != nil {
			return nil, fmt.Errorf("custom color %q: %w", cc.Name, err)
		}
		res = append(res, matcolor.CustomColor{Value: v, Name: cc.Name, Blend: cc.Blend})
	}
	return res, nil
}
