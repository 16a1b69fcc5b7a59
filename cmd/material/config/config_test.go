// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/material/colors"
	"cogentcore.org/material/colors/matcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	fn := filepath.Join(t.TempDir(), "material.toml")
	require.NoError(t, os.WriteFile(fn, []byte(text), 0666))
	return fn
}

func TestDefaults(t *testing.T) {
	c := &Config{}
	c.Defaults()
	assert.Equal(t, DefaultSource, c.Source)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, matcolor.StandardTones, c.Tones)
	assert.NoError(t, c.Validate())

	key, err := c.Key()
	require.NoError(t, err)
	assert.Equal(t, matcolor.Key{matcolor.Primary: 0xff4285f4}, key)
}

func TestOpen(t *testing.T) {
	fn := writeConfig(t, `
source = "#6750a4"
content = true
format = "yaml"
tones = [0, 50, 100]

[colors]
secondary = "#000"
outline = "#777777"

[[custom]]
name = "leaf"
value = "#386a20"
blend = true
`)
	c, err := Open(fn)
	require.NoError(t, err)
	assert.True(t, c.Content)
	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, []int{0, 50, 100}, c.Tones)

	key, err := c.Key()
	require.NoError(t, err)
	assert.Equal(t, matcolor.Key{
		matcolor.Primary:        0xff6750a4,
		matcolor.Secondary:      0xff000000,
		matcolor.NeutralVariant: 0xff777777,
	}, key)

	cc, err := c.CustomColors()
	require.NoError(t, err)
	assert.Equal(t, []matcolor.CustomColor{{Value: 0xff386a20, Name: "leaf", Blend: true}}, cc)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Open(writeConfig(t, `unknown = 1`))
	assert.Error(t, err)

	_, err = Open(writeConfig(t, `source = "blue"`))
	assert.True(t, errors.Is(err, colors.ErrMalformedColorString))

	_, err = Open(writeConfig(t, `format = "xml"`))
	assert.ErrorContains(t, err, "invalid format")

	_, err = Open(writeConfig(t, `tones = [101]`))
	assert.ErrorContains(t, err, "invalid tone")

	_, err = Open(writeConfig(t, "[colors]\nsurface = \"#fff\"\n"))
	assert.ErrorContains(t, err, "unknown palette role")

	_, err = Open(writeConfig(t, "[[custom]]\nname = \"x\"\nvalue = \"#12\"\n"))
	assert.True(t, errors.Is(err, colors.ErrMalformedColorString))
}
