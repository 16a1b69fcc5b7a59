// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBytes(t *testing.T) {
	b, err := WriteBytes(map[string][]int{"tones": {10, 90}})
	require.NoError(t, err)
	assert.Equal(t, "tones:\n  - 10\n  - 90\n", string(b))

	var m map[string][]int
	require.NoError(t, ReadBytes(&m, b))
	assert.Equal(t, map[string][]int{"tones": {10, 90}}, m)
}
