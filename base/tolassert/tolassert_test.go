// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(t, 1.0, 1.0005))
	assert.True(t, EqualTol(t, float32(3.14), float32(3.1), 0.05))

	r := &recorder{}
	assert.False(t, Equal(r, 1.0, 1.01))
	assert.True(t, r.failed)

	r = &recorder{}
	assert.False(t, EqualTol(r, 100.0, 99.0, 0.5))
	assert.True(t, r.failed)
}
