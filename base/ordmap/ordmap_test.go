// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("z", 1)
	om.Add("a", 2)
	om.Add("m", 3)
	om.Add("a", 4)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"z", "a", "m"}, om.Keys())
	assert.Equal(t, []int{1, 4, 3}, om.Values())
	assert.Equal(t, 4, om.ValueByKey("a"))
	_, ok := om.ValueByKeyTry("q")
	assert.False(t, ok)
	assert.Equal(t, 0, om.ValueByKey("q"))

	var nilmap *Map[string, int]
	assert.Equal(t, 0, nilmap.Len())
	assert.Nil(t, nilmap.Keys())
	assert.Nil(t, nilmap.Values())
}

func TestApply(t *testing.T) {
	om := Make([]KeyValue[string, int]{{"b", 2}, {"a", 1}})
	sm := Apply(om, func(v int) string { return strings.Repeat("x", v) })
	assert.Equal(t, []string{"b", "a"}, sm.Keys())
	assert.Equal(t, "xx", sm.ValueByKey("b"))
}

func TestMarshal(t *testing.T) {
	om := Make([]KeyValue[string, string]{{"zeta", "#ffffff"}, {"alpha", "#000000"}})

	b, err := json.Marshal(om)
	assert.NoError(t, err)
	assert.Equal(t, `{"zeta":"#ffffff","alpha":"#000000"}`, string(b))

	y, err := yaml.Marshal(om)
	assert.NoError(t, err)
	var n yaml.Node
	assert.NoError(t, yaml.Unmarshal(y, &n))
	doc := n.Content[0]
	assert.Len(t, doc.Content, 4)
	assert.Equal(t, "zeta", doc.Content[0].Value)
	assert.Equal(t, "#ffffff", doc.Content[1].Value)
	assert.Equal(t, "alpha", doc.Content[2].Value)
	assert.Equal(t, "#000000", doc.Content[3].Value)

	b, err = json.Marshal(New[string, int]())
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}
