// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"cogentcore.org/material/base/iox/jsonx"
	"cogentcore.org/material/base/iox/tomlx"
	"cogentcore.org/material/base/iox/yamlx"
)

// encode writes the given value to the given writer in the given format.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		return yamlx.Write(v, w)
	case "toml":
		t, err := tomlValue(v)
		if err != nil {
			return err
		}
		return tomlx.Write(t, w)
	default:
		return jsonx.Write(v, w)
	}
}

// tomlValue returns the given value in a form that TOML can encode,
// keeping the order of the keys of its JSON objects. Objects become
// struct values whose fields are tagged with the object keys, since
// TOML encodes struct fields in order and map keys sorted. Null values
// are dropped. A value that is not a table is put in a table under
// the key "values".
func tomlValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	g, err := tomlDecode(dec)
	if err != nil {
		return nil, err
	}
	switch {
	case g == nil:
		g = tomlTable(nil, nil)
	case reflect.TypeOf(g).Kind() != reflect.Struct:
		g = tomlTable([]string{"values"}, []any{g})
	}
	return g, nil
}

// tomlDecode decodes the next JSON value from the given decoder.
func tomlDecode(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			var keys []string
			var vals []any
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := tomlDecode(dec)
				if err != nil {
					return nil, err
				}
				if v == nil {
					continue
				}
				keys = append(keys, kt.(string))
				vals = append(vals, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return tomlTable(keys, vals), nil
		case '[':
			list := []any{}
			for dec.More() {
				v, err := tomlDecode(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		}
	case json.Number:
		if i, err := tok.Int64(); err == nil {
			return i, nil
		}
		return tok.Float64()
	}
	return tok, nil
}

// tomlTable returns a struct value with one field per key, in order.
func tomlTable(keys []string, vals []any) any {
	fields := make([]reflect.StructField, len(keys))
	for i, k := range keys {
		fields[i] = reflect.StructField{
			Name: fmt.Sprintf("F%d", i),
			Type: reflect.TypeFor[any](),
			Tag:  reflect.StructTag(fmt.Sprintf("toml:%q", k)),
		}
	}
	sv := reflect.New(reflect.StructOf(fields)).Elem()
	for i, v := range vals {
		if v != nil {
			sv.Field(i).Set(reflect.ValueOf(v))
		}
	}
	return sv.Interface()
}
