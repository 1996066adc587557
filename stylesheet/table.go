/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// Lookup finds a resolved value by canonical identifier.
type Lookup interface {
	Lookup(name string) (Value, bool)
}

// Table maps canonical identifiers to resolved values for one theme.
// Keys keep their first insertion position so serialization is deterministic.
type Table struct {
	keys   []string
	values map[string]Value
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]Value)}
}

// Set stores v under name. A later write for the same name wins.
func (t *Table) Set(name string, v Value) {
	if _, exists := t.values[name]; !exists {
		t.keys = append(t.keys, name)
	}
	t.values[name] = v
}

// Lookup implements Lookup.
func (t *Table) Lookup(name string) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	v, ok := t.values[name]
	return v, ok
}

// Get returns the value for name, or the missing marker.
func (t *Table) Get(name string) Value {
	v, _ := t.Lookup(name)
	return v
}

// Len returns the number of identifiers.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the identifiers in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.keys)
}

// All iterates identifiers and values in insertion order.
func (t *Table) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if t == nil {
			return
		}
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// MarshalJSON writes the table as an object in insertion order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the table as a mapping in insertion order.
func (t *Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for k, v := range t.All() {
		var val yaml.Node
		if err := val.Encode(v.Interface()); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}

type chain []Lookup

func (c chain) Lookup(name string) (Value, bool) {
	for _, l := range c {
		if v, ok := l.Lookup(name); ok {
			return v, true
		}
	}
	return Value{}, false
}

// Chain returns a Lookup that consults each lookup in order.
func Chain(lookups ...Lookup) Lookup {
	return chain(lookups)
}
