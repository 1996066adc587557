/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package brand

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/brandmap/stylesheet"
)

// Sentinel errors for brand mapping.
var (
	// ErrMissingIdentifier indicates a sub-mapper read an identifier absent from its table.
	ErrMissingIdentifier = errors.New("missing identifier")

	// ErrPathCollision indicates two writes to the same leaf, or a write through a leaf.
	ErrPathCollision = errors.New("path collision")
)

// Document is the nested brand configuration. Inner nodes are Documents and
// leaves are stylesheet.Values.
type Document map[string]any

// Leaf is one value in a Document together with its path.
type Leaf struct {
	Path  []string
	Value stylesheet.Value
}

// Key joins the path with dots.
func (l Leaf) Key() string {
	return strings.Join(l.Path, ".")
}

// Get returns the leaf at path.
func (d Document) Get(path ...string) (stylesheet.Value, bool) {
	node := d
	for i, key := range path {
		child, ok := node[key]
		if !ok {
			return stylesheet.Value{}, false
		}
		if i == len(path)-1 {
			v, ok := child.(stylesheet.Value)
			return v, ok
		}
		if node, ok = child.(Document); !ok {
			return stylesheet.Value{}, false
		}
	}
	return stylesheet.Value{}, false
}

// Leaves returns every leaf sorted by key.
func (d Document) Leaves() []Leaf {
	var leaves []Leaf
	d.walk(nil, func(path []string, v stylesheet.Value) {
		leaves = append(leaves, Leaf{Path: slices.Clone(path), Value: v})
	})
	slices.SortFunc(leaves, func(a, b Leaf) int {
		return strings.Compare(a.Key(), b.Key())
	})
	return leaves
}

func (d Document) walk(prefix []string, fn func([]string, stylesheet.Value)) {
	for key, child := range d {
		path := append(slices.Clip(prefix), key)
		switch c := child.(type) {
		case Document:
			c.walk(path, fn)
		case stylesheet.Value:
			fn(path, c)
		}
	}
}

// Builder constructs a Document from disjoint writes.
type Builder struct {
	root Document
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{root: Document{}}
}

// Set writes v at path. It never overwrites: writing to an existing leaf, or
// through a leaf as if it were a group, returns ErrPathCollision.
func (b *Builder) Set(v stylesheet.Value, path ...string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrPathCollision)
	}

	node := b.root
	for i, key := range path[:len(path)-1] {
		child, exists := node[key]
		if !exists {
			next := Document{}
			node[key] = next
			node = next
			continue
		}
		next, ok := child.(Document)
		if !ok {
			return fmt.Errorf("%w: %s is a leaf", ErrPathCollision, strings.Join(path[:i+1], "."))
		}
		node = next
	}

	last := path[len(path)-1]
	if _, exists := node[last]; exists {
		return fmt.Errorf("%w: %s already set", ErrPathCollision, strings.Join(path, "."))
	}
	node[last] = v
	return nil
}

// Document returns the document built so far.
func (b *Builder) Document() Document {
	return b.root
}
