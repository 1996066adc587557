/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"fmt"
	"slices"
	"strings"
)

// ResolveReference dereferences var(--name) and var(--name, fallback)
// against lookup, following chains to any depth.
//
// A present identifier is always used, even when its stored value is empty;
// the fallback only applies when the identifier is absent. An absent
// identifier without a fallback leaves the original text unchanged, as does
// any value that is not a reference. Revisiting an identifier on the current
// chain returns ErrCyclicReference.
func ResolveReference(lookup Lookup, raw string) (Value, error) {
	r := referenceResolver{lookup: lookup, rootFontSize: DefaultRootFontSize}
	return r.resolve(LiteralValue(raw))
}

// ReferenceName returns the canonical identifier raw refers to, if raw is
// exactly one var() call.
func ReferenceName(raw string) (string, bool) {
	ref, ok := parseReference(raw)
	return ref.name, ok
}

type referenceResolver struct {
	lookup       Lookup
	rootFontSize float64
	path         []string
}

func (r *referenceResolver) resolve(v Value) (Value, error) {
	if v.Kind() != KindLiteral {
		return v, nil
	}
	ref, ok := parseReference(v.Text())
	if !ok {
		return v, nil
	}

	if slices.Contains(r.path, ref.name) {
		cycle := append(slices.Clone(r.path), ref.name)
		return Value{}, fmt.Errorf("%w: %s", ErrCyclicReference, strings.Join(cycle, " -> "))
	}

	if stored, found := r.lookup.Lookup(ref.name); found {
		r.path = append(r.path, ref.name)
		defer func() { r.path = r.path[:len(r.path)-1] }()
		return r.resolve(stored)
	}

	if ref.fallback != "" {
		fallback, err := resolveValue(ref.fallback, r.rootFontSize)
		if err != nil {
			return Value{}, err
		}
		return r.resolve(fallback)
	}

	return v, nil
}

type reference struct {
	name     string
	fallback string
}

// parseReference recognizes a value that is exactly one var() call.
// Parentheses inside the fallback are balanced so nested var() calls and
// functional colors survive intact.
func parseReference(s string) (reference, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "var(") || !strings.HasSuffix(s, ")") {
		return reference{}, false
	}

	inner := s[len("var(") : len(s)-1]
	depth := 0
	comma := -1
	for i, r := range inner {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				// the opening var( closed before the end: not a single call
				return reference{}, false
			}
		case ',':
			if depth == 0 && comma < 0 {
				comma = i
			}
		}
	}
	if depth != 0 {
		return reference{}, false
	}

	rawName := inner
	var fallback string
	if comma >= 0 {
		rawName = inner[:comma]
		fallback = strings.TrimSpace(inner[comma+1:])
	}
	rawName = strings.TrimSpace(rawName)
	if !strings.HasPrefix(rawName, "--") || !isIdentifier(rawName[2:]) {
		return reference{}, false
	}

	return reference{name: CanonicalName(rawName[2:]), fallback: fallback}, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
