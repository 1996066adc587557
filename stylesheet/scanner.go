/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package stylesheet parses theme-scoped CSS custom properties into variable tables.
package stylesheet

import (
	"iter"
	"strings"
)

// Theme identifies one of the two declaration scopes.
type Theme int

const (
	// Light is the default scope, usually :root.
	Light Theme = iota
	// Dark is the alternate scope, usually .dark.
	Dark
)

// String returns the theme name.
func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// ScopeMarkers are the exact (trimmed) lines that open each theme scope.
type ScopeMarkers struct {
	Light string
	Dark  string
}

// DefaultScopeMarkers returns the markers emitted by shadcn/ui themes.
func DefaultScopeMarkers() ScopeMarkers {
	return ScopeMarkers{
		Light: ":root {",
		Dark:  ".dark {",
	}
}

func (m ScopeMarkers) withDefaults() ScopeMarkers {
	defaults := DefaultScopeMarkers()
	if m.Light == "" {
		m.Light = defaults.Light
	}
	if m.Dark == "" {
		m.Dark = defaults.Dark
	}
	return m
}

// Declaration is one raw line found inside a theme scope.
type Declaration struct {
	Theme Theme
	// Line is 1-based.
	Line int
	Text string
}

type scanState int

const (
	stateOutside scanState = iota
	stateLight
	stateDark
)

// Scan yields every non-empty declaration line found inside a theme scope.
//
// This is a line filter, not a grammar: a line consisting of "}" closes
// whatever scope is open, nested markers simply switch scope, and lines
// outside any scope are dropped.
func Scan(text string, markers ScopeMarkers) iter.Seq[Declaration] {
	markers = markers.withDefaults()
	return func(yield func(Declaration) bool) {
		state := stateOutside
		for i, raw := range strings.Split(text, "\n") {
			line := strings.TrimSpace(raw)
			switch {
			case line == markers.Light:
				state = stateLight
			case line == markers.Dark:
				state = stateDark
			case line == "}":
				state = stateOutside
			case line == "", line == "{", state == stateOutside:
				// nothing to emit
			default:
				theme := Light
				if state == stateDark {
					theme = Dark
				}
				if !yield(Declaration{Theme: theme, Line: i + 1, Text: line}) {
					return
				}
			}
		}
	}
}
