/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package brand projects light and dark variable tables into a brand
// configuration document, organised by UI component, theme and
// interaction state.
package brand

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"bennypowers.dev/brandmap/stylesheet"
)

// Theme mode keys.
const (
	LightMode = "lightMode"
	DarkMode  = "darkMode"
)

// Missing records one leaf whose identifier was absent.
type Missing struct {
	Theme stylesheet.Theme
	Name  string
	Path  string
}

// Report lists the gaps found while mapping.
type Report struct {
	Missing []Missing
}

// Err returns one ErrMissingIdentifier per gap, combined, or nil.
func (r *Report) Err() error {
	var errs error
	for _, m := range r.Missing {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s %q at %s", ErrMissingIdentifier, m.Theme, m.Name, m.Path))
	}
	return errs
}

// SubMapper writes one UI concern's fixed sub-tree.
type SubMapper struct {
	Name string
	Map  func(w *Writer)
}

// SubMappers returns the sub-mappers in the order Map applies them. Their
// sub-trees are disjoint, so the order does not affect the result.
func SubMappers() []SubMapper {
	return []SubMapper{
		{Name: "buttons", Map: mapButtons},
		{Name: "divider", Map: mapDivider},
		{Name: "focusRing", Map: mapFocusRing},
		{Name: "form", Map: mapForm},
		{Name: "statusIndicator", Map: mapStatusIndicator},
	}
}

// Map builds the brand document from the light and dark tables. Identifiers
// absent from a table become explicit missing leaves listed in the report.
func Map(light, dark stylesheet.Lookup) (Document, *Report) {
	w := NewWriter(light, dark)
	for _, sm := range SubMappers() {
		sm.Map(w)
	}
	return w.Document(), w.Report()
}

// Writer gives sub-mappers read access to the tables and write access to
// a shared Builder.
type Writer struct {
	builder *Builder
	tables  [2]stylesheet.Lookup
	report  Report
}

// NewWriter creates a writer over fresh output.
func NewWriter(light, dark stylesheet.Lookup) *Writer {
	return &Writer{builder: NewBuilder(), tables: [2]stylesheet.Lookup{light, dark}}
}

// Document returns the document written so far.
func (w *Writer) Document() Document { return w.builder.Document() }

// Report returns the gaps recorded so far.
func (w *Writer) Report() *Report { return &w.report }

// Copy writes the theme's value for name at path.
//
// Sub-mappers own fixed, disjoint sub-trees, so a collision here is a bug
// in this package and panics.
func (w *Writer) Copy(theme stylesheet.Theme, name string, path ...string) {
	var v stylesheet.Value
	if lookup := w.tables[theme]; lookup != nil {
		v, _ = lookup.Lookup(name)
	}
	if v.IsMissing() {
		w.report.Missing = append(w.report.Missing, Missing{Theme: theme, Name: name, Path: strings.Join(path, ".")})
	}
	if err := w.builder.Set(v, path...); err != nil {
		panic(fmt.Sprintf("brand sub-mappers overlap: %v", err))
	}
}

// field pairs an output property with the identifier it copies.
type field struct {
	prop     string
	variable string
}

// state is one interaction state and its fields.
type state struct {
	name   string
	fields []field
}

var themeModes = []struct {
	key   string
	theme stylesheet.Theme
}{
	{LightMode, stylesheet.Light},
	{DarkMode, stylesheet.Dark},
}

// modes writes fields under path.lightMode and path.darkMode.
func (w *Writer) modes(fields []field, path ...string) {
	for _, m := range themeModes {
		for _, f := range fields {
			w.Copy(m.theme, f.variable, slices.Concat(path, []string{m.key, f.prop})...)
		}
	}
}

// states writes each state's fields under path.<mode>.<state>.
func (w *Writer) states(states []state, path ...string) {
	for _, m := range themeModes {
		for _, s := range states {
			for _, f := range s.fields {
				w.Copy(m.theme, f.variable, slices.Concat(path, []string{m.key, s.name, f.prop})...)
			}
		}
	}
}
