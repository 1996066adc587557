/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"fmt"

	"go.uber.org/multierr"

	bmfs "bennypowers.dev/brandmap/fs"
	"bennypowers.dev/brandmap/internal/logger"
)

// Options configures parsing.
type Options struct {
	// Scopes are the lines that open the light and dark scopes.
	// Empty markers fall back to DefaultScopeMarkers.
	Scopes ScopeMarkers

	// RootFontSize is the pixel size of 1rem. Zero means DefaultRootFontSize.
	RootFontSize float64

	// ResolveReferences dereferences var() values once the tables are built.
	ResolveReferences bool
}

// DefaultOptions returns options for shadcn/ui style stylesheets.
func DefaultOptions() Options {
	return Options{
		Scopes:       DefaultScopeMarkers(),
		RootFontSize: DefaultRootFontSize,
	}
}

// Tables holds the light and dark variable tables produced by one parse.
type Tables struct {
	Light *Table `json:"light" yaml:"light"`
	Dark  *Table `json:"dark" yaml:"dark"`
}

// Theme returns the table for th.
func (t *Tables) Theme(th Theme) *Table {
	if th == Dark {
		return t.Dark
	}
	return t.Light
}

// Parser builds variable tables from stylesheet text.
type Parser struct {
	opts Options
}

// NewParser creates a parser.
func NewParser(opts Options) *Parser {
	if opts.RootFontSize == 0 {
		opts.RootFontSize = DefaultRootFontSize
	}
	opts.Scopes = opts.Scopes.withDefaults()
	return &Parser{opts: opts}
}

// Parse builds the light and dark tables from the stylesheet text.
//
// The tables are always returned. Declarations that could not be parsed are
// left out of them and reported in the returned error, which combines one
// *DeclarationError per failure (see multierr.Errors).
func (p *Parser) Parse(text string) (*Tables, error) {
	tables := &Tables{Light: NewTable(), Dark: NewTable()}

	var errs error
	for decl := range Scan(text, p.opts.Scopes) {
		name, raw, err := ParseDeclaration(decl.Text)
		if err == nil {
			var v Value
			v, err = resolveValue(raw, p.opts.RootFontSize)
			if err == nil {
				tables.Theme(decl.Theme).Set(name, v)
				continue
			}
		}
		declErr := &DeclarationError{Theme: decl.Theme, Line: decl.Line, Text: decl.Text, Err: err}
		logger.Warn("skipping declaration: %v", declErr)
		errs = multierr.Append(errs, declErr)
	}

	if p.opts.ResolveReferences {
		errs = multierr.Append(errs, p.resolveReferences(tables))
	}

	logger.Debug("parsed %d light and %d dark variables", tables.Light.Len(), tables.Dark.Len())
	return tables, errs
}

// ParseFile reads path through filesystem and parses it. A read failure
// wraps fs.ErrIO and returns nil tables.
func (p *Parser) ParseFile(filesystem bmfs.FileSystem, path string) (*Tables, error) {
	text, err := bmfs.ReadText(filesystem, path)
	if err != nil {
		return nil, err
	}
	return p.Parse(text)
}

// Parse builds tables with DefaultOptions.
func Parse(text string) (*Tables, error) {
	return NewParser(DefaultOptions()).Parse(text)
}

// resolveReferences replaces var() values in place. Dark lookups fall back
// to the light table, mirroring how .dark overrides :root. Values that
// cannot be resolved keep their raw text and are reported.
func (p *Parser) resolveReferences(tables *Tables) error {
	var errs error
	for _, th := range []Theme{Light, Dark} {
		table := tables.Theme(th)
		lookup := Lookup(table)
		if th == Dark {
			lookup = Chain(tables.Dark, tables.Light)
		}

		resolved := make(map[string]Value, table.Len())
		for name, v := range table.All() {
			r := referenceResolver{lookup: lookup, rootFontSize: p.opts.RootFontSize, path: []string{name}}
			out, err := r.resolve(v)
			if err != nil {
				logger.Warn("%s %s: %v", th, name, err)
				errs = multierr.Append(errs, fmt.Errorf("%s %s: %w", th, name, err))
				continue
			}
			resolved[name] = out
		}
		for name, v := range resolved {
			table.Set(name, v)
		}
	}
	return errs
}
