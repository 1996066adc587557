/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports problems in a theme stylesheet that would
// degrade the brand document built from it.
package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/multierr"

	"bennypowers.dev/brandmap/brand"
	"bennypowers.dev/brandmap/stylesheet"
)

// Severity ranks a ValidationError.
type Severity int

const (
	// SeverityWarning marks output that is still produced, with gaps.
	SeverityWarning Severity = iota
	// SeverityError marks a declaration that was dropped or cannot resolve.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// ValidationError represents one problem found in a stylesheet.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path locates the problem: a theme and line, a theme and identifier,
	// or a brand document path.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
	Severity   Severity
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate inspects a parse result and the mapping report built from it.
//
// parseErr is the error returned with the tables by stylesheet.Parser.
// Findings are ordered: parse problems, then references, then identifiers
// the brand document needs but the stylesheet does not declare.
func Validate(filePath string, tables *stylesheet.Tables, parseErr error, report *brand.Report) []ValidationError {
	var found []ValidationError
	add := func(e ValidationError) {
		e.FilePath = filePath
		found = append(found, e)
	}

	for _, err := range multierr.Errors(parseErr) {
		// Unresolved values keep their var() text, so cycles are reported
		// by checkReferences below.
		if errors.Is(err, stylesheet.ErrCyclicReference) {
			continue
		}
		add(fromParseError(err))
	}
	if tables != nil {
		for _, e := range checkReferences(tables) {
			add(e)
		}
	}
	if report != nil {
		for _, m := range report.Missing {
			add(ValidationError{
				Path:       m.Path,
				Message:    fmt.Sprintf("%s theme does not declare %q", m.Theme, m.Name),
				Suggestion: fmt.Sprintf("add --%s to the %s scope", kebab(m.Name), m.Theme),
				Severity:   SeverityWarning,
			})
		}
	}
	return found
}

// HasErrors reports whether any finding is at least severity min.
func HasErrors(found []ValidationError, min Severity) bool {
	for _, e := range found {
		if e.Severity >= min {
			return true
		}
	}
	return false
}

func fromParseError(err error) ValidationError {
	var declErr *stylesheet.DeclarationError
	if errors.As(err, &declErr) {
		return ValidationError{
			Path:       fmt.Sprintf("%s line %d", declErr.Theme, declErr.Line),
			Message:    fmt.Sprintf("%q: %v", declErr.Text, declErr.Err),
			Suggestion: "declarations take the form --name: value;",
			Severity:   SeverityError,
		}
	}
	return ValidationError{Message: err.Error(), Severity: SeverityError}
}

// checkReferences finds var() values that loop or point at nothing. Dark
// references may resolve through the light table.
func checkReferences(tables *stylesheet.Tables) []ValidationError {
	var found []ValidationError
	for _, th := range []stylesheet.Theme{stylesheet.Light, stylesheet.Dark} {
		table := tables.Theme(th)
		if table == nil {
			continue
		}
		lookup := stylesheet.Lookup(table)
		if th == stylesheet.Dark {
			lookup = stylesheet.Chain(tables.Dark, tables.Light)
		}

		for name, v := range table.All() {
			if v.Kind() != stylesheet.KindLiteral {
				continue
			}
			if _, ok := stylesheet.ReferenceName(v.Text()); !ok {
				continue
			}
			path := fmt.Sprintf("%s %s", th, name)

			resolved, err := stylesheet.ResolveReference(lookup, v.Text())
			switch {
			case errors.Is(err, stylesheet.ErrCyclicReference):
				found = append(found, ValidationError{Path: path, Message: err.Error(), Suggestion: "break the var() cycle", Severity: SeverityError})
			case err != nil:
				found = append(found, ValidationError{Path: path, Message: err.Error(), Severity: SeverityError})
			default:
				if target, dangling := stylesheet.ReferenceName(resolved.Text()); dangling && resolved.Kind() == stylesheet.KindLiteral {
					found = append(found, ValidationError{
						Path:       path,
						Message:    fmt.Sprintf("%s refers to undeclared %q", v.Text(), target),
						Suggestion: fmt.Sprintf("declare --%s or give the var() a fallback", kebab(target)),
						Severity:   SeverityWarning,
					})
				}
			}
		}
	}
	return found
}

// kebab turns a canonical identifier back into a custom property name. Upper
// case letters and the start of a digit run each begin a new word, so chart1
// becomes chart-1.
func kebab(name string) string {
	var sb strings.Builder
	prev := rune(0)
	for i, r := range name {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				sb.WriteByte('-')
			}
			r = unicode.ToLower(r)
		case unicode.IsDigit(r) && i > 0 && !unicode.IsDigit(prev):
			sb.WriteByte('-')
		}
		sb.WriteRune(r)
		prev = r
	}
	return sb.String()
}
