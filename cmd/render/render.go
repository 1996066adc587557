/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/brandmap/stylesheet"
)

// Row holds computed display values for a single variable.
type Row struct {
	Name    string // canonical identifier
	Kind    string // value kind
	Value   string // display value
	IsColor bool   // whether Value parses as a CSS color
}

// ComputeRows transforms a table into display rows, in declaration order.
func ComputeRows(table *stylesheet.Table) []Row {
	rows := make([]Row, 0, table.Len())
	for name, v := range table.All() {
		row := Row{Name: name, Kind: v.Kind().String(), Value: DisplayValue(v)}
		if _, err := csscolorparser.Parse(row.Value); err == nil && !isNumeric(row.Value) {
			row.IsColor = true
		}
		rows = append(rows, row)
	}
	return rows
}

// DisplayValue formats a value the way it appears in CSS.
func DisplayValue(v stylesheet.Value) string {
	switch v.Kind() {
	case stylesheet.KindColor:
		return "#" + v.Text()
	case stylesheet.KindPixels:
		return fmt.Sprintf("%dpx", v.Px())
	default:
		return v.String()
	}
}

// isNumeric catches bare numbers, which csscolorparser may read as hex.
func isNumeric(s string) bool {
	return strings.Trim(s, "0123456789.-") == ""
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, kind int) {
	name, kind = 4, 4 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		kind = max(kind, len(r.Kind))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Heading title-cases a theme name for section headings.
func Heading(theme stylesheet.Theme) string {
	return cases.Title(language.English).String(theme.String())
}

// Table renders rows under a heading. Swatches are drawn only when color is true.
func Table(w io.Writer, heading string, rows []Row, color bool) error {
	if _, err := fmt.Fprintf(w, "%s (%d)\n", heading, len(rows)); err != nil {
		return err
	}
	nameW, kindW := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if color && r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		if _, err := fmt.Fprintf(w, "  %-*s  %-*s  %s%s\n", nameW, r.Name, kindW, r.Kind, swatch, r.Value); err != nil {
			return err
		}
	}
	return nil
}
