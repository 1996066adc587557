/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/brandmap/stylesheet"
)

func TestComputeRows(t *testing.T) {
	table := stylesheet.NewTable()
	table.Set("primary", stylesheet.ColorValue("112233"))
	table.Set("radius", stylesheet.PixelValue(8))
	table.Set("accent", stylesheet.LiteralValue("#ff0000"))
	table.Set("ring", stylesheet.LiteralValue("var(--border)"))
	table.Set("opacity", stylesheet.LiteralValue("100"))

	rows := ComputeRows(table)
	tests := []struct {
		name    string
		value   string
		kind    string
		isColor bool
	}{
		{"primary", "#112233", "color", true},
		{"radius", "8px", "pixels", false},
		{"accent", "#ff0000", "literal", true},
		{"ring", "var(--border)", "literal", false},
		{"opacity", "100", "literal", false},
	}
	if len(rows) != len(tests) {
		t.Fatalf("expected %d rows, got %d", len(tests), len(rows))
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rows[i]
			if r.Name != tt.name || r.Value != tt.value || r.Kind != tt.kind || r.IsColor != tt.isColor {
				t.Errorf("row %d = %+v, want %+v", i, r, tt)
			}
		})
	}
}

func TestColorSwatch(t *testing.T) {
	if got := ColorSwatch("#112233"); got != "\x1b[48;2;17;34;51m  \x1b[0m " {
		t.Errorf("unexpected swatch %q", got)
	}
	if got := ColorSwatch("var(--x)"); got != "" {
		t.Errorf("expected no swatch, got %q", got)
	}
}

func TestHeading(t *testing.T) {
	if got := Heading(stylesheet.Dark); got != "Dark" {
		t.Errorf("Heading(Dark) = %q", got)
	}
}

func TestTable(t *testing.T) {
	rows := []Row{
		{Name: "primary", Kind: "color", Value: "#112233", IsColor: true},
		{Name: "radius", Kind: "pixels", Value: "8px"},
	}

	var plain bytes.Buffer
	if err := Table(&plain, "Light", rows, false); err != nil {
		t.Fatal(err)
	}
	want := "Light (2)\n" +
		"  primary  color   #112233\n" +
		"  radius   pixels  8px\n"
	if plain.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", plain.String(), want)
	}

	var colored bytes.Buffer
	if err := Table(&colored, "Light", rows, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colored.String(), "\x1b[48;2;17;34;51m") {
		t.Error("expected a swatch for the color row")
	}
	if strings.Count(colored.String(), "\x1b[0m") != 1 {
		t.Error("expected exactly one swatch")
	}
}
