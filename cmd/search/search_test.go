/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package search

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"bennypowers.dev/brandmap/stylesheet"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		query    string
		pattern  *regexp.Regexp
		expected bool
	}{
		{"simple match", "primaryForeground", "foreground", nil, true},
		{"case insensitive", "primaryForeground", "FOREGROUND", nil, true},
		{"no match", "primary", "border", nil, false},
		{"empty query", "primary", "", nil, true},
		{"empty string", "", "query", nil, false},
		{"regex match", "#112233", "", regexp.MustCompile(`^#1`), true},
		{"regex no match", "#ffffff", "", regexp.MustCompile(`^#1`), false},
		{"regex case sensitive", "Primary", "", regexp.MustCompile(`primary`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchString(tt.s, tt.query, tt.pattern)
			if got != tt.expected {
				t.Errorf("matchString(%q, %q, pattern) = %v, want %v", tt.s, tt.query, got, tt.expected)
			}
		})
	}
}

func testTables() *stylesheet.Tables {
	tables := &stylesheet.Tables{Light: stylesheet.NewTable(), Dark: stylesheet.NewTable()}
	tables.Light.Set("radius", stylesheet.PixelValue(8))
	tables.Light.Set("primary", stylesheet.ColorValue("112233"))
	tables.Light.Set("primaryForeground", stylesheet.ColorValue("ffffff"))
	tables.Dark.Set("primary", stylesheet.ColorValue("e5e5e5"))
	tables.Dark.Set("ring", stylesheet.LiteralValue("var(--primary)"))
	return tables
}

func TestSearch(t *testing.T) {
	tables := testTables()

	t.Run("name and value", func(t *testing.T) {
		matches := Search(tables, Query{Text: "primary"})
		if len(matches) != 4 {
			t.Fatalf("expected 4 matches, got %d: %v", len(matches), matches)
		}
		if matches[0].Theme != stylesheet.Light || matches[3].Row.Name != "ring" {
			t.Errorf("expected light first and declaration order, got %v", matches)
		}
	})

	t.Run("name only", func(t *testing.T) {
		matches := Search(tables, Query{Text: "primary", NameOnly: true})
		if len(matches) != 3 {
			t.Errorf("expected 3 matches, got %d", len(matches))
		}
	})

	t.Run("value only", func(t *testing.T) {
		matches := Search(tables, Query{Text: "8px", ValueOnly: true})
		if len(matches) != 1 || matches[0].Row.Name != "radius" {
			t.Errorf("unexpected matches %v", matches)
		}
	})

	t.Run("kind filter", func(t *testing.T) {
		matches := Search(tables, Query{Kind: "color"})
		if len(matches) != 3 {
			t.Errorf("expected 3 colors, got %d", len(matches))
		}
	})

	t.Run("regex", func(t *testing.T) {
		matches := Search(tables, Query{Pattern: regexp.MustCompile(`^#[ef]`), ValueOnly: true})
		if len(matches) != 2 {
			t.Errorf("expected 2 matches, got %d", len(matches))
		}
	})
}

func TestOutputs(t *testing.T) {
	matches := Search(testTables(), Query{Text: "ring"})

	var names bytes.Buffer
	if err := outputNames(&names, matches); err != nil {
		t.Fatal(err)
	}
	if names.String() != "dark.ring\n" {
		t.Errorf("unexpected names output %q", names.String())
	}

	var js bytes.Buffer
	if err := outputJSON(&js, matches); err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]string
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || decoded[0]["value"] != "var(--primary)" || decoded[0]["theme"] != "dark" {
		t.Errorf("unexpected json output %v", decoded)
	}

	var table bytes.Buffer
	if err := outputTable(&table, matches); err != nil {
		t.Fatal(err)
	}
	if table.String() != "dark   ring  literal  var(--primary)\n" {
		t.Errorf("unexpected table output %q", table.String())
	}
}
