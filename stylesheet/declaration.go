/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseDeclaration splits a `--raw-key: raw-value;` line into its canonical
// identifier and trimmed value. Only the first colon separates key from value.
func ParseDeclaration(line string) (name, value string, err error) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", fmt.Errorf("%w: declaration has no ':'", ErrMalformedInput)
	}

	name = CanonicalName(strings.TrimPrefix(strings.TrimSpace(key), "--"))
	if name == "" {
		return "", "", fmt.Errorf("%w: declaration has an empty name", ErrMalformedInput)
	}

	value = strings.TrimSpace(value)
	value = strings.TrimSpace(strings.TrimSuffix(value, ";"))
	return name, value, nil
}

// CanonicalName converts a hyphen, underscore or space delimited key into a
// lower camel identifier: "primary-foreground" becomes "primaryForeground".
// The first character is always lowered.
func CanonicalName(key string) string {
	upper := cases.Upper(language.Und)

	var sb strings.Builder
	sb.Grow(len(key))
	upperNext := false
	for _, r := range key {
		if isWordBoundary(r) {
			upperNext = true
			continue
		}
		if upperNext {
			sb.WriteString(upper.String(string(r)))
			upperNext = false
			continue
		}
		sb.WriteRune(r)
	}

	s := sb.String()
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return cases.Lower(language.Und).String(string(first)) + s[size:]
}

func isWordBoundary(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}
