/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultRootFontSize is the pixel size of 1rem.
const DefaultRootFontSize = 16

// leadingNumber matches the numeric prefix of a rem value. Shorthands such as
// "0.25rem 1rem" resolve to their first length.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// Kind classifies a resolved value.
type Kind int

const (
	// KindMissing marks an identifier that was not present in its table.
	KindMissing Kind = iota
	// KindLiteral is any value passed through unchanged.
	KindLiteral
	// KindColor is six lowercase hex digits without a leading '#'.
	KindColor
	// KindPixels is an integer pixel count.
	KindPixels
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindColor:
		return "color"
	case KindPixels:
		return "pixels"
	default:
		return "missing"
	}
}

// Value is a normalized declaration value. The zero Value is missing.
type Value struct {
	kind Kind
	text string
	px   int
}

// ColorValue returns a color value from six hex digits.
func ColorValue(hex string) Value {
	return Value{kind: KindColor, text: strings.ToLower(strings.TrimPrefix(hex, "#"))}
}

// PixelValue returns an integer pixel value.
func PixelValue(px int) Value {
	return Value{kind: KindPixels, px: px}
}

// LiteralValue returns a passthrough value.
func LiteralValue(s string) Value {
	return Value{kind: KindLiteral, text: s}
}

// MissingValue returns the explicit missing marker.
func MissingValue() Value {
	return Value{}
}

// Kind returns the value's classification.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Text returns the hex digits or literal text. It is empty for pixel and missing values.
func (v Value) Text() string { return v.text }

// Px returns the pixel count of a KindPixels value.
func (v Value) Px() int { return v.px }

// Interface returns the value as a plain string, int or nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindColor, KindLiteral:
		return v.text
	case KindPixels:
		return v.px
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindColor, KindLiteral:
		return v.text
	case KindPixels:
		return strconv.Itoa(v.px)
	default:
		return "<missing>"
	}
}

// MarshalJSON encodes missing values as null so gaps stay visible downstream.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// ResolveValue normalizes a trimmed declaration value using a 16px root font size.
//
// Rules, in order: oklch() colors become six-digit hex, rem lengths become
// rounded pixel counts, anything else is returned unchanged.
func ResolveValue(raw string) (Value, error) {
	return resolveValue(raw, DefaultRootFontSize)
}

func resolveValue(raw string, rootFontSize float64) (Value, error) {
	if strings.HasPrefix(raw, oklchPrefix) {
		return parseOKLCH(raw)
	}
	if strings.HasSuffix(raw, "rem") {
		rem, err := strconv.ParseFloat(leadingNumber.FindString(raw), 64)
		if err != nil || math.IsNaN(rem) || math.IsInf(rem, 0) {
			return Value{}, fmt.Errorf("%w: invalid rem length %q", ErrMalformedInput, raw)
		}
		return PixelValue(int(math.Floor(rem*rootFontSize + 0.5))), nil
	}
	return LiteralValue(raw), nil
}
