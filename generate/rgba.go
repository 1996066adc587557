/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/brandmap/brand"
	"bennypowers.dev/brandmap/stylesheet"
)

// RGBAHex converts any CSS color to eight lowercase hex digits with the
// alpha channel last. Six-digit values without '#' are accepted as well.
func RGBAHex(color string) (string, error) {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		c, err = csscolorparser.Parse("#" + color)
		if err != nil {
			return "", fmt.Errorf("not a color: %q", color)
		}
	}
	return rgbaDigits(c), nil
}

func rgbaDigits(c csscolorparser.Color) string {
	r, g, b, a := c.RGBA255()
	return fmt.Sprintf("%02x%02x%02x%02x", r, g, b, a)
}

// toRGBAHex copies doc, rewriting color leaves and any literal leaf that
// parses as a CSS color. Other leaves are kept as they are.
func toRGBAHex(doc brand.Document) brand.Document {
	out := make(brand.Document, len(doc))
	for key, child := range doc {
		switch c := child.(type) {
		case brand.Document:
			out[key] = toRGBAHex(c)
		case stylesheet.Value:
			out[key] = rgbaLeaf(c)
		default:
			out[key] = child
		}
	}
	return out
}

func rgbaLeaf(v stylesheet.Value) stylesheet.Value {
	switch v.Kind() {
	case stylesheet.KindColor:
		if hex, err := RGBAHex(v.Text()); err == nil {
			return stylesheet.LiteralValue(hex)
		}
	case stylesheet.KindLiteral:
		if bareHex(v.Text()) {
			break
		}
		if c, err := csscolorparser.Parse(v.Text()); err == nil {
			return stylesheet.LiteralValue(rgbaDigits(c))
		}
	}
	return v
}

// bareHex reports whether s is made only of hex digits. Literal text like
// "bad" or "100" is kept as is rather than read as a color.
func bareHex(s string) bool {
	return strings.Trim(s, "0123456789abcdefABCDEF") == ""
}
