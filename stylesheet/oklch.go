/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

const oklchPrefix = "oklch("

// chromaReference is the chroma that 100% maps to in CSS Color 4.
const chromaReference = 0.4

// OKLCHToColor converts lightness (0-1), chroma and hue in degrees to an
// unclamped sRGB color.
func OKLCHToColor(l, c, h float64) colorful.Color {
	return colorful.OkLch(l, c, h)
}

// parseOKLCH converts an oklch() value to a six digit hex color. Colors
// outside the sRGB gamut are clamped; alpha is ignored.
func parseOKLCH(raw string) (Value, error) {
	body := strings.TrimPrefix(raw, oklchPrefix)
	body = strings.TrimSuffix(strings.TrimSpace(body), ")")

	components, err := lexOKLCH(body)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q: %v", ErrMalformedInput, raw, err)
	}

	col := OKLCHToColor(components[0], components[1], components[2])
	return ColorValue(col.Clamped().Hex()), nil
}

// lexOKLCH tokenizes the oklch() arguments and returns exactly three
// components. An optional "/ alpha" tail is skipped.
func lexOKLCH(body string) ([3]float64, error) {
	var out [3]float64
	n := 0

	lexer := css.NewLexer(parse.NewInputString(body))
tokens:
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return out, err
			}
			break tokens
		case css.WhitespaceToken:
			continue
		case css.DelimToken:
			if string(data) == "/" {
				break tokens
			}
			return out, fmt.Errorf("unexpected %q", data)
		case css.NumberToken, css.PercentageToken, css.DimensionToken, css.IdentToken:
			if n == len(out) {
				return out, fmt.Errorf("too many components")
			}
			v, err := oklchComponent(n, tt, data)
			if err != nil {
				return out, err
			}
			out[n] = v
			n++
		default:
			return out, fmt.Errorf("unexpected %q", data)
		}
	}

	if n != len(out) {
		return out, fmt.Errorf("expected 3 components, got %d", n)
	}
	return out, nil
}

func oklchComponent(index int, tt css.TokenType, data []byte) (float64, error) {
	s := string(data)
	switch tt {
	case css.IdentToken:
		if strings.EqualFold(s, "none") {
			return 0, nil
		}
	case css.NumberToken:
		return parseFinite(s)
	case css.PercentageToken:
		pct, err := parseFinite(strings.TrimSuffix(s, "%"))
		if err != nil {
			return 0, err
		}
		switch index {
		case 0:
			return pct / 100, nil
		case 1:
			return pct / 100 * chromaReference, nil
		}
	case css.DimensionToken:
		if index != 2 {
			break
		}
		end := parse.Number(data)
		if end == 0 {
			break
		}
		angle, err := parseFinite(s[:end])
		if err != nil {
			return 0, err
		}
		return toDegrees(angle, strings.ToLower(s[end:]))
	}
	return 0, fmt.Errorf("invalid component %d %q", index+1, s)
}

func toDegrees(angle float64, unit string) (float64, error) {
	switch unit {
	case "deg":
		return angle, nil
	case "rad":
		return angle * 180 / math.Pi, nil
	case "grad":
		return angle * 0.9, nil
	case "turn":
		return angle * 360, nil
	default:
		return 0, fmt.Errorf("unknown angle unit %q", unit)
	}
}

func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return f, nil
}
