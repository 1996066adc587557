/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet_test

import (
	"encoding/json"
	"regexp"
	"strconv"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/brandmap/stylesheet"
)

var sixHex = regexp.MustCompile(`^[0-9a-f]{6}$`)

func TestResolveValue_Rem(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1.5rem", 24},
		{"0.625rem", 10},
		{"1rem", 16},
		{"0rem", 0},
		{"0.03rem", 0},
		{"0.04rem", 1},
		{"2.2rem", 35},
		{"-0.5rem", -8},
		{"0.25rem 1rem", 4},
		{"1.5 rem", 24},
		{".5rem", 8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := stylesheet.ResolveValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, stylesheet.KindPixels, v.Kind())
			assert.Equal(t, tt.want, v.Px())
		})
	}
}

func TestResolveValue_Passthrough(t *testing.T) {
	for _, input := range []string{"#336699", "red", "0", "1px", "var(--primary)", "calc(1px + 2px)", ""} {
		t.Run(input, func(t *testing.T) {
			v, err := stylesheet.ResolveValue(input)
			require.NoError(t, err)
			assert.Equal(t, stylesheet.KindLiteral, v.Kind())
			assert.Equal(t, input, v.Text())
		})
	}
}

func TestResolveValue_OKLCH(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "black", input: "oklch(0 0 0)", want: "000000"},
		{name: "white", input: "oklch(1 0 0)", want: "ffffff"},
		{name: "percent lightness", input: "oklch(100% 0 0)", want: "ffffff"},
		{name: "none keyword", input: "oklch(1 none none)", want: "ffffff"},
		{name: "alpha ignored", input: "oklch(1 0 0 / 50%)", want: "ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := stylesheet.ResolveValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, stylesheet.KindColor, v.Kind())
			assert.Equal(t, tt.want, v.Text())
		})
	}
}

func TestResolveValue_OKLCHShape(t *testing.T) {
	for _, input := range []string{
		"oklch(0.98 0.01 200)",
		"oklch(0.577 0.245 27.325)",
		"oklch(0.5 0.2 1.2rad)",
		"oklch(0.5 0.2 0.25turn)",
		"oklch(0.5 0.2 100grad)",
		"oklch(0.5 50% 90deg)",
	} {
		t.Run(input, func(t *testing.T) {
			v, err := stylesheet.ResolveValue(input)
			require.NoError(t, err)
			assert.Regexp(t, sixHex, v.Text())
		})
	}
}

func TestResolveValue_OKLCHAngleUnits(t *testing.T) {
	deg, err := stylesheet.ResolveValue("oklch(0.6 0.1 90)")
	require.NoError(t, err)
	turn, err := stylesheet.ResolveValue("oklch(0.6 0.1 0.25turn)")
	require.NoError(t, err)
	grad, err := stylesheet.ResolveValue("oklch(0.6 0.1 100grad)")
	require.NoError(t, err)

	assert.Equal(t, deg.Text(), turn.Text())
	assert.Equal(t, deg.Text(), grad.Text())
}

func TestResolveValue_Malformed(t *testing.T) {
	for _, input := range []string{
		"oklch(0.5 0.1)",
		"oklch(0.5 0.1 200 300)",
		"oklch(abc 0.1 200)",
		"oklch(0.5 0.1 200px)",
		"oklch(0.5, 0.1, 200)",
		"oklch(0.5 0.1deg 200)",
		"oklch()",
		"largerem",
		"rem",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := stylesheet.ResolveValue(input)
			assert.ErrorIs(t, err, stylesheet.ErrMalformedInput)
		})
	}
}

func TestOKLCHRoundTrip(t *testing.T) {
	triples := [][3]float64{
		{0.7, 0.05, 200},
		{0.5, 0.08, 30},
		{0.9, 0.03, 100},
		{0.4, 0.1, 270},
		{0.6, 0.12, 30},
	}

	for _, in := range triples {
		col := stylesheet.OKLCHToColor(in[0], in[1], in[2])
		require.True(t, col.IsValid(), "expected %v to be inside the sRGB gamut", in)

		l, c, h := col.OkLch()
		assert.InDelta(t, in[0], l, 1e-4, "lightness for %v", in)
		assert.InDelta(t, in[1], c, 1e-4, "chroma for %v", in)
		assert.InDelta(t, in[2], h, 0.05, "hue for %v", in)

		// Through the 8-bit hex form the error is bounded by quantization.
		v, err := stylesheet.ResolveValue(oklchString(in))
		require.NoError(t, err)
		back, err := colorful.Hex("#" + v.Text())
		require.NoError(t, err)
		bl, _, _ := back.OkLch()
		assert.InDelta(t, in[0], bl, 0.01, "quantized lightness for %v", in)
	}
}

func oklchString(in [3]float64) string {
	return "oklch(" + ftoa(in[0]) + " " + ftoa(in[1]) + " " + ftoa(in[2]) + ")"
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func TestValue_Marshal(t *testing.T) {
	doc := map[string]stylesheet.Value{
		"color":   stylesheet.ColorValue("#AABBCC"),
		"px":      stylesheet.PixelValue(8),
		"literal": stylesheet.LiteralValue("red"),
		"missing": stylesheet.MissingValue(),
	}
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"aabbcc","px":8,"literal":"red","missing":null}`, string(out))
}
