/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate_test

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/brandmap/brand"
	bmfs "bennypowers.dev/brandmap/fs"
	"bennypowers.dev/brandmap/generate"
	"bennypowers.dev/brandmap/internal/logger"
	"bennypowers.dev/brandmap/internal/mapfs"
	"bennypowers.dev/brandmap/stylesheet"
	"bennypowers.dev/brandmap/testutil"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func globalsDocument(t *testing.T) brand.Document {
	t.Helper()
	tables, err := stylesheet.Parse(string(testutil.LoadFixtureFile(t, "shadcn/globals.css")))
	require.NoError(t, err)
	doc, report := brand.Map(tables.Light, tables.Dark)
	require.NoError(t, report.Err())
	return doc
}

func TestRender_JSONGolden(t *testing.T) {
	got, err := generate.Render(globalsDocument(t), generate.FormatJSON, generate.Options{})
	require.NoError(t, err)

	testutil.UpdateGoldenFile(t, "golden/globals.json", got)
	want := testutil.LoadFixtureFile(t, "golden/globals.json")
	assert.JSONEq(t, string(want), string(got))
	assert.Equal(t, byte('\n'), got[len(got)-1])
}

func TestRender_YAML(t *testing.T) {
	got, err := generate.Render(globalsDocument(t), generate.FormatYAML, generate.Options{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(got, &decoded))
	components := decoded["componentClasses"].(map[string]any)
	buttons := components["buttons"].(map[string]any)
	assert.Equal(t, 8, buttons["borderRadius"])
	focus := components["focusState"].(map[string]any)["lightMode"].(map[string]any)
	assert.Equal(t, "#a3a3a3", focus["borderColor"])
}

func TestRender_MissingIsNull(t *testing.T) {
	doc, _ := brand.Map(stylesheet.NewTable(), stylesheet.NewTable())
	got, err := generate.Render(doc, generate.FormatJSON, generate.Options{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(got, &decoded))
	ring := decoded["componentClasses"].(map[string]any)["focusState"].(map[string]any)["darkMode"].(map[string]any)
	value, present := ring["borderColor"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestRender_RGBAHex(t *testing.T) {
	b := brand.NewBuilder()
	require.NoError(t, b.Set(stylesheet.ColorValue("112233"), "a"))
	require.NoError(t, b.Set(stylesheet.LiteralValue("#ffffff"), "b"))
	require.NoError(t, b.Set(stylesheet.LiteralValue("rgba(255, 0, 0, 0.5)"), "c"))
	require.NoError(t, b.Set(stylesheet.LiteralValue("bad"), "d"))
	require.NoError(t, b.Set(stylesheet.PixelValue(8), "e"))
	require.NoError(t, b.Set(stylesheet.MissingValue(), "f"))

	got, err := generate.Render(b.Document(), generate.FormatJSON, generate.Options{RGBAHex: true})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(got, &decoded))
	assert.Equal(t, "112233ff", decoded["a"])
	assert.Equal(t, "ffffffff", decoded["b"])
	assert.Equal(t, "ff000080", decoded["c"])
	assert.Equal(t, "bad", decoded["d"])
	assert.Equal(t, float64(8), decoded["e"])
	assert.Nil(t, decoded["f"])
}

func TestRender_FlatJSON(t *testing.T) {
	got, err := generate.Render(globalsDocument(t), generate.FormatFlatJSON, generate.Options{})
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(got, &flat))
	assert.Len(t, flat, 59)
	assert.Equal(t, "#112233", flat["components.primaryButton.lightMode.defaults.backgroundColor"])
	assert.Equal(t, float64(8), flat["componentClasses.buttons.borderRadius"])

	got, err = generate.Render(globalsDocument(t), generate.FormatFlatJSON, generate.Options{Delimiter: "/"})
	require.NoError(t, err)
	assert.Contains(t, string(got), `"components/alert/borderRadius": 8`)
}

func TestRender_TypeScript(t *testing.T) {
	got, err := generate.Render(globalsDocument(t), generate.FormatTypeScript, generate.Options{ExportName: "acme"})
	require.NoError(t, err)

	out := string(got)
	assert.True(t, strings.HasPrefix(out, "// Generated by brandmap. Do not edit.\n\nexport const acme = {\n"))
	assert.Contains(t, out, "} as const;\n")
	assert.True(t, strings.HasSuffix(out, "export type Acme = typeof acme;\n"))

	start := strings.Index(out, "{")
	end := strings.LastIndex(out, "} as const")
	assert.JSONEq(t, string(testutil.LoadFixtureFile(t, "golden/globals.json")), out[start:end+1])
}

func TestRGBAHex(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "#112233", want: "112233ff"},
		{in: "112233", want: "112233ff"},
		{in: "#11223380", want: "11223380"},
		{in: "white", want: "ffffffff"},
		{in: "not a color", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := generate.RGBAHex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"", "json", "JSON"} {
		f, err := generate.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, generate.FormatJSON, f)
	}
	for _, in := range []string{"yaml", "yml"} {
		f, err := generate.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, generate.FormatYAML, f)
	}
	for in, want := range map[string]generate.Format{"flat-json": generate.FormatFlatJSON, "ts": generate.FormatTypeScript} {
		f, err := generate.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, f)
	}
	_, err := generate.ParseFormat("toml")
	assert.Error(t, err)

	_, err = generate.FormatterFor("toml")
	assert.Error(t, err)

	assert.Equal(t, generate.FormatYAML, generate.FormatForPath("out/brand.yml"))
	assert.Equal(t, generate.FormatTypeScript, generate.FormatForPath("src/brand.ts"))
	assert.Equal(t, generate.FormatJSON, generate.FormatForPath("brand.json"))
}

func TestWriteDocument(t *testing.T) {
	mfs := mapfs.New()
	err := generate.WriteDocument(mfs, globalsDocument(t), "/out/brand/config.json", generate.FormatJSON, generate.Options{})
	require.NoError(t, err)

	content, ok := mfs.Content("/out/brand/config.json")
	require.True(t, ok)
	assert.JSONEq(t, string(testutil.LoadFixtureFile(t, "golden/globals.json")), content)
}

func TestWrite_Failure(t *testing.T) {
	mfs := mapfs.New()
	mfs.FailWrites("out.json", errors.New("disk full"))

	err := generate.Write(mfs, "out.json", []byte("{}\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, bmfs.ErrIO))
	assert.Contains(t, err.Error(), "disk full")
}
