/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package source

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/brandmap/config"
	bmfs "bennypowers.dev/brandmap/fs"
	"bennypowers.dev/brandmap/internal/logger"
	"bennypowers.dev/brandmap/internal/mapfs"
	"bennypowers.dev/brandmap/testutil"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeFetcher struct {
	content []byte
	err     error
	urls    []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.content, f.err
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec    string
		kind    Kind
		pkg     string
		file    string
		wantURL string
	}{
		{spec: "npm:@acme/theme/dist/globals.css", kind: KindNPM, pkg: "@acme/theme", file: "dist/globals.css", wantURL: "https://unpkg.com/@acme/theme/dist/globals.css"},
		{spec: "npm:theme/globals.css", kind: KindNPM, pkg: "theme", file: "globals.css", wantURL: "https://unpkg.com/theme/globals.css"},
		{spec: "npm:@acme/theme", kind: KindLocal, file: "npm:@acme/theme"},
		{spec: "app/globals.css", kind: KindLocal, file: "app/globals.css"},
		{spec: "**/globals.css", kind: KindLocal, file: "**/globals.css"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			s := Parse(tt.spec)
			assert.Equal(t, tt.kind, s.Kind)
			assert.Equal(t, tt.pkg, s.Package)
			assert.Equal(t, tt.file, s.File)
			url, ok := s.CDNURL()
			assert.Equal(t, tt.wantURL != "", ok)
			assert.Equal(t, tt.wantURL, url)
		})
	}
}

func TestLoader_ResolveNPM(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/repo/node_modules/@acme/theme/globals.css", ":root {\n}\n", 0o644)

	l := NewLoader(mfs, "/repo/packages/site")
	path, err := l.Resolve("npm:@acme/theme/globals.css")
	require.NoError(t, err)
	assert.Equal(t, "/repo/node_modules/@acme/theme/globals.css", path)

	_, err = l.Resolve("npm:@acme/other/globals.css")
	assert.True(t, errors.Is(err, config.ErrNoInput), "got %v", err)
}

func TestLoader_ReadLocal(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "/project", "shadcn/globals.css")
	l := NewLoader(mfs, "/project")

	text, origin, err := l.Read(context.Background(), "**/globals.css")
	require.NoError(t, err)
	assert.Equal(t, "/project/shadcn/globals.css", origin)
	assert.Contains(t, text, "--primary")
}

func TestLoader_FetchFallback(t *testing.T) {
	css := ":root {\n  --primary: #112233;\n}\n"
	f := &fakeFetcher{content: []byte(css)}
	l := NewLoader(mapfs.New(), "/project")
	l.Fetcher = f

	tables, origin, err := l.Tables(context.Background(), "npm:@acme/theme/globals.css", config.Default().ParserOptions())
	require.NoError(t, err)
	assert.Equal(t, "https://unpkg.com/@acme/theme/globals.css", origin)
	assert.Equal(t, []string{origin}, f.urls)

	v, ok := tables.Light.Lookup("primary")
	require.True(t, ok)
	assert.Equal(t, "#112233", v.Text())
}

func TestLoader_FetchFailure(t *testing.T) {
	f := &fakeFetcher{err: errors.New("offline")}
	l := NewLoader(mapfs.New(), "/project")
	l.Fetcher = f

	_, _, err := l.Read(context.Background(), "npm:@acme/theme/globals.css")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLocalResolution))
	assert.True(t, errors.Is(err, ErrNetworkFallback))
	assert.True(t, errors.Is(err, config.ErrNoInput))
}

func TestLoader_NoFallbackForLocal(t *testing.T) {
	f := &fakeFetcher{content: []byte(":root {\n}\n")}
	l := NewLoader(mapfs.New(), "/project")
	l.Fetcher = f

	_, _, err := l.Read(context.Background(), "missing.css")
	assert.True(t, errors.Is(err, bmfs.ErrIO), "got %v", err)
	assert.Empty(t, f.urls)
}

func TestLoader_NoFetcher(t *testing.T) {
	l := New(mapfs.New(), "/project", config.Default())
	assert.Nil(t, l.Fetcher)

	_, _, err := l.Read(context.Background(), "npm:@acme/theme/globals.css")
	assert.True(t, errors.Is(err, config.ErrNoInput))
	assert.False(t, errors.Is(err, ErrNetworkFallback))

	cfg := config.Default()
	cfg.Fetch = true
	assert.NotNil(t, New(mapfs.New(), "/project", cfg).Fetcher)
}

func TestLoader_OutputPath(t *testing.T) {
	l := NewLoader(mapfs.New(), "/project")
	assert.Equal(t, "/project/dist/brand.json", l.OutputPath("dist/brand.json"))
	assert.Equal(t, "/tmp/brand.json", l.OutputPath("/tmp/brand.json"))
}
