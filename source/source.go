/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package source locates and reads input stylesheets.
//
// A specifier is a local path, a doublestar glob matching one file, or an
// npm: specifier resolved through node_modules. With a Fetcher set, npm:
// specifiers that are not installed are fetched from unpkg.com instead.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"bennypowers.dev/brandmap/config"
	bmfs "bennypowers.dev/brandmap/fs"
	"bennypowers.dev/brandmap/internal/logger"
	"bennypowers.dev/brandmap/stylesheet"
)

var (
	// ErrLocalResolution indicates that local filesystem resolution failed.
	ErrLocalResolution = errors.New("local resolution failed")

	// ErrNetworkFallback indicates that the CDN network fallback also failed.
	ErrNetworkFallback = errors.New("network fallback failed")
)

// Loader reads stylesheets relative to a root directory.
type Loader struct {
	// FS is the filesystem inputs are read from and outputs written to.
	FS bmfs.FileSystem

	// Root is the directory relative specifiers are resolved against.
	Root string

	// Fetcher enables CDN fallback for npm: specifiers. Nil disables it.
	Fetcher Fetcher

	// Timeout bounds each fetch. Zero means DefaultTimeout.
	Timeout time.Duration
}

// NewLoader creates a loader without network fallback.
func NewLoader(filesystem bmfs.FileSystem, root string) *Loader {
	return &Loader{FS: filesystem, Root: root}
}

// New creates a loader for cfg. cfg.Fetch enables the CDN fallback.
func New(filesystem bmfs.FileSystem, root string, cfg *config.Config) *Loader {
	l := NewLoader(filesystem, root)
	if cfg.Fetch {
		l.Fetcher = NewHTTPFetcher(DefaultMaxSize)
	}
	return l
}

// Resolve returns the local path spec names.
func (l *Loader) Resolve(spec string) (string, error) {
	s := Parse(spec)
	if s.Kind == KindNPM {
		return l.resolveNPM(s)
	}
	return config.ResolveInput(l.FS, l.Root, spec)
}

// resolveNPM walks up from Root looking for node_modules/<pkg>/<file>.
func (l *Loader) resolveNPM(s Specifier) (string, error) {
	dir := l.Root
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}
		dir = abs
	}
	start := dir

	for {
		candidate := filepath.Join(dir, "node_modules", s.Package, s.File)
		if l.FS.Exists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: %s not installed (looked in node_modules from %s)", config.ErrNoInput, s.Package, start)
}

// Read returns the stylesheet text spec names and where it was read from,
// a path or a URL.
func (l *Loader) Read(ctx context.Context, spec string) (text, origin string, err error) {
	path, localErr := l.Resolve(spec)
	if localErr == nil {
		text, localErr = bmfs.ReadText(l.FS, path)
		if localErr == nil {
			return text, path, nil
		}
	}
	return l.fetch(ctx, Parse(spec), localErr)
}

// fetch tries the CDN copy of an npm specifier. Without a fetcher, or for
// local specifiers, the local error is returned unchanged.
func (l *Loader) fetch(ctx context.Context, s Specifier, localErr error) (string, string, error) {
	if l.Fetcher == nil {
		return "", "", localErr
	}
	url, ok := s.CDNURL()
	if !ok {
		return "", "", localErr
	}

	timeout := l.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.Debug("%v; fetching %s", localErr, url)
	content, fetchErr := l.Fetcher.Fetch(ctx, url)
	if fetchErr != nil {
		return "", "", fmt.Errorf("%w (%w), %w: %w", ErrLocalResolution, localErr, ErrNetworkFallback, fetchErr)
	}
	return string(content), url, nil
}

// Tables reads spec and parses it with opts. The tables are nil only when
// the stylesheet could not be read; otherwise the error reports skipped
// declarations as stylesheet.Parser.Parse does.
func (l *Loader) Tables(ctx context.Context, spec string, opts stylesheet.Options) (*stylesheet.Tables, string, error) {
	text, origin, err := l.Read(ctx, spec)
	if err != nil {
		return nil, "", err
	}
	tables, err := stylesheet.NewParser(opts).Parse(text)
	return tables, origin, err
}

// OutputPath joins a relative path to the loader root.
func (l *Loader) OutputPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Root, path)
}
