/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"

	bmfs "bennypowers.dev/brandmap/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "brandmap"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

var (
	// ErrNoInput means the input pattern matched no stylesheet.
	ErrNoInput = errors.New("no input stylesheet")

	// ErrAmbiguousInput means the input pattern matched more than one stylesheet.
	ErrAmbiguousInput = errors.New("ambiguous input stylesheet")
)

// Find returns the path of .config/brandmap.{yaml,yml,json} under rootDir,
// or "" if there is none.
func Find(filesystem bmfs.FileSystem, rootDir string) string {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if filesystem.Exists(configPath) {
			return configPath
		}
	}
	return ""
}

// Load reads configuration into v and decodes it over the defaults.
//
// explicit names a config file to use instead of searching rootDir. Values
// already bound to v, such as command-line flags, take precedence over the
// file. A missing config file is not an error.
func Load(v *viper.Viper, filesystem bmfs.FileSystem, rootDir, explicit string) (*Config, error) {
	defaults := Default()
	v.SetDefault("rootFontSize", defaults.RootFontSize)
	v.SetDefault("scopes.light", defaults.Scopes.Light)
	v.SetDefault("scopes.dark", defaults.Scopes.Dark)

	configPath := explicit
	if configPath == "" {
		configPath = Find(filesystem, rootDir)
	}

	if configPath != "" {
		if err := readInto(v, filesystem, configPath); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", configPath, err)
	}
	cfg.Source = configPath

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readInto(v *viper.Viper, filesystem bmfs.FileSystem, configPath string) error {
	data, err := filesystem.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("%w: reading config %s: %w", bmfs.ErrIO, configPath, err)
	}

	switch ext := strings.ToLower(filepath.Ext(configPath)); ext {
	case ".json":
		// Comments and trailing commas are allowed.
		data = jsonc.ToJSON(data)
		v.SetConfigType("json")
	case ".yaml", ".yml":
		v.SetConfigType("yaml")
	default:
		return fmt.Errorf("unsupported config file type %q", ext)
	}

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parsing config %s: %w", configPath, err)
	}
	return nil
}

// ResolveInput turns the configured input into exactly one stylesheet path.
// Relative paths are taken from rootDir. Globs must match a single file.
func ResolveInput(filesystem bmfs.FileSystem, rootDir, pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: pass a stylesheet or set input in %s/%s.yaml", ErrNoInput, ConfigDir, ConfigFileName)
	}

	// Make pattern absolute if relative
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		return pattern, nil
	}

	matches, err := expandGlob(filesystem, pattern)
	if err != nil {
		return "", fmt.Errorf("%w: expanding %s: %w", bmfs.ErrIO, pattern, err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: nothing matches %s", ErrNoInput, pattern)
	case 1:
		return matches[0], nil
	default:
		slices.Sort(matches)
		return "", fmt.Errorf("%w: %s matches %s", ErrAmbiguousInput, pattern, strings.Join(matches, ", "))
	}
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem bmfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}
