/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for brandmap.
package config

import (
	"strings"

	"bennypowers.dev/brandmap/generate"
	"bennypowers.dev/brandmap/stylesheet"
)

// Scopes names the lines that open the light and dark scopes.
type Scopes struct {
	Light string `mapstructure:"light" yaml:"light" json:"light" validate:"omitempty,scope_marker"`
	Dark  string `mapstructure:"dark" yaml:"dark" json:"dark" validate:"omitempty,scope_marker,nefield=Light"`
}

// Config represents the brandmap configuration.
type Config struct {
	// Input is the stylesheet path. It may be a doublestar glob matching one file.
	Input string `mapstructure:"input" yaml:"input" json:"input"`

	// Output is the document path. Empty writes to stdout.
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Format is the output format. Empty infers it from Output.
	Format string `mapstructure:"format" yaml:"format" json:"format" validate:"omitempty,oneof=json yaml yml flat-json flatjson typescript ts"`

	// Delimiter joins leaf paths in flat-json output.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter" json:"delimiter" validate:"omitempty,max=3"`

	// ExportName names the TypeScript export.
	ExportName string `mapstructure:"exportName" yaml:"exportName" json:"exportName" validate:"omitempty,alpha"`

	// RGBAHex writes colors as rrggbbaa.
	RGBAHex bool `mapstructure:"rgbaHex" yaml:"rgbaHex" json:"rgbaHex"`

	// ResolveReferences dereferences var() values before mapping.
	ResolveReferences bool `mapstructure:"resolveReferences" yaml:"resolveReferences" json:"resolveReferences"`

	// RootFontSize is the pixel size of 1rem.
	RootFontSize float64 `mapstructure:"rootFontSize" yaml:"rootFontSize" json:"rootFontSize" validate:"gt=0,lte=1000"`

	// Fetch fetches npm: inputs from unpkg.com when they are not installed.
	Fetch bool `mapstructure:"fetch" yaml:"fetch" json:"fetch"`

	Scopes Scopes `mapstructure:"scopes" yaml:"scopes" json:"scopes"`

	// Source is the config file the values came from, if any.
	Source string `mapstructure:"-" yaml:"-" json:"-"`
}

// Default returns a config with default values.
func Default() *Config {
	markers := stylesheet.DefaultScopeMarkers()
	return &Config{
		RootFontSize: stylesheet.DefaultRootFontSize,
		Scopes:       Scopes{Light: markers.Light, Dark: markers.Dark},
	}
}

// ParserOptions returns stylesheet.Options with configuration applied.
func (c *Config) ParserOptions() stylesheet.Options {
	return stylesheet.Options{
		Scopes: stylesheet.ScopeMarkers{
			Light: strings.TrimSpace(c.Scopes.Light),
			Dark:  strings.TrimSpace(c.Scopes.Dark),
		},
		RootFontSize:      c.RootFontSize,
		ResolveReferences: c.ResolveReferences,
	}
}

// OutputFormat returns the configured format, inferred from Output when unset.
func (c *Config) OutputFormat() (generate.Format, error) {
	if c.Format == "" {
		return generate.FormatForPath(c.Output), nil
	}
	return generate.ParseFormat(c.Format)
}

// GenerateOptions returns generate.Options with configuration applied.
func (c *Config) GenerateOptions() generate.Options {
	return generate.Options{RGBAHex: c.RGBAHex, Delimiter: c.Delimiter, ExportName: c.ExportName}
}
