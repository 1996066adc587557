/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate serializes brand documents and writes them to disk.
package generate

import (
	"fmt"
	"strings"

	"bennypowers.dev/brandmap/brand"
)

// Format represents an output format for brand documents.
type Format string

const (
	// FormatJSON outputs indented JSON (default).
	FormatJSON Format = "json"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"

	// FormatFlatJSON outputs one JSON object keyed by joined leaf paths.
	FormatFlatJSON Format = "flat-json"

	// FormatTypeScript outputs an ESM module exporting the document as const.
	FormatTypeScript Format = "typescript"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatFlatJSON), string(FormatTypeScript)}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "flat-json", "flatjson":
		return FormatFlatJSON, nil
	case "typescript", "ts":
		return FormatTypeScript, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatForPath infers a format from an output file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".ts"), strings.HasSuffix(lower, ".mts"):
		return FormatTypeScript
	default:
		return FormatJSON
	}
}

// Options configures serialization.
type Options struct {
	// RGBAHex rewrites color leaves as eight hex digits, rrggbbaa.
	RGBAHex bool

	// Delimiter joins path segments in flat output. Defaults to ".".
	Delimiter string

	// ExportName is the TypeScript export. Defaults to "brand".
	ExportName string
}

// Formatter serializes a brand document.
type Formatter interface {
	Format(doc brand.Document, opts Options) ([]byte, error)
}

// FormatterFor returns the formatter for format.
func FormatterFor(format Format) (Formatter, error) {
	switch format {
	case FormatJSON, "":
		return jsonFormatter{}, nil
	case FormatYAML:
		return yamlFormatter{}, nil
	case FormatFlatJSON:
		return flatFormatter{}, nil
	case FormatTypeScript:
		return tsFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Render serializes doc in the given format.
func Render(doc brand.Document, format Format, opts Options) ([]byte, error) {
	f, err := FormatterFor(format)
	if err != nil {
		return nil, err
	}
	if opts.RGBAHex {
		doc = toRGBAHex(doc)
	}
	return f.Format(doc, opts)
}
