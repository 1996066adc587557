/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package source

import (
	"regexp"
	"strings"
)

// Kind indicates where a stylesheet specifier points.
type Kind int

const (
	// KindLocal is a file path or glob on the local filesystem.
	KindLocal Kind = iota
	// KindNPM is a file inside an npm package, e.g. npm:@acme/theme/globals.css.
	KindNPM
)

// Specifier is a parsed input reference.
type Specifier struct {
	Kind Kind

	// Package is the npm package name, e.g. "@acme/theme".
	Package string

	// File is the path within the package, or the local path.
	File string

	// Raw is the original specifier string.
	Raw string
}

// npmPattern matches npm:@scope/pkg/path or npm:pkg/path. A file is required:
// a package alone does not name a stylesheet.
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^@/][^/]*)/(.+)$`)

// Parse parses a specifier string.
func Parse(spec string) Specifier {
	if strings.HasPrefix(spec, "npm:") {
		if m := npmPattern.FindStringSubmatch(spec); m != nil {
			return Specifier{Kind: KindNPM, Package: m[1], File: m[2], Raw: spec}
		}
	}
	return Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// CDNURL returns the unpkg.com URL for an npm specifier.
func (s Specifier) CDNURL() (string, bool) {
	if s.Kind != KindNPM {
		return "", false
	}
	return "https://unpkg.com/" + s.Package + "/" + s.File, true
}
