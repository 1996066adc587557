/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/brandmap/brand"
)

type jsonFormatter struct{}

func (jsonFormatter) Format(doc brand.Document, _ Options) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return append(data, '\n'), nil
}

type yamlFormatter struct{}

func (yamlFormatter) Format(doc brand.Document, _ Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

type flatFormatter struct{}

func (flatFormatter) Format(doc brand.Document, opts Options) ([]byte, error) {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "."
	}

	result := make(map[string]any)
	for _, leaf := range doc.Leaves() {
		result[strings.Join(leaf.Path, delimiter)] = leaf.Value
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return append(data, '\n'), nil
}

type tsFormatter struct{}

func (tsFormatter) Format(doc brand.Document, opts Options) ([]byte, error) {
	name := opts.ExportName
	if name == "" {
		name = "brand"
	}
	typeName := strings.ToUpper(name[:1]) + name[1:]

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding typescript: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("// Generated by brandmap. Do not edit.\n\n")
	fmt.Fprintf(&buf, "export const %s = %s as const;\n\n", name, body)
	fmt.Fprintf(&buf, "export type %s = typeof %s;\n", typeName, name)
	return buf.Bytes(), nil
}
