/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for brandmap.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/brandmap/cmd/render"
	"bennypowers.dev/brandmap/config"
	"bennypowers.dev/brandmap/fs"
	"bennypowers.dev/brandmap/source"
	"bennypowers.dev/brandmap/stylesheet"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query> [css-file]",
	Short: "Search variables by name, value, or kind",
	Long:  `Search the light and dark variables of a stylesheet by name, value, or kind with optional regex support.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("name", false, "Search names only")
	Cmd.Flags().Bool("value", false, "Search values only")
	Cmd.Flags().String("kind", "", "Filter by value kind: color, pixels, literal")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

// Match is one variable that matched a query.
type Match struct {
	Theme stylesheet.Theme
	Row   render.Row
}

// Query selects variables.
type Query struct {
	Text      string
	Pattern   *regexp.Regexp
	NameOnly  bool
	ValueOnly bool
	Kind      string
}

func run(cmd *cobra.Command, args []string) error {
	nameOnly, _ := cmd.Flags().GetBool("name")
	valueOnly, _ := cmd.Flags().GetBool("value")
	kind, _ := cmd.Flags().GetString("kind")
	useRegex, _ := cmd.Flags().GetBool("regex")
	format, _ := cmd.Flags().GetString("format")
	configPath, _ := cmd.Flags().GetString("config")

	q := Query{Text: args[0], NameOnly: nameOnly, ValueOnly: valueOnly, Kind: kind}
	if useRegex {
		pattern, err := regexp.Compile(q.Text)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		q.Pattern = pattern
	}

	rootDir, err := os.Getwd()
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	cfg, err := config.Load(viper.New(), filesystem, rootDir, configPath)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		cfg.Input = args[1]
	}

	if fetch, _ := cmd.Flags().GetBool("fetch"); fetch {
		cfg.Fetch = true
	}

	tables, _, err := source.New(filesystem, rootDir, cfg).Tables(cmd.Context(), cfg.Input, cfg.ParserOptions())
	if tables == nil {
		return err
	}

	matches := Search(tables, q)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return outputJSON(out, matches)
	case "names":
		return outputNames(out, matches)
	default:
		return outputTable(out, matches)
	}
}

// Search returns the matching variables, light theme first, each in
// declaration order.
func Search(tables *stylesheet.Tables, q Query) []Match {
	var matches []Match
	for _, th := range []stylesheet.Theme{stylesheet.Light, stylesheet.Dark} {
		for _, row := range render.ComputeRows(tables.Theme(th)) {
			if q.Kind != "" && row.Kind != q.Kind {
				continue
			}

			var matched bool
			switch {
			case q.NameOnly:
				matched = matchString(row.Name, q.Text, q.Pattern)
			case q.ValueOnly:
				matched = matchString(row.Value, q.Text, q.Pattern)
			default:
				matched = matchString(row.Name, q.Text, q.Pattern) ||
					matchString(row.Value, q.Text, q.Pattern) ||
					matchString(row.Kind, q.Text, q.Pattern)
			}

			if matched {
				matches = append(matches, Match{Theme: th, Row: row})
			}
		}
	}
	return matches
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

func outputTable(w io.Writer, matches []Match) error {
	if len(matches) == 0 {
		return nil
	}

	nameWidth, kindWidth := 4, 4
	for _, m := range matches {
		nameWidth = max(nameWidth, len(m.Row.Name))
		kindWidth = max(kindWidth, len(m.Row.Kind))
	}

	for _, m := range matches {
		fmt.Fprintf(w, "%-5s  %-*s  %-*s  %s\n", m.Theme, nameWidth, m.Row.Name, kindWidth, m.Row.Kind, m.Row.Value)
	}
	return nil
}

func outputJSON(w io.Writer, matches []Match) error {
	type matchOutput struct {
		Theme string `json:"theme"`
		Name  string `json:"name"`
		Kind  string `json:"kind"`
		Value string `json:"value"`
	}

	output := make([]matchOutput, 0, len(matches))
	for _, m := range matches {
		output = append(output, matchOutput{
			Theme: m.Theme.String(),
			Name:  m.Row.Name,
			Kind:  m.Row.Kind,
			Value: m.Row.Value,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputNames(w io.Writer, matches []Match) error {
	for _, m := range matches {
		fmt.Fprintf(w, "%s.%s\n", m.Theme, m.Row.Name)
	}
	return nil
}
