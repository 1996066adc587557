/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package vars provides the vars command for brandmap.
package vars

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/brandmap/cmd/render"
	"bennypowers.dev/brandmap/config"
	"bennypowers.dev/brandmap/fs"
	"bennypowers.dev/brandmap/source"
	"bennypowers.dev/brandmap/stylesheet"
)

// Cmd is the vars cobra command.
var Cmd = &cobra.Command{
	Use:   "vars [css-file]",
	Short: "List the variables read from a stylesheet",
	Long: `List the light and dark variable tables parsed from a stylesheet,
after oklch() and rem normalization.

Examples:
  # Both themes, with color swatches
  brandmap vars app/globals.css

  # Dark theme only, as JSON
  brandmap vars --theme dark --format json app/globals.css`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("theme", "", "Only show one theme: light, dark")
	Cmd.Flags().String("format", "table", "Output format: table, json, yaml")
	Cmd.Flags().Bool("no-color", false, "Omit color swatches")
}

func run(cmd *cobra.Command, args []string) error {
	themeFlag, _ := cmd.Flags().GetString("theme")
	format, _ := cmd.Flags().GetString("format")
	noColor, _ := cmd.Flags().GetBool("no-color")
	configPath, _ := cmd.Flags().GetString("config")

	rootDir, err := os.Getwd()
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	cfg, err := config.Load(viper.New(), filesystem, rootDir, configPath)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	if fetch, _ := cmd.Flags().GetBool("fetch"); fetch {
		cfg.Fetch = true
	}

	// Declaration errors are logged by the parser; the tables are still usable.
	tables, _, err := source.New(filesystem, rootDir, cfg).Tables(cmd.Context(), cfg.Input, cfg.ParserOptions())
	if tables == nil {
		return err
	}

	themes, err := selectThemes(themeFlag)
	if err != nil {
		return err
	}

	return Output(cmd.OutOrStdout(), tables, themes, format, !noColor)
}

func selectThemes(name string) ([]stylesheet.Theme, error) {
	switch name {
	case "":
		return []stylesheet.Theme{stylesheet.Light, stylesheet.Dark}, nil
	case "light":
		return []stylesheet.Theme{stylesheet.Light}, nil
	case "dark":
		return []stylesheet.Theme{stylesheet.Dark}, nil
	default:
		return nil, fmt.Errorf("unknown theme %q (valid: light, dark)", name)
	}
}

// Output writes the selected tables in format.
func Output(w io.Writer, tables *stylesheet.Tables, themes []stylesheet.Theme, format string, color bool) error {
	switch format {
	case "json":
		return outputJSON(w, tables, themes)
	case "yaml":
		return outputYAML(w, tables, themes)
	case "table", "":
		for i, th := range themes {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := render.Table(w, render.Heading(th), render.ComputeRows(tables.Theme(th)), color); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid: table, json, yaml)", format)
	}
}

func outputJSON(w io.Writer, tables *stylesheet.Tables, themes []stylesheet.Theme) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(themes) == 1 {
		return enc.Encode(tables.Theme(themes[0]))
	}
	return enc.Encode(tables)
}

func outputYAML(w io.Writer, tables *stylesheet.Tables, themes []stylesheet.Theme) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	if len(themes) == 1 {
		return enc.Encode(tables.Theme(themes[0]))
	}
	return enc.Encode(tables)
}
