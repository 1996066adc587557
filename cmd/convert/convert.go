/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for brandmap.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"bennypowers.dev/brandmap/brand"
	"bennypowers.dev/brandmap/config"
	"bennypowers.dev/brandmap/fs"
	"bennypowers.dev/brandmap/generate"
	"bennypowers.dev/brandmap/internal/logger"
	"bennypowers.dev/brandmap/source"
	"bennypowers.dev/brandmap/stylesheet"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [css-file]",
	Short: "Convert a theme stylesheet into a brand configuration",
	Long: `Convert a shadcn/ui style stylesheet into a brand configuration document.

Variables declared in the :root and .dark scopes are read into light and
dark tables. oklch() colors become hex, rem lengths become pixels, and the
tables are mapped onto components, themes and interaction states.

Identifiers the stylesheet does not declare are written as null and
reported as warnings.

Examples:
  # Print JSON to stdout
  brandmap convert app/globals.css

  # Write YAML with 8-digit hex colors
  brandmap convert -o brand.yaml --rgba-hex app/globals.css

  # Write a TypeScript module
  brandmap convert -o src/brand.ts --export-name acme app/globals.css

  # Read a stylesheet from an installed package, or unpkg.com when missing
  brandmap convert --fetch npm:@acme/theme/dist/globals.css

  # Use input, output and scopes from .config/brandmap.yaml
  brandmap convert`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(generate.ValidFormats(), ", ")+" (default: from output extension, else json)")
	Cmd.Flags().Bool("rgba-hex", false, "Write colors as 8-digit rrggbbaa hex")
	Cmd.Flags().Bool("resolve-refs", false, "Resolve var() references before mapping")
	Cmd.Flags().Float64("root-font-size", stylesheet.DefaultRootFontSize, "Pixel size of 1rem")
	Cmd.Flags().String("light-scope", "", "Line that opens the light scope (default \":root {\")")
	Cmd.Flags().String("dark-scope", "", "Line that opens the dark scope (default \".dark {\")")
	Cmd.Flags().String("delimiter", "", "Path delimiter for flat-json output (default \".\")")
	Cmd.Flags().String("export-name", "", "Export name for typescript output (default \"brand\")")
	Cmd.Flags().Bool("strict", false, "Fail on malformed declarations and missing identifiers")

	bindings := map[string]string{
		"output":            "output",
		"format":            "format",
		"rgbaHex":           "rgba-hex",
		"resolveReferences": "resolve-refs",
		"rootFontSize":      "root-font-size",
		"scopes.light":      "light-scope",
		"scopes.dark":       "dark-scope",
		"delimiter":         "delimiter",
		"exportName":        "export-name",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, Cmd.Flags().Lookup(flag))
	}
}

func run(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	strict, _ := cmd.Flags().GetBool("strict")

	rootDir, err := os.Getwd()
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	cfg, err := config.Load(viper.GetViper(), filesystem, rootDir, configPath)
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		logger.Debug("using config %s", cfg.Source)
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if fetch, _ := cmd.Flags().GetBool("fetch"); fetch {
		cfg.Fetch = true
	}

	loader := source.New(filesystem, rootDir, cfg)
	return Convert(cmd.Context(), loader, cfg, cmd.OutOrStdout(), strict)
}

// Convert runs the pipeline described by cfg: read the stylesheet, build
// the tables, map them, and write the document to cfg.Output or stdout.
//
// Malformed declarations and missing identifiers are logged. With strict
// set they also fail the conversion, before anything is written.
func Convert(ctx context.Context, loader *source.Loader, cfg *config.Config, stdout io.Writer, strict bool) error {
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	tables, input, parseErr := loader.Tables(ctx, cfg.Input, cfg.ParserOptions())
	if tables == nil {
		return parseErr
	}
	logger.Info("read %d light and %d dark variables from %s", tables.Light.Len(), tables.Dark.Len(), input)

	doc, report := brand.Map(tables.Light, tables.Dark)
	for _, m := range report.Missing {
		logger.Warn("%s theme has no %q; %s is null", m.Theme, m.Name, m.Path)
	}

	if strict {
		if err := multierr.Combine(parseErr, report.Err()); err != nil {
			return err
		}
	}

	data, err := generate.Render(doc, format, cfg.GenerateOptions())
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w: writing stdout: %w", fs.ErrIO, err)
		}
		return nil
	}

	output := loader.OutputPath(cfg.Output)
	if err := generate.Write(loader.FS, output, data); err != nil {
		return err
	}
	logger.Info("wrote %d leaves to %s", len(doc.Leaves()), output)
	return nil
}
