/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for brandmap.
package validate

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/brandmap/brand"
	"bennypowers.dev/brandmap/config"
	"bennypowers.dev/brandmap/fs"
	"bennypowers.dev/brandmap/source"
	"bennypowers.dev/brandmap/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [css-file]",
	Short: "Validate a theme stylesheet",
	Long: `Validate a theme stylesheet for malformed declarations, var() cycles and
dangling references, and identifiers the brand document needs but the
stylesheet does not declare.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")
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

	return Run(cmd.Context(), source.New(filesystem, rootDir, cfg), cfg, cmd.OutOrStdout(), strict, quiet)
}

// Run validates the stylesheet cfg names and prints the findings to w.
func Run(ctx context.Context, loader *source.Loader, cfg *config.Config, w io.Writer, strict, quiet bool) error {
	tables, input, parseErr := loader.Tables(ctx, cfg.Input, cfg.ParserOptions())
	if tables == nil {
		return parseErr
	}

	if !quiet {
		fmt.Fprintf(w, "Validating %s...\n", input)
	}
	_, report := brand.Map(tables.Light, tables.Dark)
	found := validator.Validate(input, tables, parseErr, report)

	for _, e := range found {
		if quiet && e.Severity < validator.SeverityError {
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", e.Severity, e.Error())
	}

	threshold := validator.SeverityError
	if strict {
		threshold = validator.SeverityWarning
	}
	if validator.HasErrors(found, threshold) {
		return fmt.Errorf("validation failed: %d findings", len(found))
	}

	if !quiet {
		fmt.Fprintf(w, "  %d light and %d dark variables, %d warnings\n", tables.Light.Len(), tables.Dark.Len(), len(found))
	}
	return nil
}
