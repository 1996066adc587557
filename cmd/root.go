/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for brandmap.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/brandmap/cmd/convert"
	"bennypowers.dev/brandmap/cmd/search"
	"bennypowers.dev/brandmap/cmd/validate"
	"bennypowers.dev/brandmap/cmd/vars"
	"bennypowers.dev/brandmap/cmd/version"
	"bennypowers.dev/brandmap/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "brandmap",
	Short: "Turn theme stylesheets into brand configuration",
	Long: `brandmap reads the light and dark custom properties of a shadcn/ui style
stylesheet and maps them onto a brand configuration document of components,
themes and interaction states.`,
	SilenceUsage:      true,
	PersistentPreRunE: configureLogging,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: .config/brandmap.{yaml,yml,json})")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().Bool("fetch", false, "Fetch npm: inputs from unpkg.com when not installed")
	rootCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(vars.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func configureLogging(cmd *cobra.Command, _ []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger.SetOutput(cmd.ErrOrStderr())
	switch {
	case quiet:
		return logger.SetLevel("error")
	case verbose:
		return logger.SetLevel("debug")
	default:
		return logger.SetLevel("info")
	}
}
