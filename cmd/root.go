// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "showtimes",
	Short: "Aggregate Paris cinema listings into one schedule",
	Long: `showtimes normalizes cinema listings published in three incompatible
formats (UGC embedded HTML, Dulac JSON exports, Paris Cinema Club weekly
program text) into one deduplicated schedule of
(movie, cinema, date, showings) records.

Usage:
  showtimes fetch [flags]
  showtimes combine [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
