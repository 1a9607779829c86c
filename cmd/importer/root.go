package main

import "github.com/spf13/cobra"

var (
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "Import supplier product pages into the parts catalog",
	Long: `importer scrapes a supplier product page, extracts a normalized product,
prices it, publishes it to the billing catalog and upserts the catalog row by SKU.

Usage:
  importer run <url> [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format, json or text (overrides LOG_FORMAT)")
}
