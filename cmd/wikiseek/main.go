// Package main is the entry point for the wikiseek CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikiseek/wikiseek/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikiseek",
		Short: "Wikipedia search and enrichment service",
		Long:  `Wikiseek searches Wikipedia language editions and enriches the results with page details, linked-data descriptions and a relevance ranking.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(searchCmd())
	cmd.AddCommand(languagesCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from a .env file and the environment.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
