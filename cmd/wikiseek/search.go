package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wikiseek/wikiseek"
)

func searchCmd() *cobra.Command {
	var (
		envFile string
		limit   int
		showURL bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run one query and print the ranked articles",
		Long: `Run one query against the pipeline and print the ranked articles.

The query may carry a language prefix, e.g. "en: sea of okhotsk".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(envFile, strings.Join(args, " "), limit, showURL)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of articles (default: MAX_SEARCH_RESULTS)")
	cmd.Flags().BoolVar(&showURL, "urls", true, "Print article URLs")

	return cmd
}

func runSearch(envFile, query string, limit int, showURL bool) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if limit > 0 {
		cfg = cfg.WithMaxSearchResults(limit)
	}

	client, err := wikiseek.New(
		wikiseek.WithConfig(cfg),
		wikiseek.WithLogger(newLogger(cfg)),
	)
	if err != nil {
		return fmt.Errorf("create wikiseek client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout()+5*time.Second)
	defer cancel()

	result, err := client.Articles.Query(ctx, query)
	if err != nil {
		return err
	}

	lang := result.Language()
	fmt.Printf("%s %s — %d article(s) for %q\n\n", lang.Flag(), lang.Name(), len(result.Articles()), result.Query())

	for i, a := range result.Articles() {
		fmt.Printf("%2d. %s\n", i+1, a.Hit().Title())
		if desc := a.Description(); desc != "" {
			fmt.Printf("    %s\n", desc)
		} else {
			fmt.Printf("    %s\n", a.BestDescription(cfg.MaxDescriptionLength()))
		}
		if showURL {
			fmt.Printf("    %s\n", a.URL())
		}
	}

	return nil
}
