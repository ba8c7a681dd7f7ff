package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wikiseek/wikiseek"
	"github.com/wikiseek/wikiseek/infrastructure/api"
	"github.com/wikiseek/wikiseek/internal/config"
	"github.com/wikiseek/wikiseek/internal/log"
)

const shutdownGrace = 15 * time.Second

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                    Server host to bind to (default: 0.0.0.0)
  PORT                    Server port to listen on (default: 8080)
  LOG_LEVEL               Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT              Log format: pretty, json (default: pretty)
  REQUEST_TIMEOUT         Upstream HTTP timeout in seconds (default: 30)
  MAX_SEARCH_RESULTS      Articles per query (default: 50)
  MAX_DESCRIPTION_LENGTH  Description byte budget (default: 100)
  MAX_CONTENT_LENGTH      Message content byte budget (default: 300)
  CACHE_MAX_CAPACITY      Base cache capacity (default: 1000)
  CACHE_TTL_SECONDS       Cache entry lifetime in seconds (default: 300)
  CACHE_ENABLED           Response caching toggle (default: true)
  USER_AGENT              User-Agent for upstream requests
  DEFAULT_LANGUAGE        Language without a query prefix (default: ru)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Flags win over environment.
	if host != "" {
		cfg = cfg.WithHost(host)
	}
	if port != 0 {
		cfg = cfg.WithPort(port)
	}

	logger := newLogger(cfg)
	logger.Info("starting wikiseek",
		"version", version,
		"addr", cfg.Addr(),
		"default_language", cfg.DefaultLanguage(),
		"cache_enabled", cfg.CacheEnabled(),
	)

	client, err := wikiseek.New(
		wikiseek.WithConfig(cfg),
		wikiseek.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create wikiseek client: %w", err)
	}

	server := api.NewServer(cfg.Addr(), client)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("received signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func newLogger(cfg config.AppConfig) *log.Logger {
	return log.New(os.Stdout, log.ParseFormat(string(cfg.LogFormat())), cfg.LogLevel())
}
