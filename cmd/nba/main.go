package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/nba-data-client/internal/cli"
	"github.com/preston-bernstein/nba-data-client/internal/config"
	"github.com/preston-bernstein/nba-data-client/internal/logging"
	"github.com/preston-bernstein/nba-data-client/internal/metrics"
	"github.com/preston-bernstein/nba-data-client/internal/providers"
	"github.com/preston-bernstein/nba-data-client/internal/server"
)

const appVersion = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	// Logs go to stderr so tables on stdout stay clean.
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
		Version: appVersion,
		Output:  os.Stderr,
	})

	provider, err := providers.New(server.ProviderSettings(cfg), logger, metrics.NewRecorder())
	if err != nil {
		fmt.Fprintf(os.Stderr, "provider: %v\n", err)
		return 1
	}
	svc := server.BuildServices(cfg, provider, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.New(cli.Services{
		Teams:   svc.Teams,
		Games:   svc.Games,
		Players: svc.Players,
	}, cli.Options{
		Debounce: cfg.SearchDebounce,
		Logger:   logger,
	}).Run(ctx, args)
}
