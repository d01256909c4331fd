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

	"github.com/preston-bernstein/nba-data-client/internal/config"
	"github.com/preston-bernstein/nba-data-client/internal/logging"
	"github.com/preston-bernstein/nba-data-client/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, stop)
	stop()
	os.Exit(code)
}

// run serves until ctx is canceled and returns the process exit code.
func run(ctx context.Context, stop context.CancelFunc) int {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
		Version: appVersion,
	})
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logging.Warn(logger, "could not load .env file", "error", envErr)
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		return 1
	}
	logging.Info(logger, "provider selected", logging.FieldProvider, srv.ProviderName())
	srv.Run(ctx, stop)
	return 0
}
