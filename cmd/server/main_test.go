package main

import (
	"context"
	"testing"
)

func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Setenv("NBA_PROVIDER", "espn")

	if code := run(context.Background(), nil); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestRunReturnsAfterCancel(t *testing.T) {
	t.Setenv("NBA_PROVIDER", "fixture")
	t.Setenv("NBA_PORT", "0")
	t.Setenv("NBA_METRICS_ENABLED", "false")
	t.Setenv("NBA_LOG_LEVEL", "error")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := run(ctx, cancel); code != 0 {
		t.Fatalf("expected clean exit, got %d", code)
	}
}
