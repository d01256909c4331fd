package server

import (
	"time"

	"github.com/preston-bernstein/nba-data-client/internal/config"
)

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second
	writeSlack  = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeout leaves room for one upstream round trip plus encoding.
func writeTimeout(cfg config.Config) time.Duration {
	if cfg.HTTPTimeout <= 0 {
		return readTimeout + writeSlack
	}
	return cfg.HTTPTimeout + writeSlack
}
