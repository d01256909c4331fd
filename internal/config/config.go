// Package config loads runtime settings for the gateway and the CLI.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds runtime configuration. Keys are flat so that NBA_PER_PAGE maps
// to per_page without a nesting delimiter.
type Config struct {
	Port     string `koanf:"port"`
	Provider string `koanf:"provider"`

	APIBaseURL  string        `koanf:"api_base_url"`
	APIKey      string        `koanf:"api_key"`
	PerPage     int           `koanf:"per_page"`
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	SearchDebounce time.Duration `koanf:"search_debounce"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	CORSOrigins []string `koanf:"cors_origins"`

	MetricsConfig `koanf:",squash"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Port:           defaultPort,
		Provider:       defaultProvider,
		APIBaseURL:     defaultAPIBaseURL,
		PerPage:        defaultPerPage,
		HTTPTimeout:    defaultHTTPTimeout,
		SearchDebounce: defaultSearchDebounce,
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		MetricsConfig:  defaultMetrics(),
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Port) == "":
		return invalid("port must not be empty")
	case c.Provider != ProviderBalldontlie && c.Provider != ProviderFixture:
		return invalid("unknown provider %q", c.Provider)
	case c.Provider == ProviderBalldontlie && strings.TrimSpace(c.APIBaseURL) == "":
		return invalid("api_base_url must not be empty")
	case c.PerPage < 1 || c.PerPage > maxPerPage:
		return invalid("per_page must be between 1 and %d, got %d", maxPerPage, c.PerPage)
	case c.HTTPTimeout <= 0:
		return invalid("http_timeout must be positive")
	case c.SearchDebounce <= 0:
		return invalid("search_debounce must be positive")
	case c.LogFormat != "text" && c.LogFormat != "json":
		return invalid("log_format must be text or json, got %q", c.LogFormat)
	case c.Enabled && strings.TrimSpace(c.MetricsConfig.Port) == "":
		return invalid("metrics_port must not be empty when metrics are enabled")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
