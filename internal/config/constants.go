package config

import "time"

const (
	envPrefix     = "NBA_"
	envConfigFile = "NBA_CONFIG"

	ProviderBalldontlie = "balldontlie"
	ProviderFixture     = "fixture"

	defaultPort           = "4000"
	defaultProvider       = ProviderBalldontlie
	defaultAPIBaseURL     = "https://api.balldontlie.io/v1"
	defaultPerPage        = 25
	maxPerPage            = 100
	defaultHTTPTimeout    = 10 * time.Second
	defaultSearchDebounce = 500 * time.Millisecond
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "nba-data-client"
)
