package balldontlie

import (
	"net/http"
	"strings"
	"time"
)

const (
	providerName       = "balldontlie"
	defaultBaseURL     = "https://api.balldontlie.io/v1"
	defaultPerPage     = 25
	maxPerPage         = 100
	defaultHTTPTimeout = 10 * time.Second

	// errorBodyLimit caps how much of a failed response is kept for the error message.
	errorBodyLimit = 512
)

// Config controls how the balldontlie client reaches the upstream API.
// Zero values select the public endpoint, 25 rows per page and a 10s timeout.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	PerPage    int
}

func (c Config) withDefaults() Config {
	c.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	c.PerPage = clampPerPage(c.PerPage)
	return c
}

// clampPerPage maps non-positive sizes to the default and caps the rest at
// the API maximum.
func clampPerPage(n int) int {
	switch {
	case n <= 0:
		return defaultPerPage
	case n > maxPerPage:
		return maxPerPage
	default:
		return n
	}
}
