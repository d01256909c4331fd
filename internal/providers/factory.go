package providers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-data-client/internal/metrics"
	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-data-client/internal/providers/fixture"
)

const (
	NameBalldontlie = "balldontlie"
	NameFixture     = "fixture"
)

// Settings selects and configures the upstream provider.
type Settings struct {
	Name        string
	BaseURL     string
	APIKey      string
	PerPage     int
	HTTPTimeout time.Duration
}

// New builds the configured provider wrapped with instrumentation.
func New(settings Settings, logger *slog.Logger, recorder *metrics.Recorder) (DataProvider, error) {
	base, err := selectProvider(settings)
	if err != nil {
		return nil, err
	}
	return NewInstrumentedProvider(base, logger, recorder), nil
}

func selectProvider(settings Settings) (DataProvider, error) {
	switch strings.ToLower(strings.TrimSpace(settings.Name)) {
	case NameBalldontlie, "":
		var httpClient *http.Client
		if settings.HTTPTimeout > 0 {
			httpClient = &http.Client{Timeout: settings.HTTPTimeout}
		}
		return balldontlie.NewClient(balldontlie.Config{
			BaseURL:    settings.BaseURL,
			APIKey:     settings.APIKey,
			HTTPClient: httpClient,
			PerPage:    settings.PerPage,
		}), nil
	case NameFixture:
		return fixture.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, settings.Name)
	}
}
