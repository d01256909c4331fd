package balldontlie

import (
	"net/http"
	"testing"
	"time"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.BaseURL != defaultBaseURL || cfg.PerPage != defaultPerPage {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.HTTPClient == nil || cfg.HTTPClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default client with %s timeout", defaultHTTPTimeout)
	}
}

func TestConfigWithDefaultsKeepsOverrides(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	cfg := Config{BaseURL: " https://api.example.com/ ", HTTPClient: custom, PerPage: 40}.withDefaults()
	if cfg.BaseURL != "https://api.example.com" {
		t.Fatalf("expected trimmed base url, got %q", cfg.BaseURL)
	}
	if cfg.HTTPClient != custom || cfg.PerPage != 40 {
		t.Fatalf("expected overrides kept, got %+v", cfg)
	}
}

func TestClampPerPage(t *testing.T) {
	cases := map[int]int{-1: defaultPerPage, 0: defaultPerPage, 1: 1, 50: 50, 100: 100, 101: maxPerPage}
	for input, expected := range cases {
		if got := clampPerPage(input); got != expected {
			t.Fatalf("per page %d: expected %d, got %d", input, expected, got)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("12"); got != 12*time.Second {
		t.Fatalf("expected 12s, got %s", got)
	}
	for _, raw := range []string{"", "-3", "soon"} {
		if got := parseRetryAfter(raw); got != 0 {
			t.Fatalf("expected zero for %q, got %s", raw, got)
		}
	}
	future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(future); got <= 0 || got > 91*time.Second {
		t.Fatalf("expected positive delay for http date, got %s", got)
	}
}
