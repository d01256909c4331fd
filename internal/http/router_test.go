package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	gamesapp "github.com/preston-bernstein/nba-data-client/internal/app/games"
	playersapp "github.com/preston-bernstein/nba-data-client/internal/app/players"
	teamsapp "github.com/preston-bernstein/nba-data-client/internal/app/teams"
	"github.com/preston-bernstein/nba-data-client/internal/http/handlers"
	"github.com/preston-bernstein/nba-data-client/internal/providers/fixture"
	"github.com/preston-bernstein/nba-data-client/internal/repository"
)

func newFixtureRouter() http.Handler {
	provider := fixture.New()
	h := handlers.NewHandler(handlers.Services{
		Teams:   teamsapp.NewService(repository.NewTeams(provider, nil)),
		Games:   gamesapp.NewService(repository.NewGames(provider, nil, 5)),
		Players: playersapp.NewService(repository.NewPlayers(provider, nil, 5)),
	}, nil)
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newFixtureRouter()

	cases := map[string]int{
		"/health":                  http.StatusOK,
		"/teams":                   http.StatusOK,
		"/teams?sort=conference":   http.StatusOK,
		"/teams/14/games":          http.StatusOK,
		"/teams/14/games?cursor=5": http.StatusOK,
		"/teams/abc/games":         http.StatusBadRequest,
		"/players?search=a":        http.StatusOK,
		"/players":                 http.StatusBadRequest,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newFixtureRouter()

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON not-found body, got %q", ct)
	}
}
