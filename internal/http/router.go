package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-data-client/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /teams", handler.Teams)
	mux.HandleFunc("GET /teams/{id}/games", handler.TeamGames)
	mux.HandleFunc("GET /players", handler.Players)
	mux.HandleFunc("/", handler.NotFound)
	return mux
}
