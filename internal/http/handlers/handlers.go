package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	gamesapp "github.com/preston-bernstein/nba-data-client/internal/app/games"
	playersapp "github.com/preston-bernstein/nba-data-client/internal/app/players"
	teamsapp "github.com/preston-bernstein/nba-data-client/internal/app/teams"
	"github.com/preston-bernstein/nba-data-client/internal/domain/games"
	"github.com/preston-bernstein/nba-data-client/internal/domain/players"
	"github.com/preston-bernstein/nba-data-client/internal/domain/teams"
	"github.com/preston-bernstein/nba-data-client/internal/logging"
	"github.com/preston-bernstein/nba-data-client/internal/paging"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Teams   *teamsapp.Service
	Games   *gamesapp.Service
	Players *playersapp.Service
}

// Handler wires HTTP routes to the use-case services.
type Handler struct {
	svc    Services
	logger *slog.Logger
}

type teamsResponse struct {
	Teams []teams.Team `json:"teams"`
}

type gamesResponse struct {
	Games      []games.Game `json:"games"`
	NextCursor *int         `json:"nextCursor"`
}

type playersResponse struct {
	Players    []players.Player `json:"players"`
	NextCursor *int             `json:"nextCursor"`
}

// NewHandler constructs a Handler.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Teams lists every team, optionally sorted by ?sort=name|city|conference.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	key := teams.SortByName
	if raw := r.URL.Query().Get("sort"); raw != "" {
		parsed, ok := teams.ParseSortKey(raw)
		if !ok {
			writeInvalid(w, r, "sort must be one of name, city, conference", h.logger)
			return
		}
		key = parsed
	}

	res := h.svc.Teams.SortedTeams(r.Context(), key)
	if !res.Ok() {
		writeResultError(w, r, res.Err(), h.logger)
		return
	}
	logging.Debug(loggerFromContext(r, h.logger), "served teams", logging.FieldCount, len(res.Value()))
	writeJSON(w, http.StatusOK, teamsResponse{Teams: res.Value()}, h.logger)
}

// TeamGames returns one page of a team's games starting at ?cursor.
func (h *Handler) TeamGames(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeInvalid(w, r, "team id must be a positive integer", h.logger)
		return
	}
	cursor, ok := parseCursor(r)
	if !ok {
		writeInvalid(w, r, "cursor must be a non-negative integer", h.logger)
		return
	}

	res := h.svc.Games.TeamGamesPage(r.Context(), teamID, cursor)
	if !res.Ok() {
		writeResultError(w, r, res.Err(), h.logger)
		return
	}
	page := res.Value()
	logging.Debug(loggerFromContext(r, h.logger), "served team games",
		logging.FieldTeamID, teamID,
		logging.FieldCursor, cursor,
		logging.FieldCount, len(page.Items),
	)
	writeJSON(w, http.StatusOK, gamesResponse{Games: page.Items, NextCursor: page.NextCursor}, h.logger)
}

// Players returns one page of players matching ?search starting at ?cursor.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	cursor, ok := parseCursor(r)
	if !ok {
		writeInvalid(w, r, "cursor must be a non-negative integer", h.logger)
		return
	}

	res := h.svc.Players.SearchPage(r.Context(), r.URL.Query().Get("search"), cursor)
	if !res.Ok() {
		writeResultError(w, r, res.Err(), h.logger)
		return
	}
	page := res.Value()
	logging.Debug(loggerFromContext(r, h.logger), "served players",
		logging.FieldCursor, cursor,
		logging.FieldCount, len(page.Items),
	)
	writeJSON(w, http.StatusOK, playersResponse{Players: page.Items, NextCursor: page.NextCursor}, h.logger)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeResultError(w, r, result.NewError(result.KindNotFound, "not found", 0, nil), h.logger)
}

// parseCursor reads ?cursor, defaulting to the first page.
func parseCursor(r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("cursor"))
	if raw == "" {
		return paging.FirstCursor, true
	}
	cursor, err := strconv.Atoi(raw)
	if err != nil || cursor < paging.FirstCursor {
		return 0, false
	}
	return cursor, true
}
