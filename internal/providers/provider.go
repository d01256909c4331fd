package providers

import (
	"context"

	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
)

// Provider endpoints, used as the endpoint label in logs and metrics.
const (
	EndpointTeams   = "teams"
	EndpointGames   = "games"
	EndpointPlayers = "players"
)

// TeamProvider fetches the full team list.
type TeamProvider interface {
	Teams(ctx context.Context) (balldontlie.TeamsResponse, error)
}

// GameProvider fetches one page of a team's games.
type GameProvider interface {
	Games(ctx context.Context, q balldontlie.GamesQuery) (balldontlie.GamesResponse, error)
}

// PlayerProvider fetches one page of a player search.
type PlayerProvider interface {
	Players(ctx context.Context, q balldontlie.PlayersQuery) (balldontlie.PlayersResponse, error)
}

// DataProvider combines all provider capabilities. Each call is a single
// upstream round trip.
type DataProvider interface {
	Name() string
	TeamProvider
	GameProvider
	PlayerProvider
}
