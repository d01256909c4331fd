package repository

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-data-client/internal/domain/teams"
	"github.com/preston-bernstein/nba-data-client/internal/providers"
	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

// Teams reads the team list. It holds no state between calls.
type Teams struct {
	provider providers.TeamProvider
	logger   *slog.Logger
}

// NewTeams builds the repository over provider.
func NewTeams(provider providers.TeamProvider, logger *slog.Logger) *Teams {
	return &Teams{provider: provider, logger: logger}
}

// Teams performs exactly one upstream call.
func (r *Teams) Teams(ctx context.Context) result.Result[[]teams.Team] {
	resp, err := r.provider.Teams(ctx)
	if err != nil {
		return fail[[]teams.Team](ctx, r.logger, providers.EndpointTeams, err)
	}
	return result.Success(balldontlie.MapTeams(resp))
}
