package repository

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/preston-bernstein/nba-data-client/internal/domain/games"
	"github.com/preston-bernstein/nba-data-client/internal/logging"
	"github.com/preston-bernstein/nba-data-client/internal/paging"
	"github.com/preston-bernstein/nba-data-client/internal/providers"
	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

// Games reads a team's games one page at a time.
type Games struct {
	provider providers.GameProvider
	logger   *slog.Logger
	perPage  int
}

// NewGames builds the repository. perPage <= 0 uses the client default.
func NewGames(provider providers.GameProvider, logger *slog.Logger, perPage int) *Games {
	return &Games{provider: provider, logger: logger, perPage: perPage}
}

// TeamGamesPage fetches the page of teamID's games starting at cursor.
func (r *Games) TeamGamesPage(ctx context.Context, teamID, cursor int) result.Result[paging.Page[games.Game]] {
	resp, err := r.provider.Games(ctx, balldontlie.GamesQuery{TeamID: teamID, Cursor: cursor, PerPage: r.perPage})
	if err != nil {
		return fail[paging.Page[games.Game]](ctx, r.logger, providers.EndpointGames, err,
			logging.FieldTeamID, teamID,
			logging.FieldCursor, cursor,
		)
	}
	return result.Success(balldontlie.MapGamePage(resp))
}

// TeamGames returns an idle paging session over teamID's games.
func (r *Games) TeamGames(teamID int) *paging.Pager[games.Game] {
	return paging.New(
		func(ctx context.Context, cursor int) result.Result[paging.Page[games.Game]] {
			return r.TeamGamesPage(ctx, teamID, cursor)
		},
		paging.WithLogger(r.logger),
		paging.WithName("team-games:"+strconv.Itoa(teamID)),
	)
}
