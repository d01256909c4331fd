package repository

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-data-client/internal/domain/players"
	"github.com/preston-bernstein/nba-data-client/internal/logging"
	"github.com/preston-bernstein/nba-data-client/internal/paging"
	"github.com/preston-bernstein/nba-data-client/internal/providers"
	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

// Players searches players one page at a time. The query is passed through
// unchanged; validation belongs to the caller.
type Players struct {
	provider providers.PlayerProvider
	logger   *slog.Logger
	perPage  int
}

// NewPlayers builds the repository. perPage <= 0 uses the client default.
func NewPlayers(provider providers.PlayerProvider, logger *slog.Logger, perPage int) *Players {
	return &Players{provider: provider, logger: logger, perPage: perPage}
}

// SearchPage fetches the page of matches for query starting at cursor.
func (r *Players) SearchPage(ctx context.Context, query string, cursor int) result.Result[paging.Page[players.Player]] {
	resp, err := r.provider.Players(ctx, balldontlie.PlayersQuery{Search: query, Cursor: cursor, PerPage: r.perPage})
	if err != nil {
		return fail[paging.Page[players.Player]](ctx, r.logger, providers.EndpointPlayers, err,
			logging.FieldQuery, query,
			logging.FieldCursor, cursor,
		)
	}
	return result.Success(balldontlie.MapPlayerPage(resp))
}

// Search returns an idle paging session over the matches for query.
func (r *Players) Search(query string) *paging.Pager[players.Player] {
	return paging.New(
		func(ctx context.Context, cursor int) result.Result[paging.Page[players.Player]] {
			return r.SearchPage(ctx, query, cursor)
		},
		paging.WithLogger(r.logger),
		paging.WithName("player-search:"+query),
	)
}
