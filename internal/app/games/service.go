package games

import (
	"context"

	"github.com/preston-bernstein/nba-data-client/internal/domain/games"
	"github.com/preston-bernstein/nba-data-client/internal/paging"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

// Repository defines the contract for reading a team's games.
type Repository interface {
	TeamGamesPage(ctx context.Context, teamID, cursor int) result.Result[paging.Page[games.Game]]
	TeamGames(teamID int) *paging.Pager[games.Game]
}

// Service coordinates game operations using a Repository.
type Service struct {
	repo Repository
}

// NewService constructs a Service with the provided Repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// TeamGames starts an idle paging session over teamID's games at the first cursor.
func (s *Service) TeamGames(teamID int) *paging.Pager[games.Game] {
	return s.repo.TeamGames(teamID)
}

// TeamGamesPage fetches a single page. Non-positive team ids and negative
// cursors are rejected without a network call.
func (s *Service) TeamGamesPage(ctx context.Context, teamID, cursor int) result.Result[paging.Page[games.Game]] {
	if teamID <= 0 {
		return result.Failure[paging.Page[games.Game]](result.Validation("team id must be a positive integer"))
	}
	if cursor < paging.FirstCursor {
		return result.Failure[paging.Page[games.Game]](result.Validation("cursor must not be negative"))
	}
	return s.repo.TeamGamesPage(ctx, teamID, cursor)
}
