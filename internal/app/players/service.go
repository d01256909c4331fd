package players

import (
	"context"
	"strings"

	"github.com/preston-bernstein/nba-data-client/internal/domain/players"
	"github.com/preston-bernstein/nba-data-client/internal/paging"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

const blankQueryMessage = "search query must not be blank"

// Repository defines the contract for searching players.
type Repository interface {
	SearchPage(ctx context.Context, query string, cursor int) result.Result[paging.Page[players.Player]]
	Search(query string) *paging.Pager[players.Player]
}

// Service coordinates player operations using a Repository.
type Service struct {
	repo Repository
}

// NewService constructs a Service with the provided Repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SearchPlayers trims query and starts an idle paging session over its matches.
// A blank query is rejected before any network call.
func (s *Service) SearchPlayers(query string) result.Result[*paging.Pager[players.Player]] {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return result.Failure[*paging.Pager[players.Player]](result.Validation(blankQueryMessage))
	}
	return result.Success(s.repo.Search(trimmed))
}

// SearchPage trims query and fetches a single page of matches.
func (s *Service) SearchPage(ctx context.Context, query string, cursor int) result.Result[paging.Page[players.Player]] {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return result.Failure[paging.Page[players.Player]](result.Validation(blankQueryMessage))
	}
	if cursor < paging.FirstCursor {
		return result.Failure[paging.Page[players.Player]](result.Validation("cursor must not be negative"))
	}
	return s.repo.SearchPage(ctx, trimmed, cursor)
}
