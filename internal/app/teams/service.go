package teams

import (
	"context"

	"github.com/preston-bernstein/nba-data-client/internal/domain/teams"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

// Repository defines the contract for reading teams.
type Repository interface {
	Teams(ctx context.Context) result.Result[[]teams.Team]
}

// Service coordinates team operations using a Repository.
type Service struct {
	repo Repository
}

// NewService constructs a Service with the provided Repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Teams returns every team in upstream order.
func (s *Service) Teams(ctx context.Context) result.Result[[]teams.Team] {
	return s.repo.Teams(ctx)
}

// SortedTeams returns every team ordered by key. Failures pass through unchanged.
func (s *Service) SortedTeams(ctx context.Context, key teams.SortKey) result.Result[[]teams.Team] {
	res := s.repo.Teams(ctx)
	if !res.Ok() {
		return res
	}
	return result.Success(teams.Sort(res.Value(), key))
}
