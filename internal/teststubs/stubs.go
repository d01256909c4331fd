package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
)

// StubProvider is a test double for providers.DataProvider. Pages are keyed by
// cursor; a missing cursor yields an empty last page.
type StubProvider struct {
	TeamList     balldontlie.TeamsResponse
	GamePages    map[int]balldontlie.GamesResponse
	PlayerPages  map[int]balldontlie.PlayersResponse
	Err          error
	Block        chan struct{}
	TeamsCalls   atomic.Int32
	GamesCalls   atomic.Int32
	PlayersCalls atomic.Int32

	mu             sync.Mutex
	gamesQueries   []balldontlie.GamesQuery
	playersQueries []balldontlie.PlayersQuery
}

func (s *StubProvider) Name() string { return "stub" }

// Teams returns the configured teams or Err.
func (s *StubProvider) Teams(ctx context.Context) (balldontlie.TeamsResponse, error) {
	s.TeamsCalls.Add(1)
	if err := s.wait(ctx); err != nil {
		return balldontlie.TeamsResponse{}, err
	}
	if s.Err != nil {
		return balldontlie.TeamsResponse{}, s.Err
	}
	return s.TeamList, nil
}

// Games records q and returns the page configured for q.Cursor.
func (s *StubProvider) Games(ctx context.Context, q balldontlie.GamesQuery) (balldontlie.GamesResponse, error) {
	s.GamesCalls.Add(1)
	s.mu.Lock()
	s.gamesQueries = append(s.gamesQueries, q)
	s.mu.Unlock()
	if err := s.wait(ctx); err != nil {
		return balldontlie.GamesResponse{}, err
	}
	if s.Err != nil {
		return balldontlie.GamesResponse{}, s.Err
	}
	return s.GamePages[q.Cursor], nil
}

// Players records q and returns the page configured for q.Cursor.
func (s *StubProvider) Players(ctx context.Context, q balldontlie.PlayersQuery) (balldontlie.PlayersResponse, error) {
	s.PlayersCalls.Add(1)
	s.mu.Lock()
	s.playersQueries = append(s.playersQueries, q)
	s.mu.Unlock()
	if err := s.wait(ctx); err != nil {
		return balldontlie.PlayersResponse{}, err
	}
	if s.Err != nil {
		return balldontlie.PlayersResponse{}, s.Err
	}
	return s.PlayerPages[q.Cursor], nil
}

// GamesQueries returns a copy of every games query received.
func (s *StubProvider) GamesQueries() []balldontlie.GamesQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]balldontlie.GamesQuery(nil), s.gamesQueries...)
}

// PlayersQueries returns a copy of every players query received.
func (s *StubProvider) PlayersQueries() []balldontlie.PlayersQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]balldontlie.PlayersQuery(nil), s.playersQueries...)
}

// wait blocks on Block when set, returning early if ctx is done.
func (s *StubProvider) wait(ctx context.Context) error {
	if s.Block == nil {
		return nil
	}
	select {
	case <-s.Block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
