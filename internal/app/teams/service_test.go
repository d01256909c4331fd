package teams

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nba-data-client/internal/domain/teams"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

type stubRepository struct {
	res   result.Result[[]teams.Team]
	calls int
}

func (s *stubRepository) Teams(ctx context.Context) result.Result[[]teams.Team] {
	_ = ctx
	s.calls++
	return s.res
}

func sampleTeams() []teams.Team {
	return []teams.Team{
		{ID: 1, FullName: "Atlanta Hawks", City: "Atlanta", Conference: "East"},
		{ID: 14, FullName: "Los Angeles Lakers", City: "Los Angeles", Conference: "West"},
		{ID: 2, FullName: "Boston Celtics", City: "Boston", Conference: "East"},
	}
}

func TestServiceTeamsDelegates(t *testing.T) {
	repo := &stubRepository{res: result.Success(sampleTeams())}
	svc := NewService(repo)

	res := svc.Teams(context.Background())
	if !res.Ok() || len(res.Value()) != 3 || res.Value()[0].ID != 1 {
		t.Fatalf("unexpected result %+v", res.Value())
	}
	if repo.calls != 1 {
		t.Fatalf("expected one repository call, got %d", repo.calls)
	}
}

func TestServiceSortedTeamsByConferenceIsStable(t *testing.T) {
	input := sampleTeams()
	repo := &stubRepository{res: result.Success(input)}

	got := NewService(repo).SortedTeams(context.Background(), teams.SortByConference).Value()

	wantIDs := []int{1, 2, 14}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %d, got %d", i, id, got[i].ID)
		}
	}
	if input[1].ID != 14 {
		t.Fatalf("expected repository slice untouched")
	}
}

func TestServiceSortedTeamsPassesFailureThrough(t *testing.T) {
	failure := result.NewError(result.KindServerError, "Server error (HTTP 500), please try again later", 500, nil)
	repo := &stubRepository{res: result.Failure[[]teams.Team](failure)}

	res := NewService(repo).SortedTeams(context.Background(), teams.SortByCity)
	if res.Ok() || res.Err() != failure {
		t.Fatalf("expected failure passthrough, got %+v", res.Err())
	}
}
