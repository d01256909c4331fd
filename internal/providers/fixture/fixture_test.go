package fixture

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
)

func TestTeamsReturnsDeterministicTeams(t *testing.T) {
	p := New()
	first, err := p.Teams(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, _ := p.Teams(context.Background())
	if len(first.Data) != 6 || len(second.Data) != 6 {
		t.Fatalf("expected 6 teams, got %d", len(first.Data))
	}
	if first.Data[0].FullName != "Boston Celtics" {
		t.Fatalf("unexpected first team %+v", first.Data[0])
	}
	first.Data[0].FullName = "mutated"
	if again, _ := p.Teams(context.Background()); again.Data[0].FullName != "Boston Celtics" {
		t.Fatalf("expected fixture data isolated from callers")
	}
}

func TestGamesPagesWithCursor(t *testing.T) {
	p := New()
	ctx := context.Background()

	page1, err := p.Games(ctx, balldontlie.GamesQuery{TeamID: 14, PerPage: 5})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page1.Data) != 5 || page1.Meta.NextCursor == nil || *page1.Meta.NextCursor != 5 {
		t.Fatalf("unexpected first page %d items next=%v", len(page1.Data), page1.Meta.NextCursor)
	}

	page2, _ := p.Games(ctx, balldontlie.GamesQuery{TeamID: 14, PerPage: 5, Cursor: *page1.Meta.NextCursor})
	if len(page2.Data) != gamesPerTeam-5 || page2.Meta.NextCursor != nil {
		t.Fatalf("unexpected last page %d items next=%v", len(page2.Data), page2.Meta.NextCursor)
	}
	for _, g := range append(page1.Data, page2.Data...) {
		if g.HomeTeam.ID != 14 && g.VisitorTeam.ID != 14 {
			t.Fatalf("game %d does not involve team 14", g.ID)
		}
	}
	live := page2.Data[len(page2.Data)-2]
	if live.Time == nil || live.Period != 3 {
		t.Fatalf("expected an in-progress game, got %+v", live)
	}
}

func TestGamesUnknownTeamIsEmpty(t *testing.T) {
	resp, err := New().Games(context.Background(), balldontlie.GamesQuery{TeamID: 999})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Data) != 0 || resp.Meta.NextCursor != nil {
		t.Fatalf("expected empty last page, got %+v", resp)
	}
}

func TestPlayersSearchIsCaseInsensitive(t *testing.T) {
	resp, err := New().Players(context.Background(), balldontlie.PlayersQuery{Search: "JAY"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected Jayson and Jaylen, got %d", len(resp.Data))
	}
	if resp.Data[0].LastName != "Tatum" || resp.Data[1].LastName != "Brown" {
		t.Fatalf("unexpected order %+v", resp.Data)
	}
}

func TestPlayersFullNameMatch(t *testing.T) {
	resp, _ := New().Players(context.Background(), balldontlie.PlayersQuery{Search: "lebron james"})
	if len(resp.Data) != 1 || resp.Data[0].ID != 237 {
		t.Fatalf("expected LeBron James, got %+v", resp.Data)
	}
}

func TestCanceledContextFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := New()
	if _, err := p.Teams(ctx); err == nil {
		t.Fatalf("expected error for canceled context")
	}
	if _, err := p.Games(ctx, balldontlie.GamesQuery{TeamID: 2}); err == nil {
		t.Fatalf("expected error for canceled context")
	}
	if _, err := p.Players(ctx, balldontlie.PlayersQuery{Search: "x"}); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

func TestPageOfBounds(t *testing.T) {
	items := []int{1, 2, 3}
	if got, next := pageOf(items, 5, 2); len(got) != 0 || next != nil {
		t.Fatalf("expected empty page past end")
	}
	if got, next := pageOf(items, 0, 3); len(got) != 3 || next != nil {
		t.Fatalf("expected exact final page without next cursor")
	}
	if got, next := pageOf(items, 1, 1); len(got) != 1 || got[0] != 2 || *next != 2 {
		t.Fatalf("unexpected middle page %v %v", got, next)
	}
}

func TestName(t *testing.T) {
	if New().Name() != "fixture" {
		t.Fatalf("unexpected name %s", New().Name())
	}
}
