package balldontlie

import (
	"strings"

	"github.com/preston-bernstein/nba-data-client/internal/domain/games"
	"github.com/preston-bernstein/nba-data-client/internal/domain/players"
	"github.com/preston-bernstein/nba-data-client/internal/domain/teams"
	"github.com/preston-bernstein/nba-data-client/internal/paging"
)

// MapTeam converts a team DTO into the domain shape.
func MapTeam(t TeamDTO) teams.Team {
	return teams.Team{
		ID:           t.ID,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Conference:   t.Conference,
		Division:     t.Division,
		FullName:     t.FullName,
		Name:         t.Name,
	}
}

// MapTeams maps element-wise, preserving order.
func MapTeams(resp TeamsResponse) []teams.Team {
	out := make([]teams.Team, 0, len(resp.Data))
	for _, t := range resp.Data {
		out = append(out, MapTeam(t))
	}
	return out
}

func MapGame(g GameDTO) games.Game {
	return games.Game{
		ID:               g.ID,
		Date:             g.Date,
		HomeTeam:         MapTeam(g.HomeTeam),
		VisitorTeam:      MapTeam(g.VisitorTeam),
		HomeTeamScore:    g.HomeTeamScore,
		VisitorTeamScore: g.VisitorTeamScore,
		Season:           g.Season,
		Period:           g.Period,
		Status:           g.Status,
		Time:             optionalString(g.Time),
		Postseason:       g.Postseason,
	}
}

// MapGamePage maps one /games page; the next cursor is carried through as-is.
func MapGamePage(resp GamesResponse) paging.Page[games.Game] {
	out := make([]games.Game, 0, len(resp.Data))
	for _, g := range resp.Data {
		out = append(out, MapGame(g))
	}
	return paging.NewPage(out, copyInt(resp.Meta.NextCursor))
}

func MapPlayer(p PlayerDTO) players.Player {
	return players.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  p.Position,
		HeightCm:  heightCm(p.Height),
		WeightKg:  weightKg(p.Weight),
		Team:      MapTeam(p.Team),
		Meta: players.PlayerMeta{
			JerseyNumber: valueOrEmpty(p.JerseyNumber),
			College:      valueOrEmpty(p.College),
			Country:      valueOrEmpty(p.Country),
			DraftYear:    copyInt(p.DraftYear),
		},
	}
}

func MapPlayerPage(resp PlayersResponse) paging.Page[players.Player] {
	out := make([]players.Player, 0, len(resp.Data))
	for _, p := range resp.Data {
		out = append(out, MapPlayer(p))
	}
	return paging.NewPage(out, copyInt(resp.Meta.NextCursor))
}

func optionalString(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func valueOrEmpty(raw *string) string {
	if raw == nil {
		return ""
	}
	return strings.TrimSpace(*raw)
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
