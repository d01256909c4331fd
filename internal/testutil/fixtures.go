package testutil

import (
	"fmt"

	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
)

// SampleTeamDTO returns a team DTO with predictable fields derived from id.
func SampleTeamDTO(id int, city, name, conference string) balldontlie.TeamDTO {
	return balldontlie.TeamDTO{
		ID:           id,
		Abbreviation: fmt.Sprintf("T%02d", id),
		City:         city,
		Conference:   conference,
		Division:     "Division",
		FullName:     city + " " + name,
		Name:         name,
	}
}

// SampleTeamsResponse returns three teams in upstream order.
func SampleTeamsResponse() balldontlie.TeamsResponse {
	return balldontlie.TeamsResponse{Data: []balldontlie.TeamDTO{
		SampleTeamDTO(2, "Boston", "Celtics", "East"),
		SampleTeamDTO(14, "Los Angeles", "Lakers", "West"),
		SampleTeamDTO(1, "Atlanta", "Hawks", "East"),
	}}
}

// SampleGameDTO returns a final game between two sample teams.
func SampleGameDTO(id int) balldontlie.GameDTO {
	return balldontlie.GameDTO{
		ID:               id,
		Date:             "2024-01-02",
		Season:           2023,
		Status:           "Final",
		Period:           4,
		HomeTeamScore:    110,
		VisitorTeamScore: 102,
		HomeTeam:         SampleTeamDTO(2, "Boston", "Celtics", "East"),
		VisitorTeam:      SampleTeamDTO(14, "Los Angeles", "Lakers", "West"),
	}
}

// SamplePlayerDTO returns a player with imperial height and weight.
func SamplePlayerDTO(id int, first, last string) balldontlie.PlayerDTO {
	height, weight := "6-6", "190"
	return balldontlie.PlayerDTO{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Position:  "G",
		Height:    &height,
		Weight:    &weight,
		Team:      SampleTeamDTO(2, "Boston", "Celtics", "East"),
	}
}

// Cursor returns a pointer to c for building page metadata.
func Cursor(c int) *int {
	return &c
}
