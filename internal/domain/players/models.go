package players

import (
	"github.com/preston-bernstein/nba-data-client/internal/domain/teams"
)

// Player represents the normalized player shape. Height and weight are metric and
// nil when upstream did not report a usable value.
type Player struct {
	ID        int        `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Position  string     `json:"position"`
	HeightCm  *int       `json:"heightCm"`
	WeightKg  *int       `json:"weightKg"`
	Team      teams.Team `json:"team"`
	Meta      PlayerMeta `json:"meta"`
}

// PlayerMeta holds optional upstream details.
type PlayerMeta struct {
	JerseyNumber string `json:"jerseyNumber,omitempty"`
	College      string `json:"college,omitempty"`
	Country      string `json:"country,omitempty"`
	DraftYear    *int   `json:"draftYear,omitempty"`
}

// FullName joins first and last name.
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
