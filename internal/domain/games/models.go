package games

import (
	"strings"

	"github.com/preston-bernstein/nba-data-client/internal/domain/teams"
)

// StatusKind normalizes the upstream status text into a small enum.
type StatusKind string

const (
	StatusScheduled  StatusKind = "SCHEDULED"
	StatusInProgress StatusKind = "IN_PROGRESS"
	StatusFinal      StatusKind = "FINAL"
	StatusPostponed  StatusKind = "POSTPONED"
	StatusCanceled   StatusKind = "CANCELED"
)

// Game is the canonical game shape. Status is kept verbatim; Time is nil when the
// game is not in progress.
type Game struct {
	ID               int        `json:"id"`
	Date             string     `json:"date"`
	HomeTeam         teams.Team `json:"homeTeam"`
	VisitorTeam      teams.Team `json:"visitorTeam"`
	HomeTeamScore    int        `json:"homeTeamScore"`
	VisitorTeamScore int        `json:"visitorTeamScore"`
	Season           int        `json:"season"`
	Period           int        `json:"period"`
	Status           string     `json:"status"`
	Time             *string    `json:"time"`
	Postseason       bool       `json:"postseason"`
}

// Kind maps Status onto a StatusKind. Scheduled games report a start time as their
// status upstream, so anything unrecognized is treated as scheduled.
func (g Game) Kind() StatusKind {
	switch strings.ToLower(strings.TrimSpace(g.Status)) {
	case "final", "ended":
		return StatusFinal
	case "in progress", "halftime", "end of period":
		return StatusInProgress
	case "postponed":
		return StatusPostponed
	case "canceled", "cancelled":
		return StatusCanceled
	}
	if g.Time != nil && g.Period > 0 {
		return StatusInProgress
	}
	return StatusScheduled
}
