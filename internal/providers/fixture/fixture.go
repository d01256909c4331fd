package fixture

import (
	"context"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
)

const (
	providerName    = "fixture"
	defaultPerPage  = 25
	gamesPerTeam    = 8
	fixtureSeason   = 2023
	seasonOpenerUTC = "2023-10-24"
)

// Provider serves a static data set shaped like balldontlie responses, with
// cursor paging, for local use without an API key.
type Provider struct {
	teams   []balldontlie.TeamDTO
	players []balldontlie.PlayerDTO
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{
		teams:   fixtureTeams(),
		players: fixturePlayers(),
	}
}

func (p *Provider) Name() string {
	return providerName
}

// Teams returns every fixture team.
func (p *Provider) Teams(ctx context.Context) (balldontlie.TeamsResponse, error) {
	if err := ctx.Err(); err != nil {
		return balldontlie.TeamsResponse{}, err
	}
	return balldontlie.TeamsResponse{Data: append([]balldontlie.TeamDTO(nil), p.teams...)}, nil
}

// Games pages through a team's deterministic schedule. Unknown teams yield an empty page.
func (p *Provider) Games(ctx context.Context, q balldontlie.GamesQuery) (balldontlie.GamesResponse, error) {
	if err := ctx.Err(); err != nil {
		return balldontlie.GamesResponse{}, err
	}
	data, next := pageOf(p.gamesFor(q.TeamID), q.Cursor, q.PerPage)
	return balldontlie.GamesResponse{
		Data: data,
		Meta: balldontlie.MetaDTO{NextCursor: next, PerPage: resolvePerPage(q.PerPage)},
	}, nil
}

// Players pages through players whose first, last or full name contains the search term.
func (p *Provider) Players(ctx context.Context, q balldontlie.PlayersQuery) (balldontlie.PlayersResponse, error) {
	if err := ctx.Err(); err != nil {
		return balldontlie.PlayersResponse{}, err
	}
	term := strings.ToLower(strings.TrimSpace(q.Search))
	matches := make([]balldontlie.PlayerDTO, 0, len(p.players))
	for _, pl := range p.players {
		full := strings.ToLower(pl.FirstName + " " + pl.LastName)
		if term == "" || strings.Contains(full, term) {
			matches = append(matches, pl)
		}
	}
	data, next := pageOf(matches, q.Cursor, q.PerPage)
	return balldontlie.PlayersResponse{
		Data: data,
		Meta: balldontlie.MetaDTO{NextCursor: next, PerPage: resolvePerPage(q.PerPage)},
	}, nil
}

func (p *Provider) gamesFor(teamID int) []balldontlie.GameDTO {
	home, idx := p.team(teamID)
	if idx < 0 {
		return nil
	}
	opener, _ := time.Parse("2006-01-02", seasonOpenerUTC)
	games := make([]balldontlie.GameDTO, 0, gamesPerTeam)
	for i := 0; i < gamesPerTeam; i++ {
		opponent := p.teams[(idx+i+1)%len(p.teams)]
		g := balldontlie.GameDTO{
			ID:          teamID*1000 + i + 1,
			Date:        opener.AddDate(0, 0, i*2).Format("2006-01-02"),
			Season:      fixtureSeason,
			HomeTeam:    home,
			VisitorTeam: opponent,
		}
		if i%2 == 1 {
			g.HomeTeam, g.VisitorTeam = opponent, home
		}
		switch {
		case i < gamesPerTeam-2:
			g.Status = "Final"
			g.Period = 4
			g.HomeTeamScore = 100 + (teamID*7+i*3)%25
			g.VisitorTeamScore = 95 + (teamID*5+i*11)%25
		case i == gamesPerTeam-2:
			clock := "5:42"
			g.Status = "3rd Qtr"
			g.Period = 3
			g.Time = &clock
			g.HomeTeamScore = 71
			g.VisitorTeamScore = 68
		default:
			g.Status = "7:30 pm ET"
		}
		games = append(games, g)
	}
	return games
}

func (p *Provider) team(id int) (balldontlie.TeamDTO, int) {
	for i, t := range p.teams {
		if t.ID == id {
			return t, i
		}
	}
	return balldontlie.TeamDTO{}, -1
}

// pageOf slices items starting at cursor. The cursor is an offset; the next
// cursor is nil once the slice is exhausted.
func pageOf[T any](items []T, cursor, perPage int) ([]T, *int) {
	perPage = resolvePerPage(perPage)
	if cursor < 0 || cursor >= len(items) {
		return []T{}, nil
	}
	end := cursor + perPage
	if end >= len(items) {
		return append([]T(nil), items[cursor:]...), nil
	}
	next := end
	return append([]T(nil), items[cursor:end]...), &next
}

func resolvePerPage(perPage int) int {
	if perPage <= 0 {
		return defaultPerPage
	}
	return perPage
}

func fixtureTeams() []balldontlie.TeamDTO {
	return []balldontlie.TeamDTO{
		{ID: 2, Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic", FullName: "Boston Celtics", Name: "Celtics"},
		{ID: 14, Abbreviation: "LAL", City: "Los Angeles", Conference: "West", Division: "Pacific", FullName: "Los Angeles Lakers", Name: "Lakers"},
		{ID: 10, Abbreviation: "GSW", City: "Golden State", Conference: "West", Division: "Pacific", FullName: "Golden State Warriors", Name: "Warriors"},
		{ID: 16, Abbreviation: "MIA", City: "Miami", Conference: "East", Division: "Southeast", FullName: "Miami Heat", Name: "Heat"},
		{ID: 8, Abbreviation: "DEN", City: "Denver", Conference: "West", Division: "Northwest", FullName: "Denver Nuggets", Name: "Nuggets"},
		{ID: 1, Abbreviation: "ATL", City: "Atlanta", Conference: "East", Division: "Southeast", FullName: "Atlanta Hawks", Name: "Hawks"},
	}
}

func fixturePlayers() []balldontlie.PlayerDTO {
	teams := fixtureTeams()
	player := func(id int, first, last, pos, height, weight, jersey, college, country string, draft int, team balldontlie.TeamDTO) balldontlie.PlayerDTO {
		p := balldontlie.PlayerDTO{
			ID:        id,
			FirstName: first,
			LastName:  last,
			Position:  pos,
			Team:      team,
		}
		if height != "" {
			p.Height = &height
		}
		if weight != "" {
			p.Weight = &weight
		}
		if jersey != "" {
			p.JerseyNumber = &jersey
		}
		if college != "" {
			p.College = &college
		}
		if country != "" {
			p.Country = &country
		}
		if draft > 0 {
			p.DraftYear = &draft
		}
		return p
	}
	return []balldontlie.PlayerDTO{
		player(434, "Jayson", "Tatum", "F", "6-8", "210", "0", "Duke", "USA", 2017, teams[0]),
		player(237, "LeBron", "James", "F", "6-9", "250", "23", "St. Vincent-St. Mary HS (OH)", "USA", 2003, teams[1]),
		player(115, "Stephen", "Curry", "G", "6-2", "185", "30", "Davidson", "USA", 2009, teams[2]),
		player(79, "Jimmy", "Butler", "F", "6-7", "230", "22", "Marquette", "USA", 2011, teams[3]),
		player(246, "Nikola", "Jokic", "C", "6-11", "284", "15", "", "Serbia", 2014, teams[4]),
		player(458, "Trae", "Young", "G", "6-1", "164", "11", "Oklahoma", "USA", 2018, teams[5]),
		player(15, "Jaylen", "Brown", "G-F", "6-6", "223", "7", "California", "USA", 2016, teams[0]),
		player(3547, "Anthony", "Davis", "F-C", "6-10", "253", "3", "Kentucky", "USA", 2012, teams[1]),
		player(9001, "Legacy", "Player", "G", "", "", "", "", "", 0, balldontlie.TeamDTO{}),
	}
}

