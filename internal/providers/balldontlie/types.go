package balldontlie

// TeamsResponse is the /teams payload. Teams are not paginated upstream.
type TeamsResponse struct {
	Data []TeamDTO `json:"data"`
}

// GamesResponse is one page of /games.
type GamesResponse struct {
	Data []GameDTO `json:"data"`
	Meta MetaDTO   `json:"meta"`
}

// PlayersResponse is one page of /players.
type PlayersResponse struct {
	Data []PlayerDTO `json:"data"`
	Meta MetaDTO     `json:"meta"`
}

// MetaDTO carries cursor pagination. NextCursor is absent on the last page.
type MetaDTO struct {
	NextCursor *int `json:"next_cursor"`
	PerPage    int  `json:"per_page"`
}

type TeamDTO struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type GameDTO struct {
	ID               int     `json:"id"`
	Date             string  `json:"date"`
	Season           int     `json:"season"`
	Status           string  `json:"status"`
	Period           int     `json:"period"`
	Time             *string `json:"time"`
	Postseason       bool    `json:"postseason"`
	HomeTeamScore    int     `json:"home_team_score"`
	VisitorTeamScore int     `json:"visitor_team_score"`
	HomeTeam         TeamDTO `json:"home_team"`
	VisitorTeam      TeamDTO `json:"visitor_team"`
}

// PlayerDTO mirrors the upstream player. Height ("6-6") and weight ("190") are
// imperial strings and may be null or empty.
type PlayerDTO struct {
	ID           int     `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Position     string  `json:"position"`
	Height       *string `json:"height"`
	Weight       *string `json:"weight"`
	JerseyNumber *string `json:"jersey_number"`
	College      *string `json:"college"`
	Country      *string `json:"country"`
	DraftYear    *int    `json:"draft_year"`
	Team         TeamDTO `json:"team"`
}
