package teams

// Team represents the normalized team shape used on its own and nested inside games and players.
type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"fullName"`
	Name         string `json:"name"`
}
