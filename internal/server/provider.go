package server

import (
	"log/slog"

	gamesapp "github.com/preston-bernstein/nba-data-client/internal/app/games"
	playersapp "github.com/preston-bernstein/nba-data-client/internal/app/players"
	teamsapp "github.com/preston-bernstein/nba-data-client/internal/app/teams"
	"github.com/preston-bernstein/nba-data-client/internal/config"
	"github.com/preston-bernstein/nba-data-client/internal/http/handlers"
	"github.com/preston-bernstein/nba-data-client/internal/providers"
	"github.com/preston-bernstein/nba-data-client/internal/repository"
)

// ProviderSettings maps configuration onto provider selection.
func ProviderSettings(cfg config.Config) providers.Settings {
	return providers.Settings{
		Name:        cfg.Provider,
		BaseURL:     cfg.APIBaseURL,
		APIKey:      cfg.APIKey,
		PerPage:     cfg.PerPage,
		HTTPTimeout: cfg.HTTPTimeout,
	}
}

// BuildServices wires repositories and use cases over provider.
func BuildServices(cfg config.Config, provider providers.DataProvider, logger *slog.Logger) handlers.Services {
	return handlers.Services{
		Teams:   teamsapp.NewService(repository.NewTeams(provider, logger)),
		Games:   gamesapp.NewService(repository.NewGames(provider, logger, cfg.PerPage)),
		Players: playersapp.NewService(repository.NewPlayers(provider, logger, cfg.PerPage)),
	}
}
