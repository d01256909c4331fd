package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// GamesQuery selects one page of a team's games.
type GamesQuery struct {
	TeamID  int
	Cursor  int
	PerPage int
}

// PlayersQuery selects one page of a player search.
type PlayersQuery struct {
	Search  string
	Cursor  int
	PerPage int
}

// Client issues single requests against the balldontlie API. It never retries
// and never pages on its own.
type Client struct {
	baseURL    string
	apiKey     string
	perPage    int
	httpClient *http.Client
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		perPage:    cfg.PerPage,
		httpClient: cfg.HTTPClient,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// Teams fetches every team.
func (c *Client) Teams(ctx context.Context) (TeamsResponse, error) {
	var payload TeamsResponse
	err := c.get(ctx, "/teams", nil, &payload)
	return payload, err
}

// Games fetches one page of games for a team.
func (c *Client) Games(ctx context.Context, q GamesQuery) (GamesResponse, error) {
	params := url.Values{}
	params.Set("team_ids[]", strconv.Itoa(q.TeamID))
	c.setPaging(params, q.Cursor, q.PerPage)

	var payload GamesResponse
	err := c.get(ctx, "/games", params, &payload)
	return payload, err
}

// Players fetches one page of players matching a search term.
func (c *Client) Players(ctx context.Context, q PlayersQuery) (PlayersResponse, error) {
	params := url.Values{}
	params.Set("search", q.Search)
	c.setPaging(params, q.Cursor, q.PerPage)

	var payload PlayersResponse
	err := c.get(ctx, "/players", params, &payload)
	return payload, err
}

// setPaging leaves cursor out for the first page.
func (c *Client) setPaging(params url.Values, cursor, perPage int) {
	if cursor > 0 {
		params.Set("cursor", strconv.Itoa(cursor))
	}
	if perPage <= 0 {
		perPage = c.perPage
	}
	params.Set("per_page", strconv.Itoa(clampPerPage(perPage)))
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := c.buildRequest(ctx, path, params)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return newStatusError(resp, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("balldontlie: decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	return req, nil
}
