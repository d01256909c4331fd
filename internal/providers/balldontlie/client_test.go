package balldontlie

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc, perPage int) *Client {
	return NewClient(Config{
		BaseURL:    "http://example.com/v1/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
		PerPage:    perPage,
	})
}

func TestTeamsHitsAPIAndDecodes(t *testing.T) {
	var capturedAuth, capturedPath, capturedQuery string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedAuth = req.Header.Get("Authorization")
		capturedPath = req.URL.Path
		capturedQuery = req.URL.RawQuery
		return jsonResponse(http.StatusOK, `{"data":[{"id":1,"abbreviation":"ATL","city":"Atlanta","conference":"East","division":"Southeast","full_name":"Atlanta Hawks","name":"Hawks"}]}`), nil
	})

	resp, err := newTestClient(rt, 0).Teams(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedAuth != "secret" {
		t.Fatalf("expected raw api key header, got %q", capturedAuth)
	}
	if capturedPath != "/v1/teams" {
		t.Fatalf("expected /v1/teams path, got %s", capturedPath)
	}
	if capturedQuery != "" {
		t.Fatalf("expected no query, got %s", capturedQuery)
	}
	if len(resp.Data) != 1 || resp.Data[0].FullName != "Atlanta Hawks" {
		t.Fatalf("unexpected payload %+v", resp)
	}
}

func TestGamesOmitsFirstCursorAndSetsPerPage(t *testing.T) {
	var queries []string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/v1/games" {
			t.Fatalf("expected /v1/games path, got %s", req.URL.Path)
		}
		q := req.URL.Query()
		queries = append(queries, q.Get("cursor"))
		if q.Get("team_ids[]") != "14" {
			t.Fatalf("expected team_ids[]=14, got %s", q.Get("team_ids[]"))
		}
		if q.Get("per_page") != "25" {
			t.Fatalf("expected per_page=25, got %s", q.Get("per_page"))
		}
		return jsonResponse(http.StatusOK, `{"data":[{"id":7,"status":"Final","time":null}],"meta":{"next_cursor":31,"per_page":25}}`), nil
	})
	client := newTestClient(rt, 0)

	resp, err := client.Games(context.Background(), GamesQuery{TeamID: 14})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Meta.NextCursor == nil || *resp.Meta.NextCursor != 31 {
		t.Fatalf("expected next cursor 31, got %+v", resp.Meta)
	}
	if _, err := client.Games(context.Background(), GamesQuery{TeamID: 14, Cursor: 31}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if queries[0] != "" || queries[1] != "31" {
		t.Fatalf("unexpected cursors %v", queries)
	}
}

func TestPlayersSendsSearchAndQueryPerPage(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		q := req.URL.Query()
		if q.Get("search") != "lebron james" {
			t.Fatalf("expected search term, got %q", q.Get("search"))
		}
		if q.Get("per_page") != "100" {
			t.Fatalf("expected per_page capped at 100, got %s", q.Get("per_page"))
		}
		return jsonResponse(http.StatusOK, `{"data":[{"id":237,"first_name":"LeBron","last_name":"James","height":"6-9","weight":"250"}],"meta":{"per_page":100}}`), nil
	})

	resp, err := newTestClient(rt, 40).Players(context.Background(), PlayersQuery{Search: "lebron james", PerPage: 500})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Meta.NextCursor != nil {
		t.Fatalf("expected last page, got %v", *resp.Meta.NextCursor)
	}
	if len(resp.Data) != 1 || resp.Data[0].Height == nil || *resp.Data[0].Height != "6-9" {
		t.Fatalf("unexpected payload %+v", resp.Data)
	}
}

func TestNon2xxReturnsStatusError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, " slow down ")
		resp.Header.Set("Retry-After", "30")
		return resp, nil
	})

	_, err := newTestClient(rt, 0).Teams(context.Background())
	statusErr, ok := AsStatusError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", statusErr.StatusCode)
	}
	if statusErr.RetryAfter != 30*time.Second {
		t.Fatalf("expected retry after 30s, got %s", statusErr.RetryAfter)
	}
	if statusErr.Body != "slow down" {
		t.Fatalf("expected trimmed body, got %q", statusErr.Body)
	}
	if !strings.Contains(statusErr.Error(), "429") {
		t.Fatalf("expected status in message, got %s", statusErr.Error())
	}
}

func TestDecodeErrorIsWrapped(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"data": [`), nil
	})

	_, err := newTestClient(rt, 0).Teams(context.Background())
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF in chain, got %v", err)
	}
	if _, ok := AsStatusError(err); ok {
		t.Fatalf("decode error must not be a status error")
	}
}

func TestTransportErrorPassesThrough(t *testing.T) {
	boom := errors.New("dial failed")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	_, err := newTestClient(rt, 0).Players(context.Background(), PlayersQuery{Search: "x"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error in chain, got %v", err)
	}
}

func TestNoAuthorizationHeaderWithoutKey(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if _, ok := req.Header["Authorization"]; ok {
			t.Fatalf("expected no authorization header")
		}
		return jsonResponse(http.StatusOK, `{"data":[]}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.Teams(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNewClientSetsDefaults(t *testing.T) {
	c := NewClient(Config{})
	if c.httpClient == nil || c.httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.baseURL != defaultBaseURL || c.perPage != defaultPerPage {
		t.Fatalf("unexpected defaults base=%s perPage=%d", c.baseURL, c.perPage)
	}
	if c.Name() != "balldontlie" {
		t.Fatalf("unexpected name %s", c.Name())
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
