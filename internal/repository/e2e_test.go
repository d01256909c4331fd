package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/nba-data-client/internal/domain/teams"
	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

const teamsFixture = `{"data":[
	{"id":1,"abbreviation":"ATL","city":"Atlanta","conference":"East","division":"Southeast","full_name":"Atlanta Hawks","name":"Hawks"},
	{"id":2,"abbreviation":"BOS","city":"Boston","conference":"East","division":"Atlantic","full_name":"Boston Celtics","name":"Celtics"}
]}`

func TestTeamsEndToEndAgainstHTTPServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/teams" || r.Header.Get("Authorization") != "key-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(teamsFixture))
	}))
	defer srv.Close()

	client := balldontlie.NewClient(balldontlie.Config{BaseURL: srv.URL + "/v1", APIKey: "key-123"})
	res := NewTeams(client, nil).Teams(context.Background())

	want := []teams.Team{
		{ID: 1, Abbreviation: "ATL", City: "Atlanta", Conference: "East", Division: "Southeast", FullName: "Atlanta Hawks", Name: "Hawks"},
		{ID: 2, Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic", FullName: "Boston Celtics", Name: "Celtics"},
	}
	if diff := cmp.Diff(want, res.Value()); diff != "" {
		t.Fatalf("unexpected teams (-want +got):\n%s", diff)
	}
}

func TestEndToEndStatusClassification(t *testing.T) {
	cases := map[int]result.Kind{
		http.StatusUnauthorized:        result.KindUnauthorized,
		http.StatusNotFound:            result.KindNotFound,
		http.StatusInternalServerError: result.KindServerError,
		http.StatusTeapot:              result.KindHTTPError,
	}
	for status, kind := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		client := balldontlie.NewClient(balldontlie.Config{BaseURL: srv.URL})
		res := NewTeams(client, nil).Teams(context.Background())
		srv.Close()

		if res.Err() == nil || res.Err().Kind != kind || res.Err().Code != status {
			t.Fatalf("status %d: unexpected result %+v", status, res.Err())
		}
	}
}

func TestEndToEndClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := balldontlie.NewClient(balldontlie.Config{
		BaseURL:    srv.URL,
		HTTPClient: &http.Client{Timeout: 50 * time.Millisecond},
	})
	res := NewTeams(client, nil).Teams(context.Background())

	if res.Err() == nil || res.Err().Kind != result.KindTimeout || res.Err().HasCode() {
		t.Fatalf("expected timeout classification, got %+v", res.Err())
	}
}
