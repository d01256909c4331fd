package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// ErrorBody mirrors the JSON error envelope written by the handlers.
type ErrorBody struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Code      int    `json:"code,omitempty"`
	RequestID string `json:"requestId"`
}

// Get issues a GET for target against h.
func Get(h http.Handler, target string) *httptest.ResponseRecorder {
	return ServeRequest(h, httptest.NewRequest(http.MethodGet, target, nil))
}

// ServeRequest executes req against h.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, rr.Code, rr.Body.String())
	}
}

// DecodeJSON checks the content type and decodes the body into dest.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	if err := json.NewDecoder(rr.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// AssertError checks status and kind of an error envelope and returns it.
func AssertError(t *testing.T, rr *httptest.ResponseRecorder, status int, kind string) ErrorBody {
	t.Helper()
	AssertStatus(t, rr, status)
	var body ErrorBody
	DecodeJSON(t, rr, &body)
	if body.Kind != kind {
		t.Fatalf("expected kind %q, got %q", kind, body.Kind)
	}
	if body.Error == "" {
		t.Fatalf("expected error message in %+v", body)
	}
	return body
}
