package result

import (
	"errors"
	"testing"
)

func TestSuccessCarriesValue(t *testing.T) {
	r := Success([]string{"a", "b"})
	if !r.Ok() {
		t.Fatalf("expected success")
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error, got %v", r.Err())
	}
	if got := r.Value(); len(got) != 2 || got[1] != "b" {
		t.Fatalf("unexpected value %v", got)
	}
	v, err := r.Unwrap()
	if err != nil || len(v) != 2 {
		t.Fatalf("unexpected unwrap %v %v", v, err)
	}
}

func TestFailureCarriesError(t *testing.T) {
	cause := errors.New("boom")
	r := Failure[int](NewError(KindServerError, "Server error", 503, cause))
	if r.Ok() {
		t.Fatalf("expected failure")
	}
	if r.Value() != 0 {
		t.Fatalf("expected zero value on failure")
	}
	e := r.Err()
	if e.Kind != KindServerError || e.Code != 503 || !e.HasCode() {
		t.Fatalf("unexpected error %+v", e)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected error to unwrap to cause")
	}

	_, err := r.Unwrap()
	var target *Error
	if !errors.As(err, &target) || target.Kind != KindServerError {
		t.Fatalf("expected *Error from Unwrap, got %v", err)
	}
}

func TestFailureWithNilErrorIsUnclassified(t *testing.T) {
	r := Failure[string](nil)
	if r.Ok() {
		t.Fatalf("expected failure")
	}
	if r.Err().Kind != KindUnclassified || r.Err().Message == "" {
		t.Fatalf("unexpected fallback error %+v", r.Err())
	}
}

func TestValidationHasNoCode(t *testing.T) {
	e := Validation("query %q must not be blank", " ")
	if e.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %s", e.Kind)
	}
	if e.HasCode() || e.Cause != nil {
		t.Fatalf("expected no code and no cause, got %+v", e)
	}
	if e.Error() == "" {
		t.Fatalf("expected message")
	}
}

func TestNewErrorDefaultsMessage(t *testing.T) {
	if got := NewError(KindNetwork, "", 0, nil).Message; got != defaultMessage {
		t.Fatalf("expected default message, got %q", got)
	}
	var nilErr *Error
	if nilErr.Error() != "" || nilErr.Unwrap() != nil || nilErr.HasCode() {
		t.Fatalf("expected nil-safe accessors")
	}
}
