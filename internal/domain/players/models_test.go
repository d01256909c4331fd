package players

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPlayerEncodesUnknownMeasurementsAsNull(t *testing.T) {
	raw, err := json.Marshal(Player{ID: 7, FirstName: "Jane", LastName: "Doe"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(raw)
	for _, want := range []string{`"heightCm":null`, `"weightKg":null`, `"meta":{}`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestPlayerMetaOmitsEmptyFields(t *testing.T) {
	year := 2003
	raw, err := json.Marshal(PlayerMeta{College: "None", DraftYear: &year})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != `{"college":"None","draftYear":2003}` {
		t.Fatalf("unexpected meta json %s", raw)
	}
}

func TestFullName(t *testing.T) {
	p := Player{FirstName: "LeBron", LastName: "James"}
	if got := p.FullName(); got != "LeBron James" {
		t.Fatalf("expected LeBron James, got %q", got)
	}
}
