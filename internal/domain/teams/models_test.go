package teams

import (
	"encoding/json"
	"testing"
)

func TestTeamEncodesCamelCase(t *testing.T) {
	raw, err := json.Marshal(Team{ID: 2, Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic", FullName: "Boston Celtics", Name: "Celtics"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"id":2,"abbreviation":"BOS","city":"Boston","conference":"East","division":"Atlantic","fullName":"Boston Celtics","name":"Celtics"}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}
