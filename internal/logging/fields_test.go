package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestIdentityOmitsEmptyValues(t *testing.T) {
	if attrs := identity("", ""); len(attrs) != 0 {
		t.Fatalf("expected no attrs, got %+v", attrs)
	}
	attrs := identity("nba-data-client", "")
	if len(attrs) != 1 || attrs[0].Key != FieldService || attrs[0].Value.String() != "nba-data-client" {
		t.Fatalf("expected only service attr, got %+v", attrs)
	}
}

func TestTextLoggerCarriesIdentityOnEveryRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Service: "nba-data-client", Version: "dev", Output: &buf})

	Info(logger, "first")
	Warn(logger, "second", FieldCursor, 25)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %q", buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "service=nba-data-client") || !strings.Contains(line, "version=dev") {
			t.Fatalf("expected identity attrs in %q", line)
		}
	}
	if !strings.Contains(lines[1], "cursor=25") {
		t.Fatalf("expected cursor attr, got %q", lines[1])
	}
}
