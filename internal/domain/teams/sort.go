package teams

import (
	"slices"
	"strings"
)

// SortKey selects the field teams are ordered by.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByCity       SortKey = "city"
	SortByConference SortKey = "conference"
)

// SortKeys lists the supported keys in display order.
var SortKeys = []SortKey{SortByName, SortByCity, SortByConference}

// ParseSortKey resolves a user-supplied key, case-insensitively.
func ParseSortKey(raw string) (SortKey, bool) {
	key := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	if slices.Contains(SortKeys, key) {
		return key, true
	}
	return "", false
}

// Sort returns a new slice ordered ascending by the field named by key.
// Ties keep their original relative order; the input slice is never modified.
// Unknown keys sort by name.
func Sort(items []Team, key SortKey) []Team {
	out := slices.Clone(items)
	if out == nil {
		out = []Team{}
	}
	field := fieldFor(key)
	slices.SortStableFunc(out, func(a, b Team) int {
		return strings.Compare(field(a), field(b))
	})
	return out
}

func fieldFor(key SortKey) func(Team) string {
	switch key {
	case SortByCity:
		return func(t Team) string { return t.City }
	case SortByConference:
		return func(t Team) string { return t.Conference }
	default:
		return func(t Team) string { return t.FullName }
	}
}
