// Package gallery filters an in-memory catalog snapshot with a
// free-text query. The filter is a pure function over the snapshot:
// the full list is never mutated, so clearing the query always
// restores the original view.
package gallery

import (
	"strings"

	"github.com/smallbiznis/snackcat/internal/snack/domain"
)

// Filter returns the entries whose name, brand, flavor, or store
// contains query case-insensitively, preserving relative order. A
// blank query returns the input unchanged. An absent store never
// matches on its own.
func Filter(entries []domain.Response, query string) []domain.Response {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}

	out := make([]domain.Response, 0, len(entries))
	for _, e := range entries {
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e domain.Response, q string) bool {
	fields := []string{e.Name, e.Brand, e.Flavor}
	if e.Store != nil {
		fields = append(fields, *e.Store)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Snapshot holds the client's full copy of the catalog and recomputes
// a filtered view on every query change.
type Snapshot struct {
	entries []domain.Response
}

func NewSnapshot(entries []domain.Response) *Snapshot {
	return &Snapshot{entries: entries}
}

// Replace swaps in a freshly loaded catalog.
func (s *Snapshot) Replace(entries []domain.Response) {
	s.entries = entries
}

// View returns the filtered view for query, always computed from the
// full snapshot.
func (s *Snapshot) View(query string) []domain.Response {
	return Filter(s.entries, query)
}
