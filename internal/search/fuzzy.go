// Package search ranks catalog entries against a typed query.
package search

import (
	"slices"

	"github.com/asteroid-belt/skillsm/internal/models"
	"github.com/sahilm/fuzzy"
)

// Filter scores every entry against query and returns the indices of the
// matching entries, best match first. Each entry is scored on its display
// name, skill id and source repo; the best of the three counts. Entries
// that match in no field are dropped and ties keep catalog order.
//
// An empty query returns an empty slice, which callers treat as "no filter"
// rather than "no matches".
func Filter(entries []models.CatalogEntry, query string) []int {
	if query == "" || len(entries) == 0 {
		return []int{}
	}

	fields := []func(models.CatalogEntry) string{
		func(e models.CatalogEntry) string { return e.DisplayName },
		func(e models.CatalogEntry) string { return e.SkillID },
		func(e models.CatalogEntry) string { return e.SourceRepo },
	}

	best := make(map[int]int, len(entries))
	for _, field := range fields {
		for _, m := range fuzzy.FindFrom(query, fieldSource{entries: entries, field: field}) {
			if score, ok := best[m.Index]; !ok || m.Score > score {
				best[m.Index] = m.Score
			}
		}
	}

	indices := make([]int, 0, len(best))
	for idx := range best {
		indices = append(indices, idx)
	}
	slices.Sort(indices)
	slices.SortStableFunc(indices, func(a, b int) int {
		return best[b] - best[a]
	})
	return indices
}

// fieldSource adapts one string field of the entries to fuzzy.Source.
type fieldSource struct {
	entries []models.CatalogEntry
	field   func(models.CatalogEntry) string
}

func (s fieldSource) String(i int) string { return s.field(s.entries[i]) }

func (s fieldSource) Len() int { return len(s.entries) }
