package models

import (
	"fmt"
	"slices"
)

// ViewKind identifies one of the three ranked catalog views.
type ViewKind int

const (
	ViewAllTime ViewKind = iota
	ViewTrending
	ViewHot
)

// AllViews returns every view in tab order.
func AllViews() []ViewKind {
	return []ViewKind{ViewAllTime, ViewTrending, ViewHot}
}

// Label returns the tab label for the view.
func (v ViewKind) Label() string {
	switch v {
	case ViewAllTime:
		return "All Time"
	case ViewTrending:
		return "Trending (24h)"
	case ViewHot:
		return "Hot"
	default:
		return "Unknown"
	}
}

// Slug returns the query value the catalog uses for this view.
func (v ViewKind) Slug() string {
	switch v {
	case ViewTrending:
		return "trending"
	case ViewHot:
		return "hot"
	default:
		return "all-time"
	}
}

// String implements fmt.Stringer.
func (v ViewKind) String() string {
	return v.Slug()
}

// Next returns the following view, wrapping around.
func (v ViewKind) Next() ViewKind {
	return ViewKind((int(v) + 1) % len(AllViews()))
}

// Prev returns the preceding view, wrapping around.
func (v ViewKind) Prev() ViewKind {
	n := len(AllViews())
	return ViewKind((int(v) + n - 1) % n)
}

// ParseViewKind maps a slug ("all-time", "trending", "hot") to a ViewKind.
func ParseViewKind(s string) (ViewKind, error) {
	for _, v := range AllViews() {
		if v.Slug() == s {
			return v, nil
		}
	}
	return ViewAllTime, fmt.Errorf("unknown view %q (want all-time, trending or hot)", s)
}

// Sort orders entries in place by the view's ranking rule. The sort is
// stable so ties keep catalog order.
//
// AllTime ranks by install count; Trending and Hot rank by change delta.
func (v ViewKind) Sort(entries []CatalogEntry) {
	switch v {
	case ViewAllTime:
		slices.SortStableFunc(entries, func(a, b CatalogEntry) int {
			return cmpDesc(a.InstallCount, b.InstallCount)
		})
	default:
		slices.SortStableFunc(entries, func(a, b CatalogEntry) int {
			return cmpDesc(a.Delta(), b.Delta())
		})
	}
}

func cmpDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
