package app

import "github.com/asteroid-belt/skillsm/internal/models"

const noSelection = -1

// ViewState is the per-view list: its entries, the active filter, the
// selection cursor and the fetch status.
//
// An empty filter means no filter is active and every entry is visible.
// The selection, when present, always indexes the visible sequence.
type ViewState struct {
	entries  []models.CatalogEntry
	filter   []int
	selected int
	loading  bool
	err      string
}

func newViewState() *ViewState {
	return &ViewState{selected: noSelection}
}

// Entries returns the full entry list in ranking order.
func (v *ViewState) Entries() []models.CatalogEntry { return v.entries }

// Filtered reports whether a filter is active.
func (v *ViewState) Filtered() bool { return len(v.filter) > 0 }

// Len returns the number of visible entries.
func (v *ViewState) Len() int {
	if v.Filtered() {
		return len(v.filter)
	}
	return len(v.entries)
}

// At returns the i-th visible entry and its rank in the full list.
func (v *ViewState) At(i int) (entry models.CatalogEntry, rank int, ok bool) {
	if i < 0 || i >= v.Len() {
		return models.CatalogEntry{}, 0, false
	}
	idx := i
	if v.Filtered() {
		idx = v.filter[i]
	}
	return v.entries[idx], idx + 1, true
}

// Visible returns the entries currently shown, in display order.
func (v *ViewState) Visible() []models.CatalogEntry {
	if !v.Filtered() {
		return v.entries
	}
	out := make([]models.CatalogEntry, 0, len(v.filter))
	for _, idx := range v.filter {
		out = append(out, v.entries[idx])
	}
	return out
}

// SelectedIndex returns the cursor position in the visible sequence.
func (v *ViewState) SelectedIndex() (int, bool) {
	return v.selected, v.selected != noSelection
}

// Selected returns the entry under the cursor.
func (v *ViewState) Selected() (models.CatalogEntry, bool) {
	if v.selected == noSelection {
		return models.CatalogEntry{}, false
	}
	e, _, ok := v.At(v.selected)
	return e, ok
}

// Loading reports whether a fetch for this view is outstanding.
func (v *ViewState) Loading() bool { return v.loading }

// Err returns the last fetch error recorded on the view.
func (v *ViewState) Err() string { return v.err }

// replace swaps in a freshly fetched list. Filter indices refer to the old
// list, so they are dropped.
func (v *ViewState) replace(entries []models.CatalogEntry) {
	v.entries = entries
	v.filter = nil
	v.loading = false
	v.err = ""
	v.clamp()
	if v.selected == noSelection && len(v.entries) > 0 {
		v.selected = 0
	}
}

func (v *ViewState) move(delta int) {
	n := v.Len()
	if n == 0 {
		return
	}
	cur := v.selected
	if cur == noSelection {
		cur = 0
	}
	v.selected = min(max(cur+delta, 0), n-1)
}

func (v *ViewState) top() {
	if v.Len() > 0 {
		v.selected = 0
	}
}

func (v *ViewState) bottom() {
	if n := v.Len(); n > 0 {
		v.selected = n - 1
	}
}

// setFilter installs the matches of a non-empty query and moves the cursor
// to the first match. With no matches the cursor is cleared.
func (v *ViewState) setFilter(indices []int) {
	v.filter = indices
	if len(indices) > 0 {
		v.selected = 0
	} else {
		v.selected = noSelection
	}
}

func (v *ViewState) clearFilter() {
	v.filter = nil
	v.clamp()
}

func (v *ViewState) clamp() {
	n := v.Len()
	switch {
	case n == 0:
		v.selected = noSelection
	case v.selected >= n:
		v.selected = n - 1
	}
}
