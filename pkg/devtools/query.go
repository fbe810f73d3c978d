package devtools

import (
	"slices"
	"strconv"
)

// DefaultLimit is the page size used when a Filter has no positive limit.
const DefaultLimit = 100

// Filter selects and pages entries. Zero values disable each criterion.
type Filter struct {
	Type     EndpointType
	Model    string
	HasError *bool
	Offset   int
	Limit    int
}

// ParseHasError maps "true"/"false" to a filter value; anything else
// disables the criterion.
func ParseHasError(s string) *bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

// Matches reports whether e satisfies the filter criteria, ignoring paging.
func (f Filter) Matches(e Entry) bool {
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Model != "" && e.Metadata.Model != f.Model {
		return false
	}
	if f.HasError != nil && e.HasError() != *f.HasError {
		return false
	}
	return true
}

// Page is one slice of a filtered, most-recent-first result.
type Page struct {
	Generations []Entry `json:"generations"`
	Total       int     `json:"total"`
	Offset      int     `json:"offset"`
	Limit       int     `json:"limit"`
}

// Apply filters entries, orders them most recent first and pages the result.
// The input slice is not modified.
func Apply(entries []Entry, f Filter) Page {
	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}
	SortRecentFirst(matched)

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset := max(f.Offset, 0)
	page := Page{Total: len(matched), Offset: offset, Limit: limit, Generations: []Entry{}}
	if offset >= len(matched) {
		return page
	}
	end := min(offset+limit, len(matched))
	page.Generations = matched[offset:end]
	return page
}

// SortRecentFirst orders entries by descending timestamp, breaking ties by id.
func SortRecentFirst(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
