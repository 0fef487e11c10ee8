package filter

import "fsutil/internal/domain"

// AllFilter accepts an entry only when every wrapped filter accepts it.
type AllFilter struct {
	filters []domain.EntryFilter
}

// All combines filters, skipping nil ones. It returns nil when no filters remain
// so callers can pass the result straight into domain.ReaddirOptions.
func All(filters ...domain.EntryFilter) domain.EntryFilter {
	var kept []domain.EntryFilter
	for _, f := range filters {
		if f != nil {
			kept = append(kept, f)
		}
	}

	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return &AllFilter{filters: kept}
	}
}

// Match implements domain.EntryFilter.
func (f *AllFilter) Match(entry domain.Entry) bool {
	for _, inner := range f.filters {
		if !inner.Match(entry) {
			return false
		}
	}
	return true
}
