package filter

import "fsutil/internal/domain"

// NoOpFilter is a filter that accepts every entry.
type NoOpFilter struct{}

// NewNoOpFilter creates a new no-op filter.
func NewNoOpFilter() *NoOpFilter {
	return &NoOpFilter{}
}

// Match always returns true.
func (f *NoOpFilter) Match(_ domain.Entry) bool {
	return true
}
