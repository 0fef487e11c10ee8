package filter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fsutil/internal/domain"
)

// GlobFilter matches entry basenames against shell glob patterns.
// Patterns starting with "!" are negations.
type GlobFilter struct {
	include []string
	exclude []string
}

// NewGlobFilter creates a glob filter from patterns such as "*.json" or "!*.tmp".
func NewGlobFilter(patterns []string) (*GlobFilter, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no patterns provided for glob filter")
	}

	f := &GlobFilter{}
	for _, raw := range patterns {
		pattern := strings.TrimSpace(raw)
		negated := strings.HasPrefix(pattern, "!")
		if negated {
			pattern = strings.TrimSpace(pattern[1:])
		}
		if pattern == "" {
			return nil, fmt.Errorf("empty glob pattern %q", raw)
		}
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", raw, err)
		}

		if negated {
			f.exclude = append(f.exclude, pattern)
		} else {
			f.include = append(f.include, pattern)
		}
	}

	return f, nil
}

// Match reports whether the entry basename satisfies the patterns. With only
// negations, an entry matches when it matches none of them; otherwise it must
// match at least one positive pattern and no negation.
func (f *GlobFilter) Match(entry domain.Entry) bool {
	if matchAny(f.exclude, entry.Basename) {
		return false
	}
	if len(f.include) == 0 {
		return true
	}
	return matchAny(f.include, entry.Basename)
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		// Patterns were validated at construction.
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
