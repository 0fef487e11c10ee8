package filter

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"

	"fsutil/internal/domain"
)

// ExcludeFilter rejects entries whose relative path matches any regex pattern.
type ExcludeFilter struct {
	patterns []*regexp.Regexp
	logger   *slog.Logger
}

// NewExcludeFilter creates a new exclude filter with the given patterns.
func NewExcludeFilter(patterns []string, logger *slog.Logger) (*ExcludeFilter, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no patterns provided for exclude filter")
	}

	compiledPatterns := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		compiledPatterns = append(compiledPatterns, compiled)
	}

	return &ExcludeFilter{
		patterns: compiledPatterns,
		logger:   logger,
	}, nil
}

// ShouldExclude returns true if the slash-separated path matches any exclude pattern.
func (f *ExcludeFilter) ShouldExclude(path string) bool {
	for i, pattern := range f.patterns {
		if pattern.MatchString(path) {
			f.logger.Debug("Entry excluded",
				"path", path,
				"matched_pattern", pattern.String(),
				"pattern_index", i)
			return true
		}
	}
	return false
}

// Match accepts the entry unless its relative path matches an exclude pattern.
func (f *ExcludeFilter) Match(entry domain.Entry) bool {
	return !f.ShouldExclude(filepath.ToSlash(entry.Path))
}
