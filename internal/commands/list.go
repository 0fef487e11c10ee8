package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fsutil/internal/domain"
	"fsutil/internal/errors"
	"fsutil/internal/services/filter"
)

// ListCommand lists directory trees.
type ListCommand struct {
	files  domain.FileOperations
	logger *slog.Logger
}

// NewListCommand creates a new list command.
func NewListCommand(files domain.FileOperations, logger *slog.Logger) *ListCommand {
	return &ListCommand{
		files:  files,
		logger: logger,
	}
}

// ListRequest contains the parameters for the list command.
type ListRequest struct {
	Root  string
	Depth int
	Type  string

	// FileGlobs and DirGlobs are basename globs; a leading "!" negates.
	FileGlobs []string
	DirGlobs  []string

	// Exclude holds regular expressions matched against relative paths.
	// A matching directory is pruned with everything beneath it.
	Exclude []string
}

// ListResult contains the result of the list command.
type ListResult struct {
	Entries []domain.Entry
	Count   int
}

// Execute runs the list command.
func (c *ListCommand) Execute(ctx context.Context, req ListRequest) (*ListResult, error) {
	opts := domain.DefaultReaddirOptions(req.Root)
	opts.Depth = req.Depth

	if req.Type != "" {
		entryType, ok := domain.ParseEntryType(req.Type)
		if !ok {
			return nil, errors.NewValidationError("type", req.Type, "supported_values",
				"type must be one of: files, directories, files_directories, all")
		}
		opts.Type = entryType
	}

	var exclude domain.EntryFilter
	if len(req.Exclude) > 0 {
		f, err := filter.NewExcludeFilter(req.Exclude, c.logger)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern: %w", err)
		}
		exclude = f
	}

	fileGlob, err := globFilter(req.FileGlobs)
	if err != nil {
		return nil, err
	}
	dirGlob, err := globFilter(req.DirGlobs)
	if err != nil {
		return nil, err
	}

	opts.FileFilter = filter.All(fileGlob, exclude)
	opts.DirectoryFilter = filter.All(dirGlob, exclude)

	c.logger.DebugContext(ctx, "Listing directory",
		"root", opts.Root, "depth", opts.Depth, "type", opts.Type)

	entries, err := c.files.Readdir(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", req.Root, err)
	}

	return &ListResult{
		Entries: entries,
		Count:   len(entries),
	}, nil
}

func globFilter(patterns []string) (domain.EntryFilter, error) {
	if len(patterns) == 0 {
		return nil, nil //nolint:nilnil // no filter means accept everything
	}
	f, err := filter.NewGlobFilter(patterns)
	if err != nil {
		return nil, errors.NewValidationError("filter", fmt.Sprint(patterns), "glob", err.Error())
	}
	return f, nil
}
