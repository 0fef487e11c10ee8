package fsops

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"fsutil/internal/domain"
	"fsutil/internal/errors"
	"fsutil/internal/services/filter"
)

// Readdir recursively lists the entries beneath opts.Root in lexical order.
// The root itself is never returned. Walk errors, including a missing root,
// are returned unchanged; cancelling ctx stops the walk between entries.
//
// A zero Depth lists direct children only. Options built as a literal must
// set Depth to -1, as DefaultReaddirOptions does, for an unlimited walk.
func (s *Service) Readdir(ctx context.Context, opts domain.ReaddirOptions) ([]domain.Entry, error) {
	if opts.Root == "" {
		return nil, errors.NewValidationError("root", "", "required", "root directory is required")
	}

	rawType := opts.Type
	if rawType == "" {
		rawType = domain.EntryTypeFiles
	}
	entryType, ok := domain.ParseEntryType(string(rawType))
	if !ok {
		return nil, errors.NewValidationError("type", string(rawType), "supported_values",
			"type must be one of: files, directories, files_directories, all")
	}

	fileFilter, dirFilter := opts.FileFilter, opts.DirectoryFilter
	if fileFilter == nil {
		fileFilter = filter.NewNoOpFilter()
	}
	if dirFilter == nil {
		dirFilter = filter.NewNoOpFilter()
	}

	root := filepath.Clean(opts.Root)
	entries := []domain.Entry{}

	walkErr := s.fs.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == root {
			return nil
		}

		entry, err := newEntry(root, path, d)
		if err != nil {
			return err
		}

		if d.IsDir() {
			if !dirFilter.Match(entry) {
				return filepath.SkipDir
			}
			if includesDirectories(entryType) {
				entries = append(entries, entry)
			}
			if opts.Depth >= 0 && entry.Depth >= opts.Depth {
				return filepath.SkipDir
			}
			return nil
		}

		if !includesFile(entryType, entry) {
			return nil
		}
		if !fileFilter.Match(entry) {
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	s.opLogger("readdir", root).DebugContext(ctx, "Listed directory",
		"type", string(entryType),
		"depth", opts.Depth,
		"entries", len(entries))
	return entries, nil
}

func newEntry(root, path string, d fs.DirEntry) (domain.Entry, error) {
	info, err := d.Info()
	if err != nil {
		return domain.Entry{}, err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return domain.Entry{}, err
	}

	return domain.Entry{
		Path:     rel,
		FullPath: path,
		Basename: d.Name(),
		Depth:    strings.Count(rel, string(filepath.Separator)),
		Info:     info,
	}, nil
}

func includesDirectories(t domain.EntryType) bool {
	return t == domain.EntryTypeDirectories ||
		t == domain.EntryTypeFilesDirectories ||
		t == domain.EntryTypeAll
}

func includesFile(t domain.EntryType, entry domain.Entry) bool {
	switch t {
	case domain.EntryTypeAll:
		return true
	case domain.EntryTypeFiles, domain.EntryTypeFilesDirectories:
		return entry.IsRegular()
	default:
		return false
	}
}
