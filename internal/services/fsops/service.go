// Package fsops is the filesystem utility facade: a single namespace of
// blocking filesystem operations built on a domain.FileSystemAdapter.
//
// Operations hold no state between calls and return the adapter's errors
// unchanged, so callers can inspect them with errors.Is(err, fs.ErrNotExist)
// and friends. Document decoding failures are the one exception and are
// reported as *errors.ParseError.
package fsops

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"fsutil/internal/domain"
	"fsutil/internal/logging"
)

const (
	defaultDirMode    os.FileMode = 0o755
	defaultFileMode   os.FileMode = 0o644
	defaultJSONIndent             = "  "
)

// Options tunes how the facade creates and writes files.
type Options struct {
	DirMode  os.FileMode
	FileMode os.FileMode

	// JSONIndent is used for every indentation level; empty writes compact JSON.
	JSONIndent string

	// AtomicWrites writes to a sibling temp file and renames it into place.
	AtomicWrites bool

	// CopyRateLimit caps CopyFile throughput in bytes per second; 0 is unlimited.
	CopyRateLimit int
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		DirMode:    defaultDirMode,
		FileMode:   defaultFileMode,
		JSONIndent: defaultJSONIndent,
	}
}

// Service implements domain.FileOperations.
type Service struct {
	fs     domain.FileSystemAdapter
	opts   Options
	logger *slog.Logger
}

// NewService creates a new filesystem facade.
func NewService(fs domain.FileSystemAdapter, opts Options, logger *slog.Logger) *Service {
	if opts.DirMode == 0 {
		opts.DirMode = defaultDirMode
	}
	if opts.FileMode == 0 {
		opts.FileMode = defaultFileMode
	}

	return &Service{
		fs:     fs,
		opts:   opts,
		logger: logger,
	}
}

// opLogger scopes the service logger to one operation on path.
func (s *Service) opLogger(operation, path string) *logging.Logger {
	return (&logging.Logger{Logger: s.logger}).WithOperation(operation).WithPath(path)
}

// P joins path segments using the platform's rules.
func (s *Service) P(segments ...string) string {
	return filepath.Join(segments...)
}

// Mkdir creates path along with any missing parents and returns path.
// An existing directory is not an error.
func (s *Service) Mkdir(ctx context.Context, path string) (string, error) {
	if err := s.fs.MkdirAll(path, s.opts.DirMode); err != nil {
		return "", err
	}

	s.opLogger("mkdir", path).DebugContext(ctx, "Created directory")
	return path, nil
}

// Rmdir removes path and everything beneath it. A missing path is not an error.
func (s *Service) Rmdir(ctx context.Context, path string) error {
	if err := s.fs.RemoveAll(path); err != nil {
		return err
	}

	s.opLogger("rmdir", path).DebugContext(ctx, "Removed directory")
	return nil
}

// RecreateDir removes dir and creates it again, empty. Creation is only
// attempted after a successful removal; if creation then fails the directory
// stays absent.
func (s *Service) RecreateDir(ctx context.Context, dir string) (string, error) {
	if err := s.fs.RemoveAll(dir); err != nil {
		return "", err
	}

	if err := s.fs.MkdirAll(dir, s.opts.DirMode); err != nil {
		return "", err
	}

	s.opLogger("recreate", dir).DebugContext(ctx, "Recreated directory")
	return dir, nil
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func (s *Service) Exists(_ context.Context, path string) (bool, error) {
	_, err := s.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

var _ domain.FileOperations = (*Service)(nil)
