package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"fsutil/internal/domain"
	"fsutil/internal/errors"
)

// CatCommand reads files as text.
type CatCommand struct {
	files  domain.FileOperations
	logger *slog.Logger
}

// NewCatCommand creates a new cat command.
func NewCatCommand(files domain.FileOperations, logger *slog.Logger) *CatCommand {
	return &CatCommand{
		files:  files,
		logger: logger,
	}
}

// CatRequest contains the parameters for the cat command.
type CatRequest struct {
	Paths    []string
	Encoding string
}

// CatResult holds the decoded contents, in request order, of every file that
// could be read.
type CatResult struct {
	Contents []string
}

// Execute runs the cat command.
func (c *CatCommand) Execute(ctx context.Context, req CatRequest) (*CatResult, error) {
	if len(req.Paths) == 0 {
		return nil, errors.NewValidationError("paths", "", "required", "at least one file is required")
	}

	result := &CatResult{}
	var errs []error
	for _, path := range req.Paths {
		content, err := c.files.ReadFileString(ctx, path, req.Encoding)
		if err != nil {
			if errors.IsValidation(err) {
				return nil, err
			}
			errs = append(errs, fmt.Errorf("failed to read file: %w", err))
			continue
		}
		result.Contents = append(result.Contents, content)
	}

	return result, errors.Join(errs...)
}

// WriteCommand writes text to a file.
type WriteCommand struct {
	files  domain.FileOperations
	logger *slog.Logger
}

// NewWriteCommand creates a new write command.
func NewWriteCommand(files domain.FileOperations, logger *slog.Logger) *WriteCommand {
	return &WriteCommand{
		files:  files,
		logger: logger,
	}
}

// WriteRequest contains the parameters for the write command.
type WriteRequest struct {
	Path    string
	Content []byte

	// Parents creates missing parent directories first.
	Parents bool
}

// Execute runs the write command.
func (c *WriteCommand) Execute(ctx context.Context, req WriteRequest) error {
	if req.Parents {
		if _, err := c.files.Mkdir(ctx, filepath.Dir(req.Path)); err != nil {
			return fmt.Errorf("failed to create parent directory: %w", err)
		}
	}

	if err := c.files.WriteFile(ctx, req.Path, req.Content); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	c.logger.InfoContext(ctx, "Wrote file", "path", req.Path, "bytes", len(req.Content))
	return nil
}

// CopyCommand copies files.
type CopyCommand struct {
	files  domain.FileOperations
	fs     domain.FileSystemAdapter
	logger *slog.Logger
}

// NewCopyCommand creates a new copy command.
func NewCopyCommand(files domain.FileOperations, fs domain.FileSystemAdapter, logger *slog.Logger) *CopyCommand {
	return &CopyCommand{
		files:  files,
		fs:     fs,
		logger: logger,
	}
}

// CopyRequest contains the parameters for the cp command.
type CopyRequest struct {
	Sources     []string
	Destination string
}

// CopyResult lists the files that were written.
type CopyResult struct {
	Copied []string
}

// Execute copies each source to the destination. With more than one source,
// or when the destination is an existing directory, files keep their base
// name inside the destination directory.
func (c *CopyCommand) Execute(ctx context.Context, req CopyRequest) (*CopyResult, error) {
	if len(req.Sources) == 0 || req.Destination == "" {
		return nil, errors.NewValidationError("paths", "", "required", "a source and a destination are required")
	}

	intoDir := len(req.Sources) > 1
	if info, err := c.fs.Stat(req.Destination); err == nil && info.IsDir() {
		intoDir = true
	} else if intoDir {
		return nil, errors.NewValidationError("destination", req.Destination, "directory",
			"destination must be an existing directory when copying several files")
	}

	result := &CopyResult{}
	var errs []error
	for _, src := range req.Sources {
		dst := req.Destination
		if intoDir {
			dst = c.files.P(req.Destination, filepath.Base(src))
		}

		if err := c.files.CopyFile(ctx, src, dst); err != nil {
			errs = append(errs, fmt.Errorf("failed to copy %s: %w", src, err))
			continue
		}
		result.Copied = append(result.Copied, dst)
	}

	c.logger.InfoContext(ctx, "Copied files", "count", len(result.Copied), "failed", len(errs))
	return result, errors.Join(errs...)
}

// JoinCommand joins path segments.
type JoinCommand struct {
	files domain.FileOperations
}

// NewJoinCommand creates a new join command.
func NewJoinCommand(files domain.FileOperations) *JoinCommand {
	return &JoinCommand{files: files}
}

// Execute returns the joined path.
func (c *JoinCommand) Execute(segments []string) string {
	return c.files.P(segments...)
}
