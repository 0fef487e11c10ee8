// Package commands implements fsutil's CLI verbs as request/result command
// objects, independent of cobra.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fsutil/internal/domain"
	"fsutil/internal/errors"
)

// MkdirCommand creates directories.
type MkdirCommand struct {
	files  domain.FileOperations
	logger *slog.Logger
}

// NewMkdirCommand creates a new mkdir command.
func NewMkdirCommand(files domain.FileOperations, logger *slog.Logger) *MkdirCommand {
	return &MkdirCommand{
		files:  files,
		logger: logger,
	}
}

// MkdirRequest contains the parameters for the mkdir command.
type MkdirRequest struct {
	Paths []string
}

// MkdirResult lists the directories that now exist.
type MkdirResult struct {
	Created []string
}

// Execute creates every requested directory. A failure on one path does not
// stop the others; all failures are returned together.
func (c *MkdirCommand) Execute(ctx context.Context, req MkdirRequest) (*MkdirResult, error) {
	if len(req.Paths) == 0 {
		return nil, errors.NewValidationError("paths", "", "required", "at least one directory is required")
	}

	result := &MkdirResult{}
	var errs []error
	for _, path := range req.Paths {
		created, err := c.files.Mkdir(ctx, path)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to create directory: %w", err))
			continue
		}
		result.Created = append(result.Created, created)
	}

	c.logger.InfoContext(ctx, "Created directories", "count", len(result.Created), "failed", len(errs))
	return result, errors.Join(errs...)
}

// RemoveDirCommand removes directory trees after confirmation.
type RemoveDirCommand struct {
	files     domain.FileOperations
	confirmer domain.Confirmer
	logger    *slog.Logger
}

// NewRemoveDirCommand creates a new rmdir command.
func NewRemoveDirCommand(
	files domain.FileOperations,
	confirmer domain.Confirmer,
	logger *slog.Logger,
) *RemoveDirCommand {
	return &RemoveDirCommand{
		files:     files,
		confirmer: confirmer,
		logger:    logger,
	}
}

// RemoveDirRequest contains the parameters for the rmdir command.
type RemoveDirRequest struct {
	Paths []string

	// Yes skips the confirmation prompt.
	Yes bool
}

// RemoveDirResult lists the paths that no longer exist.
type RemoveDirResult struct {
	Removed []string
}

// Execute removes every requested path and everything beneath it.
func (c *RemoveDirCommand) Execute(ctx context.Context, req RemoveDirRequest) (*RemoveDirResult, error) {
	if len(req.Paths) == 0 {
		return nil, errors.NewValidationError("paths", "", "required", "at least one directory is required")
	}

	if err := confirm(ctx, c.confirmer, req.Yes,
		fmt.Sprintf("Remove %s and everything beneath it?", strings.Join(req.Paths, ", "))); err != nil {
		return nil, err
	}

	result := &RemoveDirResult{}
	var errs []error
	for _, path := range req.Paths {
		if err := c.files.Rmdir(ctx, path); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove directory: %w", err))
			continue
		}
		result.Removed = append(result.Removed, path)
	}

	c.logger.InfoContext(ctx, "Removed directories", "count", len(result.Removed), "failed", len(errs))
	return result, errors.Join(errs...)
}

// RecreateCommand empties directories by removing and creating them again.
type RecreateCommand struct {
	files     domain.FileOperations
	confirmer domain.Confirmer
	logger    *slog.Logger
}

// NewRecreateCommand creates a new recreate command.
func NewRecreateCommand(
	files domain.FileOperations,
	confirmer domain.Confirmer,
	logger *slog.Logger,
) *RecreateCommand {
	return &RecreateCommand{
		files:     files,
		confirmer: confirmer,
		logger:    logger,
	}
}

// RecreateRequest contains the parameters for the recreate command.
type RecreateRequest struct {
	Paths []string
	Yes   bool
}

// RecreateResult lists the directories that were recreated empty.
type RecreateResult struct {
	Recreated []string
}

// Execute recreates every requested directory. A path whose creation fails
// after deletion is left absent.
func (c *RecreateCommand) Execute(ctx context.Context, req RecreateRequest) (*RecreateResult, error) {
	if len(req.Paths) == 0 {
		return nil, errors.NewValidationError("paths", "", "required", "at least one directory is required")
	}

	if err := confirm(ctx, c.confirmer, req.Yes,
		fmt.Sprintf("Delete all contents of %s?", strings.Join(req.Paths, ", "))); err != nil {
		return nil, err
	}

	result := &RecreateResult{}
	var errs []error
	for _, path := range req.Paths {
		dir, err := c.files.RecreateDir(ctx, path)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to recreate directory: %w", err))
			continue
		}
		result.Recreated = append(result.Recreated, dir)
	}

	c.logger.InfoContext(ctx, "Recreated directories", "count", len(result.Recreated), "failed", len(errs))
	return result, errors.Join(errs...)
}

func confirm(ctx context.Context, confirmer domain.Confirmer, yes bool, prompt string) error {
	if yes {
		return nil
	}

	ok, err := confirmer.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !ok {
		return errors.ErrAborted
	}
	return nil
}
