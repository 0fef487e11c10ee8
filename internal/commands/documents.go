package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"fsutil/internal/domain"
	"fsutil/internal/errors"
)

// Document formats understood by the read and write commands.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReadDocumentCommand decodes a JSON or YAML file.
type ReadDocumentCommand struct {
	files  domain.FileOperations
	logger *slog.Logger
}

// NewReadDocumentCommand creates a new read-json command.
func NewReadDocumentCommand(files domain.FileOperations, logger *slog.Logger) *ReadDocumentCommand {
	return &ReadDocumentCommand{
		files:  files,
		logger: logger,
	}
}

// ReadDocumentRequest contains the parameters for the read-json command.
type ReadDocumentRequest struct {
	Path string

	// Format defaults to JSON.
	Format string
}

// ReadDocumentResult holds the decoded document.
type ReadDocumentResult struct {
	Value any
}

// Execute runs the read-json command.
func (c *ReadDocumentCommand) Execute(ctx context.Context, req ReadDocumentRequest) (*ReadDocumentResult, error) {
	var (
		value any
		err   error
	)

	switch req.Format {
	case FormatJSON, "":
		value, err = c.files.ReadJSON(ctx, req.Path)
	case FormatYAML:
		value, err = c.files.ReadYAML(ctx, req.Path)
	default:
		return nil, unsupportedFormat(req.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return &ReadDocumentResult{Value: value}, nil
}

// WriteDocumentCommand validates a document and writes it formatted.
type WriteDocumentCommand struct {
	files  domain.FileOperations
	logger *slog.Logger
}

// NewWriteDocumentCommand creates a new write-json command.
func NewWriteDocumentCommand(files domain.FileOperations, logger *slog.Logger) *WriteDocumentCommand {
	return &WriteDocumentCommand{
		files:  files,
		logger: logger,
	}
}

// WriteDocumentRequest contains the parameters for the write-json command.
type WriteDocumentRequest struct {
	Path string

	// Document is the raw input, in InputFormat.
	Document    []byte
	InputFormat string

	// Source names where Document came from, for error messages.
	Source string

	// Format is the format written to Path; it defaults to JSON.
	Format string
}

// Execute runs the write-json command.
func (c *WriteDocumentCommand) Execute(ctx context.Context, req WriteDocumentRequest) error {
	source := req.Source
	if source == "" {
		source = "input"
	}

	var value any
	switch req.InputFormat {
	case FormatJSON, "":
		if err := json.Unmarshal(req.Document, &value); err != nil {
			return errors.NewParseError(source, FormatJSON, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(req.Document, &value); err != nil {
			return errors.NewParseError(source, FormatYAML, err)
		}
	default:
		return unsupportedFormat(req.InputFormat)
	}

	var err error
	switch req.Format {
	case FormatJSON, "":
		err = c.files.WriteJSON(ctx, req.Path, value)
	case FormatYAML:
		err = c.files.WriteYAML(ctx, req.Path, value)
	default:
		return unsupportedFormat(req.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	c.logger.InfoContext(ctx, "Wrote document", "path", req.Path, "format", req.Format)
	return nil
}

func unsupportedFormat(format string) error {
	return errors.NewValidationError("format", format, "supported_values", "format must be json or yaml")
}
