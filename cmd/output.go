package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	fserrors "fsutil/internal/errors"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// writeStructured encodes value to w as indented JSON or YAML.
func writeStructured(w io.Writer, format string, value any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fserrors.NewValidationError("output", format, "supported_values",
			fmt.Sprintf("output must be one of: %s, %s, %s", outputText, outputJSON, outputYAML))
	}
}
