package fsops

import (
	"bytes"
	"context"
	"encoding/json"

	"fsutil/internal/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadJSON parses the JSON document at path into generic values
// (map[string]any, []any, float64, string, bool or nil).
func (s *Service) ReadJSON(ctx context.Context, path string) (any, error) {
	var value any
	if err := s.ReadJSONInto(ctx, path, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// ReadJSONInto parses the JSON document at path into target.
func (s *Service) ReadJSONInto(ctx context.Context, path string, target any) error {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), target); err != nil {
		return errors.NewParseError(path, "json", err)
	}

	s.opLogger("read_json", path).DebugContext(ctx, "Read JSON")
	return nil
}

// WriteJSON serializes value and writes it to path followed by a newline.
func (s *Service) WriteJSON(ctx context.Context, path string, value any) error {
	data, err := s.marshalJSON(value)
	if err != nil {
		return err
	}

	if err := s.writeBytes(path, data); err != nil {
		return err
	}

	s.opLogger("write_json", path).DebugContext(ctx, "Wrote JSON", "bytes", len(data))
	return nil
}

func (s *Service) marshalJSON(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", s.opts.JSONIndent)

	// Encode terminates the document with a newline.
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
