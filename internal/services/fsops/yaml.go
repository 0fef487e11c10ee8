package fsops

import (
	"context"

	"gopkg.in/yaml.v3"

	"fsutil/internal/errors"
)

// ReadYAML parses the YAML document at path into generic values.
// An empty document yields nil.
func (s *Service) ReadYAML(ctx context.Context, path string) (any, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, errors.NewParseError(path, "yaml", err)
	}

	s.opLogger("read_yaml", path).DebugContext(ctx, "Read YAML")
	return value, nil
}

// WriteYAML serializes value as YAML and writes it to path.
func (s *Service) WriteYAML(ctx context.Context, path string, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}

	if err := s.writeBytes(path, data); err != nil {
		return err
	}

	s.opLogger("write_yaml", path).DebugContext(ctx, "Wrote YAML", "bytes", len(data))
	return nil
}
