package fsops

import (
	"context"

	"github.com/google/uuid"
)

// ReadFile returns the contents of path.
func (s *Service) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s.opLogger("read", path).DebugContext(ctx, "Read file", "bytes", len(data))
	return data, nil
}

// ReadFileString returns the contents of path decoded with encoding
// (utf8, latin1, ascii, base64 or hex).
func (s *Service) ReadFileString(ctx context.Context, path, encoding string) (string, error) {
	codec, err := lookupEncoding(encoding)
	if err != nil {
		return "", err
	}

	data, err := s.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}

	return codec(data), nil
}

// WriteFile replaces the contents of path with data. Parent directories are
// not created.
func (s *Service) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := s.writeBytes(path, data); err != nil {
		return err
	}

	s.opLogger("write", path).DebugContext(ctx, "Wrote file", "bytes", len(data), "atomic", s.opts.AtomicWrites)
	return nil
}

// WriteFileString writes data as UTF-8 text.
func (s *Service) WriteFileString(ctx context.Context, path, data string) error {
	return s.WriteFile(ctx, path, []byte(data))
}

func (s *Service) writeBytes(path string, data []byte) error {
	if !s.opts.AtomicWrites {
		return s.fs.WriteFile(path, data, s.opts.FileMode)
	}

	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := s.fs.WriteFile(tmp, data, s.opts.FileMode); err != nil {
		return err
	}

	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}

	return nil
}
