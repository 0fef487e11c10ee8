package fsops

import (
	"context"
	"io"
	"os"

	"fsutil/internal/adapters/ratelimit"
)

// CopyFile copies the contents and permission bits of src to dst,
// overwriting dst. A failed copy may leave a partial dst behind.
// Copying a file onto itself is a no-op.
func (s *Service) CopyFile(ctx context.Context, src, dst string) error {
	info, err := s.fs.Stat(src)
	if err != nil {
		return err
	}
	mode := info.Mode().Perm()

	// Create truncates dst, which would empty src before it is read.
	if dstInfo, err := s.fs.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		s.opLogger("copy", src).DebugContext(ctx, "Skipped copy onto itself", "dst", dst)
		return nil
	}

	in, err := s.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := s.fs.Create(dst, mode)
	if err != nil {
		return err
	}

	n, copyErr := io.Copy(ratelimit.NewWriter(ctx, out, s.opts.CopyRateLimit), in)
	closeErr := out.Close()
	if copyErr != nil {
		return copyErr
	}
	if closeErr != nil {
		return closeErr
	}

	// Create only applies mode to new files and is subject to the umask.
	if err := s.fs.Chmod(dst, mode); err != nil {
		return err
	}

	s.opLogger("copy", src).DebugContext(ctx, "Copied file", "dst", dst, "bytes", n)
	return nil
}
