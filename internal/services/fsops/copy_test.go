package fsops

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"fsutil/internal/adapters/filesystem"
	"fsutil/internal/mocks"
	"fsutil/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCopyFile_CopiesBytesAndMode(t *testing.T) {
	s := newTestService(DefaultOptions())
	dir := t.TempDir()
	src := filepath.Join(dir, "run.sh")
	dst := filepath.Join(dir, "copy.sh")
	payload := bytes.Repeat([]byte("#!/bin/sh\necho hi\n"), 1000)
	require.NoError(t, os.WriteFile(src, payload, 0o644))
	require.NoError(t, os.Chmod(src, 0o751))

	require.NoError(t, s.CopyFile(context.Background(), src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o751), info.Mode().Perm())
}

func TestCopyFile_OverwritesDestination(t *testing.T) {
	s := newTestService(DefaultOptions())
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o600))
	require.NoError(t, os.WriteFile(dst, []byte("old and longer"), 0o644))

	require.NoError(t, s.CopyFile(context.Background(), src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCopyFile_RateLimited(t *testing.T) {
	opts := DefaultOptions()
	opts.CopyRateLimit = 1 << 20
	s := newTestService(opts)
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	payload := bytes.Repeat([]byte{0xAB}, 200*1024)
	require.NoError(t, os.WriteFile(src, payload, 0o644))

	require.NoError(t, s.CopyFile(context.Background(), src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestCopyFile_MissingSource(t *testing.T) {
	s := newTestService(DefaultOptions())
	dir := t.TempDir()

	err := s.CopyFile(context.Background(), filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	_, statErr := os.Stat(filepath.Join(dir, "dst"))
	assert.True(t, errors.Is(statErr, fs.ErrNotExist))
}

func TestCopyFile_MissingDestinationDirectory(t *testing.T) {
	s := newTestService(DefaultOptions())
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	err := s.CopyFile(context.Background(), src, filepath.Join(dir, "no", "dst"))

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }
func (w failingWriter) Close() error              { return nil }

type fakeInfo struct{ os.FileInfo }

func (fakeInfo) Mode() os.FileMode { return 0o644 }

func TestCopyFile_WriteErrorPropagates(t *testing.T) {
	mockFS := mocks.NewMockFileSystemAdapter(t)
	writeErr := &fs.PathError{Op: "write", Path: "/dst", Err: errors.New("no space left on device")}

	mockFS.On("Stat", "/src").Return(fakeInfo{}, nil)
	mockFS.On("Stat", "/dst").Return(nil, &fs.PathError{Op: "stat", Path: "/dst", Err: fs.ErrNotExist})
	mockFS.On("Open", "/src").Return(io.NopCloser(bytes.NewReader([]byte("data"))), nil)
	mockFS.On("Create", "/dst", os.FileMode(0o644)).Return(failingWriter{err: writeErr}, nil)

	s := NewService(mockFS, DefaultOptions(), testutil.Logger())
	err := s.CopyFile(context.Background(), "/src", "/dst")

	assert.Same(t, writeErr, err)
	mockFS.AssertNotCalled(t, "Chmod", mock.Anything, mock.Anything)
}

func TestCopyFile_OntoItselfKeepsContents(t *testing.T) {
	s := newTestService(DefaultOptions())
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("precious"), 0o600))

	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Link(src, link))

	tests := []struct {
		name string
		dst  string
	}{
		{name: "same path", dst: src},
		{name: "relative path", dst: "./" + filepath.Base(src)},
		{name: "hard link", dst: link},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(dir)
			require.NoError(t, s.CopyFile(context.Background(), src, tt.dst))

			data, err := os.ReadFile(src)
			require.NoError(t, err)
			assert.Equal(t, "precious", string(data))

			info, err := os.Stat(src)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		})
	}
}

func TestCopyFile_LogsOperationAndPath(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewService(filesystem.New(), DefaultOptions(), logger)

	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))

	require.NoError(t, s.CopyFile(context.Background(), src, dst))

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "copy", record["operation"])
	assert.Equal(t, src, record["path"])
	assert.Equal(t, dst, record["dst"])
	assert.EqualValues(t, 5, record["bytes"])
}
