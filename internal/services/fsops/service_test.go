package fsops

import (
	"context"
	"errors"
	"io/fs"
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

// Test helper to create a Service over the real filesystem.
func newTestService(opts Options) *Service {
	return NewService(filesystem.New(), opts, testutil.Logger())
}

func TestNewService_FillsZeroModes(t *testing.T) {
	s := NewService(filesystem.New(), Options{}, testutil.Logger())

	assert.Equal(t, defaultDirMode, s.opts.DirMode)
	assert.Equal(t, defaultFileMode, s.opts.FileMode)
	assert.Empty(t, s.opts.JSONIndent)
}

func TestP_MatchesFilepathJoin(t *testing.T) {
	s := newTestService(DefaultOptions())

	tests := [][]string{
		{"a", "b", "c"},
		{"/root", "..", "etc"},
		{"a/", "/b/", "c.txt"},
		{},
		{"", "x"},
	}

	for _, segments := range tests {
		assert.Equal(t, filepath.Join(segments...), s.P(segments...))
	}
}

func TestMkdir_CreatesIntermediateDirectories(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := t.TempDir()
	target := filepath.Join(root, "a", "b", "c")

	got, err := s.Mkdir(context.Background(), target)

	require.NoError(t, err)
	assert.Equal(t, target, got)
	for _, dir := range []string{"a", "a/b", "a/b/c"} {
		info, statErr := os.Stat(filepath.Join(root, filepath.FromSlash(dir)))
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	}
}

func TestMkdir_ExistingDirectory(t *testing.T) {
	s := newTestService(DefaultOptions())
	dir := t.TempDir()

	got, err := s.Mkdir(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestMkdir_PathIsFile(t *testing.T) {
	s := newTestService(DefaultOptions())
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := s.Mkdir(context.Background(), filepath.Join(file, "child"))

	require.Error(t, err)
	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr)
}

func TestRmdir_RemovesTree(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"dir/a.txt":       "a",
		"dir/sub/b.txt":   "b",
		"dir/sub/deeper/": "",
	})
	dir := filepath.Join(root, "dir")

	require.NoError(t, s.Rmdir(context.Background(), dir))

	exists, err := s.Exists(context.Background(), dir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRmdir_MissingPathSucceeds(t *testing.T) {
	s := newTestService(DefaultOptions())

	err := s.Rmdir(context.Background(), filepath.Join(t.TempDir(), "never-created"))

	require.NoError(t, err)
}

func TestRecreateDir_EmptiesDirectory(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"out/a.txt":     "a",
		"out/sub/b.txt": "b",
	})
	dir := filepath.Join(root, "out")

	got, err := s.RecreateDir(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, dir, got)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecreateDir_MissingDirectoryIsCreated(t *testing.T) {
	s := newTestService(DefaultOptions())
	dir := filepath.Join(t.TempDir(), "x", "y")

	got, err := s.RecreateDir(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, dir, got)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRecreateDir_DeleteFailureSkipsCreate(t *testing.T) {
	mockFS := mocks.NewMockFileSystemAdapter(t)
	deleteErr := &fs.PathError{Op: "unlinkat", Path: "/data/out", Err: fs.ErrPermission}

	mockFS.On("RemoveAll", "/data/out").Return(deleteErr)

	s := NewService(mockFS, DefaultOptions(), testutil.Logger())
	got, err := s.RecreateDir(context.Background(), "/data/out")

	require.Error(t, err)
	assert.Same(t, deleteErr, err)
	assert.Empty(t, got)
	mockFS.AssertNotCalled(t, "MkdirAll", mock.Anything, mock.Anything)
}

func TestRecreateDir_CreateFailureLeavesDirectoryAbsent(t *testing.T) {
	// Removal really happens; creation is forced to fail afterwards.
	osFS := filesystem.New()
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{"out/keep.txt": "x"})
	dir := filepath.Join(root, "out")

	mockFS := mocks.NewMockFileSystemAdapter(t)
	createErr := &fs.PathError{Op: "mkdir", Path: dir, Err: fs.ErrPermission}
	mockFS.On("RemoveAll", dir).Return(osFS.RemoveAll(dir))
	mockFS.On("MkdirAll", dir, defaultDirMode).Return(createErr)

	s := NewService(mockFS, DefaultOptions(), testutil.Logger())
	got, err := s.RecreateDir(context.Background(), dir)

	require.Error(t, err)
	assert.Same(t, createErr, err)
	assert.Empty(t, got)
	_, statErr := os.Stat(dir)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestExists(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{"present.txt": "x"})

	exists, err := s.Exists(context.Background(), filepath.Join(root, "present.txt"))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Exists(context.Background(), filepath.Join(root, "absent.txt"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExists_OtherErrorsPropagate(t *testing.T) {
	mockFS := mocks.NewMockFileSystemAdapter(t)
	statErr := &fs.PathError{Op: "stat", Path: "/secret/x", Err: fs.ErrPermission}
	mockFS.On("Stat", "/secret/x").Return(nil, statErr)

	s := NewService(mockFS, DefaultOptions(), testutil.Logger())
	exists, err := s.Exists(context.Background(), "/secret/x")

	assert.False(t, exists)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}
