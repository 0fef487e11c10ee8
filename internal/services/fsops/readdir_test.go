package fsops

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"fsutil/internal/domain"
	fserrors "fsutil/internal/errors"
	"fsutil/internal/services/filter"
	"fsutil/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"a.json":           "{}",
		"b.txt":            "b",
		"skip/c.json":      "{}",
		"src/d.go":         "package d",
		"src/lib/e.json":   "{}",
		"src/lib/deep/f.x": "f",
		"empty/":           "",
	})
	return root
}

func paths(entries []domain.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, filepath.ToSlash(e.Path))
	}
	return out
}

func TestReaddir_DefaultListsAllFiles(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := sampleTree(t)

	entries, err := s.Readdir(context.Background(), domain.DefaultReaddirOptions(root))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"a.json",
		"b.txt",
		"skip/c.json",
		"src/d.go",
		"src/lib/deep/f.x",
		"src/lib/e.json",
	}, paths(entries))
}

func TestReaddir_EntryShape(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := sampleTree(t)

	entries, err := s.Readdir(context.Background(), domain.DefaultReaddirOptions(root))
	require.NoError(t, err)

	var found bool
	for _, e := range entries {
		if filepath.ToSlash(e.Path) != "src/lib/e.json" {
			continue
		}
		found = true
		assert.Equal(t, filepath.Join(root, "src", "lib", "e.json"), e.FullPath)
		assert.Equal(t, "e.json", e.Basename)
		assert.Equal(t, 2, e.Depth)
		require.NotNil(t, e.Info)
		assert.Equal(t, int64(2), e.Info.Size())
		assert.True(t, e.IsRegular())
		assert.False(t, e.IsDir())
	}
	assert.True(t, found)
}

func TestReaddir_DepthZeroReturnsDirectChildren(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := sampleTree(t)

	opts := domain.DefaultReaddirOptions(root)
	opts.Depth = 0
	opts.Type = domain.EntryTypeFilesDirectories
	entries, err := s.Readdir(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.txt", "empty", "skip", "src"}, paths(entries))
}

func TestReaddir_LiteralOptionsAreShallow(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := sampleTree(t)

	shallow, err := s.Readdir(context.Background(), domain.ReaddirOptions{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.txt"}, paths(shallow))

	deep, err := s.Readdir(context.Background(), domain.ReaddirOptions{Root: root, Depth: -1})
	require.NoError(t, err)
	assert.Len(t, deep, 6)
}

func TestReaddir_DepthOne(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := sampleTree(t)

	opts := domain.DefaultReaddirOptions(root)
	opts.Depth = 1
	entries, err := s.Readdir(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.txt", "skip/c.json", "src/d.go"}, paths(entries))
}

func TestReaddir_DirectoriesOnly(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := sampleTree(t)

	opts := domain.DefaultReaddirOptions(root)
	opts.Type = domain.EntryTypeDirectories
	entries, err := s.Readdir(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "skip", "src", "src/lib", "src/lib/deep"}, paths(entries))
	for _, e := range entries {
		assert.True(t, e.IsDir())
	}
}

func TestReaddir_TypeIsCaseInsensitive(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"x.txt": "x",
		"sub/":  "",
	})

	tests := []struct {
		entryType domain.EntryType
		want      []string
	}{
		{entryType: "Files", want: []string{"x.txt"}},
		{entryType: "DIRECTORIES", want: []string{"sub"}},
		{entryType: "Files_Directories", want: []string{"sub", "x.txt"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.entryType), func(t *testing.T) {
			opts := domain.DefaultReaddirOptions(root)
			opts.Type = tt.entryType
			entries, err := s.Readdir(context.Background(), opts)

			require.NoError(t, err)
			assert.Equal(t, tt.want, paths(entries))
		})
	}
}

func TestReaddir_DirectoryFilterPrunesSubtree(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := sampleTree(t)

	dirFilter, err := filter.NewGlobFilter([]string{"!skip", "!lib"})
	require.NoError(t, err)

	opts := domain.DefaultReaddirOptions(root)
	opts.Type = domain.EntryTypeFilesDirectories
	opts.DirectoryFilter = dirFilter
	entries, err := s.Readdir(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.txt", "empty", "src", "src/d.go"}, paths(entries))
}

func TestReaddir_FileFilter(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := sampleTree(t)

	fileFilter, err := filter.NewGlobFilter([]string{"*.json"})
	require.NoError(t, err)

	opts := domain.DefaultReaddirOptions(root)
	opts.FileFilter = fileFilter
	entries, err := s.Readdir(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "skip/c.json", "src/lib/e.json"}, paths(entries))
}

func TestReaddir_ExcludeFilterOnRelativePath(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := sampleTree(t)

	exclude, err := filter.NewExcludeFilter([]string{"^src/"}, testutil.Logger())
	require.NoError(t, err)

	opts := domain.DefaultReaddirOptions(root)
	opts.FileFilter = exclude
	entries, err := s.Readdir(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.txt", "skip/c.json"}, paths(entries))
}

func TestReaddir_SymlinksOnlyWithTypeAll(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{"target.txt": "t"})
	require.NoError(t, os.Symlink(filepath.Join(root, "target.txt"), filepath.Join(root, "link")))

	files, err := s.Readdir(context.Background(), domain.DefaultReaddirOptions(root))
	require.NoError(t, err)
	assert.Equal(t, []string{"target.txt"}, paths(files))

	opts := domain.DefaultReaddirOptions(root)
	opts.Type = domain.EntryTypeAll
	all, err := s.Readdir(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"link", "target.txt"}, paths(all))
}

func TestReaddir_EmptyDirectory(t *testing.T) {
	s := newTestService(DefaultOptions())

	entries, err := s.Readdir(context.Background(), domain.DefaultReaddirOptions(t.TempDir()))

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestReaddir_MissingRoot(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := filepath.Join(t.TempDir(), "missing")

	entries, err := s.Readdir(context.Background(), domain.DefaultReaddirOptions(root))

	require.Error(t, err)
	assert.Nil(t, entries)
	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, root, pathErr.Path)
}

func TestReaddir_Validation(t *testing.T) {
	s := newTestService(DefaultOptions())

	_, err := s.Readdir(context.Background(), domain.ReaddirOptions{})
	assert.True(t, fserrors.IsValidation(err))

	_, err = s.Readdir(context.Background(), domain.ReaddirOptions{Root: ".", Type: "sockets"})
	assert.True(t, fserrors.IsValidation(err))
}

func TestReaddir_CancelledContext(t *testing.T) {
	s := newTestService(DefaultOptions())
	root := sampleTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Readdir(ctx, domain.DefaultReaddirOptions(root))

	assert.ErrorIs(t, err, context.Canceled)
}
