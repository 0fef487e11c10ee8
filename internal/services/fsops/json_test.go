package fsops

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	fserrors "fsutil/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONReadJSON_RoundTrip(t *testing.T) {
	s := newTestService(DefaultOptions())
	dir := t.TempDir()
	ctx := context.Background()

	tests := []struct {
		name  string
		value any
	}{
		{name: "object", value: map[string]any{"name": "fsutil", "tags": []any{"a", "b"}, "nested": map[string]any{"ok": true}}},
		{name: "array", value: []any{1.0, "two", nil, false}},
		{name: "string", value: "plain <html> & text"},
		{name: "number", value: 42.5},
		{name: "null", value: nil},
		{name: "empty object", value: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")

			require.NoError(t, s.WriteJSON(ctx, path, tt.value))
			got, err := s.ReadJSON(ctx, path)

			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestWriteJSON_Formatting(t *testing.T) {
	s := newTestService(DefaultOptions())
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, s.WriteJSON(context.Background(), path, map[string]any{"url": "a<b>&c"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"url\": \"a<b>&c\"\n}\n", string(data))
}

func TestWriteJSON_Compact(t *testing.T) {
	opts := DefaultOptions()
	opts.JSONIndent = ""
	s := newTestService(opts)
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, s.WriteJSON(context.Background(), path, map[string]any{"a": []int{1, 2}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":[1,2]}\n", string(data))
}

func TestWriteJSON_UnsupportedValue(t *testing.T) {
	s := newTestService(DefaultOptions())
	path := filepath.Join(t.TempDir(), "out.json")

	err := s.WriteJSON(context.Background(), path, map[string]any{"ch": make(chan int)})

	var typeErr *json.UnsupportedTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.False(t, fserrors.IsParse(err))
	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestReadJSON_InvalidContent(t *testing.T) {
	s := newTestService(DefaultOptions())
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o644))

	got, err := s.ReadJSON(context.Background(), path)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, fserrors.IsParse(err))

	var parseErr *fserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Equal(t, "json", parseErr.Format)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestReadJSON_MissingFileIsNotParseError(t *testing.T) {
	s := newTestService(DefaultOptions())

	_, err := s.ReadJSON(context.Background(), filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.False(t, fserrors.IsParse(err))
	assert.True(t, fserrors.IsNotFound(err))
}

func TestReadJSON_StripsByteOrderMark(t *testing.T) {
	s := newTestService(DefaultOptions())
	path := filepath.Join(t.TempDir(), "bom.json")
	require.NoError(t, os.WriteFile(path, append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"a":1}`)...), 0o644))

	got, err := s.ReadJSON(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0}, got)
}

func TestReadJSONInto_Struct(t *testing.T) {
	s := newTestService(DefaultOptions())
	path := filepath.Join(t.TempDir(), "pkg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"runner","version":"1.2.0"}`), 0o644))

	var pkg struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	require.NoError(t, s.ReadJSONInto(context.Background(), path, &pkg))

	assert.Equal(t, "runner", pkg.Name)
	assert.Equal(t, "1.2.0", pkg.Version)
}
