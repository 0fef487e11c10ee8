package commands

import (
	"testing"

	"fsutil/internal/adapters/filesystem"
	"fsutil/internal/services/fsops"
	"fsutil/internal/testutil"
)

// newTestFiles returns a facade over the real filesystem with default options.
func newTestFiles(t *testing.T) *fsops.Service {
	t.Helper()
	return fsops.NewService(filesystem.New(), fsops.DefaultOptions(), testutil.Logger())
}
