package domain

import "context"

// FileOperations is the filesystem facade consumed by commands.
//
// Every method returns the underlying primitive's error unchanged, except
// document decoding failures which are reported as *errors.ParseError.
type FileOperations interface {
	// P joins path segments using the platform's rules.
	P(segments ...string) string

	// Mkdir creates path and any missing parents. It succeeds when path
	// already exists and returns path.
	Mkdir(ctx context.Context, path string) (string, error)

	// Rmdir removes path and everything beneath it. It succeeds when path
	// does not exist.
	Rmdir(ctx context.Context, path string) error

	// RecreateDir removes dir and creates it again, empty. It returns dir.
	RecreateDir(ctx context.Context, dir string) (string, error)

	// Readdir recursively lists the entries beneath opts.Root.
	Readdir(ctx context.Context, opts ReaddirOptions) ([]Entry, error)

	ReadJSON(ctx context.Context, path string) (any, error)
	ReadJSONInto(ctx context.Context, path string, target any) error
	WriteJSON(ctx context.Context, path string, value any) error

	ReadYAML(ctx context.Context, path string) (any, error)
	WriteYAML(ctx context.Context, path string, value any) error

	ReadFile(ctx context.Context, path string) ([]byte, error)
	ReadFileString(ctx context.Context, path, encoding string) (string, error)
	WriteFile(ctx context.Context, path string, data []byte) error
	WriteFileString(ctx context.Context, path, data string) error

	CopyFile(ctx context.Context, src, dst string) error
	Exists(ctx context.Context, path string) (bool, error)
}
