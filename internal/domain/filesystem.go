package domain

import (
	"io"
	"io/fs"
	"os"
)

// FileSystemAdapter defines the interface for file operations.
type FileSystemAdapter interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	Remove(path string) error
	Rename(oldPath, newPath string) error
	Stat(path string) (os.FileInfo, error)
	Chmod(path string, perm os.FileMode) error
	WalkDir(root string, fn fs.WalkDirFunc) error

	// Open opens a file for streaming reads.
	Open(path string) (io.ReadCloser, error)

	// Create creates or truncates a file for streaming writes.
	Create(path string, perm os.FileMode) (io.WriteCloser, error)

	UserHomeDir() (string, error)
}
