// Package filesystem provides the os-backed implementation of domain.FileSystemAdapter.
package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"fsutil/internal/domain"
)

// Adapter provides file system operations.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

// ReadFile reads a file from disk.
func (a *Adapter) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file.
func (a *Adapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// MkdirAll creates a directory and all necessary parents.
func (a *Adapter) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll deletes a path and any children it contains.
func (a *Adapter) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Remove deletes a file or empty directory.
func (a *Adapter) Remove(path string) error {
	return os.Remove(path)
}

// Rename moves oldPath to newPath, replacing newPath if it exists.
func (a *Adapter) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Stat returns file info.
func (a *Adapter) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Chmod changes the file permissions.
func (a *Adapter) Chmod(path string, perm os.FileMode) error {
	return os.Chmod(path, perm)
}

// WalkDir walks the file tree rooted at root in lexical order.
func (a *Adapter) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// Open opens a file for reading.
func (a *Adapter) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Create creates or truncates a file for writing.
func (a *Adapter) Create(path string, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
}

// UserHomeDir returns the user's home directory.
func (a *Adapter) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

var _ domain.FileSystemAdapter = (*Adapter)(nil)
