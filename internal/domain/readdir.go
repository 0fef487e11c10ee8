package domain

import (
	"io/fs"
	"strings"
)

// EntryType selects which kinds of entries a directory walk returns.
type EntryType string

const (
	EntryTypeFiles            EntryType = "files"
	EntryTypeDirectories      EntryType = "directories"
	EntryTypeFilesDirectories EntryType = "files_directories"
	EntryTypeAll              EntryType = "all"
)

// EntryTypes lists every supported EntryType.
func EntryTypes() []EntryType {
	return []EntryType{EntryTypeFiles, EntryTypeDirectories, EntryTypeFilesDirectories, EntryTypeAll}
}

// ParseEntryType converts a name into an EntryType, reporting whether it is known.
func ParseEntryType(name string) (EntryType, bool) {
	for _, t := range EntryTypes() {
		if strings.EqualFold(string(t), name) {
			return t, true
		}
	}
	return "", false
}

// Entry is a single item discovered by a recursive directory walk.
type Entry struct {
	// Path is relative to the walk root.
	Path     string      `json:"path" yaml:"path"`
	FullPath string      `json:"fullPath" yaml:"fullPath"`
	Basename string      `json:"basename" yaml:"basename"`
	Depth    int         `json:"depth" yaml:"depth"`
	Info     fs.FileInfo `json:"-" yaml:"-"`
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Info != nil && e.Info.IsDir()
}

// IsRegular reports whether the entry is a regular file.
func (e Entry) IsRegular() bool {
	return e.Info != nil && e.Info.Mode().IsRegular()
}

// EntryFilter decides whether an entry is accepted by a directory walk.
type EntryFilter interface {
	Match(entry Entry) bool
}

// ReaddirOptions configures a recursive directory walk.
type ReaddirOptions struct {
	Root string

	// FileFilter is applied to non-directory entries. Nil accepts everything.
	FileFilter EntryFilter

	// DirectoryFilter is applied to directories. A rejected directory is
	// neither returned nor descended into. Nil accepts everything.
	DirectoryFilter EntryFilter

	// Depth is the deepest level returned; 0 means direct children only and
	// a negative value means unlimited.
	Depth int

	Type EntryType
}

// DefaultReaddirOptions returns options that list every file beneath root.
func DefaultReaddirOptions(root string) ReaddirOptions {
	return ReaddirOptions{
		Root:  root,
		Depth: -1,
		Type:  EntryTypeFiles,
	}
}
