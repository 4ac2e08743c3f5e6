package model

import (
	"bytes"
	"io"
	"io/fs"
	"strings"
)

// ArchiveEntry is one record of a decompressed archive. Content is resolved
// lazily through the opener so that iteration does not read file bodies.
type ArchiveEntry struct {
	RelativePath string
	IsDirectory  bool
	Mode         fs.FileMode
	Size         int64

	open func() (io.ReadCloser, error)
}

// NewArchiveEntry creates an entry backed by open. open may be nil for directories.
func NewArchiveEntry(path string, isDir bool, mode fs.FileMode, size int64, open func() (io.ReadCloser, error)) ArchiveEntry {
	return ArchiveEntry{
		RelativePath: NormalizeSeparators(path),
		IsDirectory:  isDir,
		Mode:         mode,
		Size:         size,
		open:         open,
	}
}

// NewMemoryEntry creates an entry holding content in memory.
func NewMemoryEntry(path string, content []byte) ArchiveEntry {
	isDir := strings.HasSuffix(path, "/")
	var open func() (io.ReadCloser, error)
	if !isDir {
		open = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		}
	}
	return NewArchiveEntry(path, isDir, 0, int64(len(content)), open)
}

// Open returns the entry content. Directories have an empty body.
func (e ArchiveEntry) Open() (io.ReadCloser, error) {
	if e.IsDirectory || e.open == nil {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	return e.open()
}

// IsSymlink reports whether the entry is a symbolic link.
func (e ArchiveEntry) IsSymlink() bool {
	return e.Mode&fs.ModeSymlink != 0
}

// StrippedPath removes the archive's synthetic top-level folder.
// "repo-master/src/index.ts" becomes "src/index.ts"; "repo-master/" becomes "".
func (e ArchiveEntry) StrippedPath() string {
	path := strings.TrimLeft(e.RelativePath, "/")
	idx := strings.Index(path, "/")
	if idx < 0 {
		return ""
	}
	return path[idx+1:]
}

// ExtractResult summarizes what an extraction wrote to disk.
type ExtractResult struct {
	Destination string
	Files       []string // destination-relative, forward slashes
	Dirs        []string
	Skipped     int
	Size        int64
}
