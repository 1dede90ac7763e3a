// Package fs implements the FileSystem port against the operating system and
// against an in-memory map for tests.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/stake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*OS)(nil)

// OS implements ports.FileSystem against the real file system.
type OS struct{}

// NewOS creates a new OS file system adapter.
func NewOS() *OS {
	return &OS{}
}

// Exists reports whether a file exists at path.
func (*OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile returns the full content of the file at path.
func (*OS) ReadFile(path string) ([]byte, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it over path. A crash mid-write leaves the previous file intact;
// the rename is atomic on POSIX file systems.
func (*OS) WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create target directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to write temporary file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to close temporary file")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to set file permissions")
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to replace target file")
	}
	return nil
}

// Remove deletes the file at path.
func (*OS) Remove(path string) error {
	return os.Remove(path)
}
