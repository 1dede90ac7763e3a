package fs

import (
	iofs "io/fs"
	"sync"

	"go.trai.ch/stake/internal/core/ports"
)

var _ ports.FileSystem = (*Memory)(nil)

// Memory implements ports.FileSystem on a map. It backs tests so they never
// touch real disk, and mirrors the semantics of the OS adapter: writes are
// whole-file replacements and removing a missing file fails with ErrNotExist.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemory creates an empty in-memory file system.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// Exists reports whether a file exists at path.
func (m *Memory) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[path]
	return ok
}

// ReadFile returns the full content of the file at path.
func (m *Memory) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	if !ok {
		return nil, &iofs.PathError{Op: "open", Path: path, Err: iofs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFileAtomic replaces the file content at path.
func (m *Memory) WriteFileAtomic(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[path] = stored
	return nil
}

// Remove deletes the file at path.
func (m *Memory) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; !ok {
		return &iofs.PathError{Op: "remove", Path: path, Err: iofs.ErrNotExist}
	}
	delete(m.files, path)
	return nil
}
