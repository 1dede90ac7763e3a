package ports

// FileSystem abstracts the file operations the ledger needs. An in-memory
// implementation backs the tests; the OS implementation backs the CLI.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// ReadFile returns the full content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to path so that a reader observes either
	// the previous complete content or the new complete content, never a
	// partial write.
	WriteFileAtomic(path string, data []byte) error

	// Remove deletes the file at path.
	Remove(path string) error
}
