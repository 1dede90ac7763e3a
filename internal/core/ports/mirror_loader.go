package ports

import "go.trai.ch/stake/internal/core/domain"

// MirrorLoader loads the workspace mirror configuration. A missing mirrors
// file is not an error; it yields an empty set.
//
//go:generate go run go.uber.org/mock/mockgen -source=mirror_loader.go -destination=mocks/mock_mirror_loader.go -package=mocks
type MirrorLoader interface {
	// Load reads the mirror configuration for the workspace rooted at dir.
	Load(dir string) (domain.MirrorSet, error)
}
