package domain

import (
	"path"
	"strings"
)

// Identity is the canonical key for a dependency. It is derived from the
// dependency's declared location and is stable across mirror substitution:
// a repository and its mirror share the trailing path component, so both
// yield the same identity. Comparison is case-insensitive by construction
// (identities are stored lowercased).
type Identity string

// IdentityFromLocation derives the identity for a location string, which may
// be a source-control URL, a registry coordinate, or a local path.
func IdentityFromLocation(location string) Identity {
	name := strings.TrimSuffix(location, "/")
	name = path.Base(name)
	name = strings.TrimSuffix(name, ".git")
	return Identity(strings.ToLower(name))
}

// IdentityFromName derives the identity for a bare package name, as recorded
// by the legacy ledger schema.
func IdentityFromName(name string) Identity {
	return Identity(strings.ToLower(name))
}

func (id Identity) String() string {
	return string(id)
}
