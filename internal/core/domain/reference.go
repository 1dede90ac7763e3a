package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// RefKind discriminates the closed set of package source kinds.
type RefKind string

const (
	// KindRoot is the workspace root package.
	KindRoot RefKind = "root"

	// KindLocal is a plain local directory.
	KindLocal RefKind = "local"

	// KindLocalSourceControl is a local checkout under source control.
	KindLocalSourceControl RefKind = "localSourceControl"

	// KindRemoteSourceControl is a remote source-control URL.
	KindRemoteSourceControl RefKind = "remoteSourceControl"

	// KindRegistry is a registry coordinate (e.g. "corp.foo").
	KindRegistry RefKind = "registry"
)

// ParseRefKind maps a serialized kind discriminator back to a RefKind.
func ParseRefKind(s string) (RefKind, error) {
	switch k := RefKind(s); k {
	case KindRoot, KindLocal, KindLocalSourceControl, KindRemoteSourceControl, KindRegistry:
		return k, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownReferenceKind, fmt.Sprintf("unknown reference kind %q", s)), "kind", s)
	}
}

// PackageReference identifies where a package's source lives. The identity is
// always recomputed from the location by the constructors, so the two can
// never drift apart; callers never supply an identity of their own.
type PackageReference struct {
	Identity Identity
	Kind     RefKind
	Location string
}

// NewRootReference returns a reference to the workspace root package at path.
func NewRootReference(path string) PackageReference {
	return newReference(KindRoot, path)
}

// NewLocalReference returns a reference to a plain local directory.
func NewLocalReference(path string) PackageReference {
	return newReference(KindLocal, path)
}

// NewLocalSourceControlReference returns a reference to a local
// source-control checkout.
func NewLocalSourceControlReference(path string) PackageReference {
	return newReference(KindLocalSourceControl, path)
}

// NewRemoteSourceControlReference returns a reference to a remote
// source-control URL.
func NewRemoteSourceControlReference(url string) PackageReference {
	return newReference(KindRemoteSourceControl, url)
}

// NewRegistryReference returns a reference to a registry coordinate.
func NewRegistryReference(coordinate string) PackageReference {
	return newReference(KindRegistry, coordinate)
}

func newReference(kind RefKind, location string) PackageReference {
	return PackageReference{
		Identity: IdentityFromLocation(location),
		Kind:     kind,
		Location: location,
	}
}

// WithLocation returns a copy of the reference pointing at location. The
// identity is recomputed; for mirror rewrites of the same repository it is
// unchanged, since identity ignores everything but the trailing component.
func (r PackageReference) WithLocation(location string) PackageReference {
	return newReference(r.Kind, location)
}

func (r PackageReference) String() string {
	return fmt.Sprintf("%s (%s)", r.Identity, r.Location)
}
