// Package config provides the workspace mirror-configuration loader.
package config

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/stake/internal/core/domain"
	"go.trai.ch/stake/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the conventional name of the mirrors file in a workspace.
const Filename = "mirrors.yaml"

var _ ports.MirrorLoader = (*MirrorsLoader)(nil)

// MirrorsLoader implements ports.MirrorLoader using a YAML file.
type MirrorsLoader struct {
	fs  ports.FileSystem
	log ports.Logger
}

// NewMirrorsLoader creates a new loader reading through the given file system.
func NewMirrorsLoader(fsys ports.FileSystem, log ports.Logger) *MirrorsLoader {
	return &MirrorsLoader{fs: fsys, log: log}
}

// mirrorsFile represents the structure of the mirrors.yaml configuration file.
type mirrorsFile struct {
	Mirrors []mirrorDTO `yaml:"mirrors"`
}

// mirrorDTO represents one original-to-mirror substitution.
type mirrorDTO struct {
	Original string `yaml:"original"`
	Mirror   string `yaml:"mirror"`
}

// Load reads the mirror configuration for the workspace rooted at dir. A
// missing file yields an empty set. The mapping must stay bidirectional, so
// a duplicated original or mirror location is rejected.
func (l *MirrorsLoader) Load(dir string) (domain.MirrorSet, error) {
	path := filepath.Join(dir, Filename)
	if !l.fs.Exists(path) {
		return domain.MirrorSet{}, nil
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return domain.MirrorSet{}, zerr.With(zerr.Wrap(err, "failed to read mirrors file"), "path", path)
	}

	var doc mirrorsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.MirrorSet{}, zerr.With(zerr.Wrap(err, domain.ErrMalformedMirrors.Error()+": "+path), "path", path)
	}

	entries := make(map[string]string, len(doc.Mirrors))
	seenMirrors := make(map[string]bool, len(doc.Mirrors))
	for _, dto := range doc.Mirrors {
		if dto.Original == "" || dto.Mirror == "" {
			err := zerr.Wrap(domain.ErrMalformedMirrors, "mirror entry must carry both an original and a mirror location")
			return domain.MirrorSet{}, zerr.With(err, "path", path)
		}
		if _, dup := entries[dto.Original]; dup {
			err := zerr.Wrap(domain.ErrMalformedMirrors, fmt.Sprintf("duplicate original location %q", dto.Original))
			return domain.MirrorSet{}, zerr.With(err, "path", path)
		}
		if seenMirrors[dto.Mirror] {
			err := zerr.Wrap(domain.ErrMalformedMirrors, fmt.Sprintf("duplicate mirror location %q", dto.Mirror))
			return domain.MirrorSet{}, zerr.With(err, "path", path)
		}
		entries[dto.Original] = dto.Mirror
		seenMirrors[dto.Mirror] = true
	}

	l.log.Info(fmt.Sprintf("loaded %d mirror substitutions from %s", len(entries), path))
	return domain.NewMirrorSet(entries), nil
}
