// Package pinstore implements the resolved-dependency ledger: the durable
// record of exactly which checkout of every dependency resolution selected.
//
// The in-memory store always holds locally effective (mirror-substituted)
// locations, so a build on this machine fetches from its configured mirrors.
// The on-disk file always holds canonical locations, so it can be committed
// to shared version control and reproduced on a machine with different or
// absent mirror configuration. The translation happens exactly at the
// load/save boundary and nowhere else.
//
// The store assumes exclusive access to its backing file for the duration of
// a resolution session; multi-process safety is the caller's job (an external
// advisory lock around open, mutate, save).
package pinstore

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stake/internal/core/domain"
	"go.trai.ch/stake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store owns the full set of pins for one workspace, keyed by identity.
// Mutations only touch the in-memory map; nothing reaches the file system
// until Save.
type Store struct {
	path    string
	fs      ports.FileSystem
	mirrors domain.MirrorSet
	log     ports.Logger
	pins    map[domain.Identity]domain.Pin
}

// Open binds a store to the ledger file at path and loads it if it exists.
// A missing file yields an empty store, not an error. Loading never writes.
func Open(path string, fsys ports.FileSystem, mirrors domain.MirrorSet, log ports.Logger) (*Store, error) {
	s := &Store{
		path:    path,
		fs:      fsys,
		mirrors: mirrors,
		log:     log,
		pins:    make(map[domain.Identity]domain.Pin),
	}

	if !fsys.Exists(path) {
		return s, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read resolved-dependency ledger"), "path", path)
	}

	var probe versionProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, s.malformed(err)
	}
	if probe.Version == nil {
		err := zerr.Wrap(domain.ErrUnsupportedLedgerVersion, "schema version missing: "+path)
		return nil, zerr.With(err, "path", path)
	}

	var pins []domain.Pin
	switch version := *probe.Version; version {
	case legacySchemaVersion:
		pins, err = decodeV1(data)
		if err == nil {
			s.log.Info(fmt.Sprintf("loaded legacy version %d ledger from %s, next save rewrites it as version %d",
				legacySchemaVersion, path, CurrentSchemaVersion))
		}
	case CurrentSchemaVersion:
		pins, err = decodeV2(data)
	default:
		err := zerr.Wrap(domain.ErrUnsupportedLedgerVersion,
			fmt.Sprintf("schema version %d is not supported: %s", version, path))
		err = zerr.With(err, "path", path)
		return nil, zerr.With(err, "version", version)
	}
	if err != nil {
		return nil, s.malformed(err)
	}

	for _, pin := range pins {
		ref := pin.Ref.WithLocation(mirrors.Effective(pin.Ref.Location))
		s.pins[ref.Identity] = domain.Pin{Ref: ref, State: pin.State}
	}
	return s, nil
}

func (s *Store) malformed(cause error) error {
	err := zerr.Wrap(cause, domain.ErrMalformedLedger.Error()+": "+s.path)
	return zerr.With(err, "path", s.path)
}

// Path returns the ledger file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Pin records the checkout state for a reference, replacing any previous pin
// under the same identity. The reference is stored exactly as given; mirror
// translation happens only at the load/save boundary.
func (s *Store) Pin(ref domain.PackageReference, state domain.CheckoutState) {
	s.pins[ref.Identity] = domain.Pin{Ref: ref, State: state}
}

// Unpin removes the pin for the reference's identity. Removing an absent
// identity is a no-op.
func (s *Store) Unpin(ref domain.PackageReference) {
	delete(s.pins, ref.Identity)
}

// UnpinAll clears every pin.
func (s *Store) UnpinAll() {
	clear(s.pins)
}

// Get returns the pin recorded for an identity.
func (s *Store) Get(id domain.Identity) (domain.Pin, bool) {
	pin, ok := s.pins[id]
	return pin, ok
}

// Count returns the number of recorded pins.
func (s *Store) Count() int {
	return len(s.pins)
}

// Pins returns the recorded pins sorted by identity.
func (s *Store) Pins() []domain.Pin {
	pins := make([]domain.Pin, 0, len(s.pins))
	for _, pin := range s.pins {
		pins = append(pins, pin)
	}
	sortPins(pins)
	return pins
}

// Save rewrites the ledger file from the current in-memory state. An empty
// store deletes the file instead: no pins recorded and no file present mean
// the same thing, and a stray empty ledger would be noise in version control.
func (s *Store) Save() error {
	if len(s.pins) == 0 {
		if !s.fs.Exists(s.path) {
			return nil
		}
		if err := s.fs.Remove(s.path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove resolved-dependency ledger"), "path", s.path)
		}
		return nil
	}

	data, err := s.encodeCanonical()
	if err != nil {
		return err
	}
	if err := s.fs.WriteFileAtomic(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write resolved-dependency ledger"), "path", s.path)
	}
	return nil
}

// Fingerprint returns a stable digest of the canonical serialization of the
// current pin set. Two stores fingerprint equal iff they would save identical
// ledger files.
func (s *Store) Fingerprint() (string, error) {
	data, err := s.encodeCanonical()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

// encodeCanonical serializes the pin set with every location translated back
// to its canonical, mirror-independent form.
func (s *Store) encodeCanonical() ([]byte, error) {
	pins := s.Pins()
	for i := range pins {
		pins[i].Ref = pins[i].Ref.WithLocation(s.mirrors.Canonical(pins[i].Ref.Location))
	}
	sortPins(pins)
	return encodeLedger(pins)
}

func sortPins(pins []domain.Pin) {
	slices.SortFunc(pins, func(a, b domain.Pin) int {
		return strings.Compare(string(a.Ref.Identity), string(b.Ref.Identity))
	})
}
