package pinstore

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/stake/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// CurrentSchemaVersion is the schema version Save writes.
	CurrentSchemaVersion = 2

	// legacySchemaVersion is decoded read-only and never written back out.
	legacySchemaVersion = 1
)

// versionProbe extracts the top-level discriminator before the full decode is
// dispatched on it.
type versionProbe struct {
	Version *int `json:"version"`
}

type ledgerV2 struct {
	Version int     `json:"version"`
	Pins    []pinV2 `json:"pins"`
}

type pinV2 struct {
	Identity string   `json:"identity"`
	Kind     string   `json:"kind"`
	Location string   `json:"location"`
	State    stateDTO `json:"state"`
}

type ledgerV1 struct {
	Version int      `json:"version"`
	Object  objectV1 `json:"object"`
}

type objectV1 struct {
	Pins []pinV1 `json:"pins"`
}

type pinV1 struct {
	Package       string   `json:"package"`
	RepositoryURL string   `json:"repositoryURL"`
	State         stateDTO `json:"state"`
}

type stateDTO struct {
	Branch   *string `json:"branch"`
	Revision string  `json:"revision"`
	Version  *string `json:"version"`
}

func decodeV2(data []byte) ([]domain.Pin, error) {
	var doc ledgerV2
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	pins := make([]domain.Pin, 0, len(doc.Pins))
	for _, dto := range doc.Pins {
		if dto.Location == "" {
			return nil, zerr.With(zerr.New("pin entry is missing a location"), "identity", dto.Identity)
		}
		kind, err := domain.ParseRefKind(dto.Kind)
		if err != nil {
			return nil, err
		}
		state, err := decodeState(dto.State)
		if err != nil {
			return nil, zerr.With(err, "identity", dto.Identity)
		}
		pins = append(pins, domain.Pin{
			Ref:   referenceForKind(kind, dto.Location),
			State: state,
		})
	}
	return pins, nil
}

// decodeV1 translates the legacy schema, which knew only remote
// source-control packages keyed by name and repository URL, into the current
// in-memory shape.
func decodeV1(data []byte) ([]domain.Pin, error) {
	var doc ledgerV1
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	pins := make([]domain.Pin, 0, len(doc.Object.Pins))
	for _, dto := range doc.Object.Pins {
		if dto.Package == "" {
			return nil, zerr.New("legacy pin entry is missing a package name")
		}
		if dto.RepositoryURL == "" {
			return nil, zerr.With(zerr.New("legacy pin entry is missing a repository URL"), "package", dto.Package)
		}
		state, err := decodeState(dto.State)
		if err != nil {
			return nil, zerr.With(err, "package", dto.Package)
		}
		pins = append(pins, domain.Pin{
			Ref:   domain.NewRemoteSourceControlReference(dto.RepositoryURL),
			State: state,
		})
	}
	return pins, nil
}

func decodeState(dto stateDTO) (domain.CheckoutState, error) {
	if dto.Revision == "" {
		return domain.CheckoutState{}, zerr.New("checkout state is missing a revision")
	}
	if dto.Version != nil && dto.Branch != nil {
		return domain.CheckoutState{}, zerr.New("checkout state carries both a version and a branch")
	}
	switch {
	case dto.Version != nil:
		return domain.Versioned(*dto.Version, dto.Revision), nil
	case dto.Branch != nil:
		return domain.Branched(*dto.Branch, dto.Revision), nil
	default:
		return domain.RevisionOnly(dto.Revision), nil
	}
}

func referenceForKind(kind domain.RefKind, location string) domain.PackageReference {
	switch kind {
	case domain.KindRoot:
		return domain.NewRootReference(location)
	case domain.KindLocal:
		return domain.NewLocalReference(location)
	case domain.KindLocalSourceControl:
		return domain.NewLocalSourceControlReference(location)
	case domain.KindRegistry:
		return domain.NewRegistryReference(location)
	default:
		return domain.NewRemoteSourceControlReference(location)
	}
}

// encodeLedger serializes pins into the current schema. Key order follows the
// struct definitions and pins arrive identity-sorted, so output is
// byte-stable for identical pin sets.
func encodeLedger(pins []domain.Pin) ([]byte, error) {
	doc := ledgerV2{
		Version: CurrentSchemaVersion,
		Pins:    make([]pinV2, 0, len(pins)),
	}
	for _, pin := range pins {
		doc.Pins = append(doc.Pins, pinV2{
			Identity: pin.Ref.Identity.String(),
			Kind:     string(pin.Ref.Kind),
			Location: pin.Ref.Location,
			State:    encodeState(pin.State),
		})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, fmt.Sprintf("failed to marshal version %d ledger", CurrentSchemaVersion))
	}
	return append(data, '\n'), nil
}

func encodeState(s domain.CheckoutState) stateDTO {
	dto := stateDTO{Revision: s.Revision()}
	if version, ok := s.Version(); ok {
		dto.Version = &version
	}
	if branch, ok := s.Branch(); ok {
		dto.Branch = &branch
	}
	return dto
}
