package domain

// MirrorSet is a caller-supplied bidirectional mapping between canonical
// locations and their locally substituted mirrors. It is read-only once
// built; the ledger never persists it. The mapping must be injective (no two
// originals share a mirror) — that is a contract on the caller, not a
// condition checked here.
type MirrorSet struct {
	effective map[string]string // original -> mirror
	canonical map[string]string // mirror -> original
}

// NewMirrorSet builds a MirrorSet from original->mirror entries.
func NewMirrorSet(entries map[string]string) MirrorSet {
	m := MirrorSet{
		effective: make(map[string]string, len(entries)),
		canonical: make(map[string]string, len(entries)),
	}
	for original, mirror := range entries {
		m.effective[original] = mirror
		m.canonical[mirror] = original
	}
	return m
}

// Effective returns the locally substituted location for a canonical one, or
// the input unchanged when no mirror is configured for it. Applied to every
// reference right after deserialization.
func (m MirrorSet) Effective(location string) string {
	if mirror, ok := m.effective[location]; ok {
		return mirror
	}
	return location
}

// Canonical returns the portable location for a locally substituted one, or
// the input unchanged when it is not a configured mirror. Applied to every
// reference right before serialization.
func (m MirrorSet) Canonical(location string) string {
	if original, ok := m.canonical[location]; ok {
		return original
	}
	return location
}

// Len returns the number of configured mirrors.
func (m MirrorSet) Len() int {
	return len(m.effective)
}
