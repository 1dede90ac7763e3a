package domain

type checkoutKind uint8

const (
	checkoutVersioned checkoutKind = iota
	checkoutBranched
	checkoutRevisionOnly
)

// CheckoutState records the exact resolved point in history for a dependency.
// It is a closed variant: versioned (version + revision), branched
// (branch + revision), or revision-only. The fields are unexported so a state
// holding both a version and a branch cannot be constructed. The zero value
// is a revision-only state with an empty revision.
type CheckoutState struct {
	kind     checkoutKind
	version  string
	branch   string
	revision string
}

// Versioned returns a state pinned to a released version at a revision.
func Versioned(version, revision string) CheckoutState {
	return CheckoutState{kind: checkoutVersioned, version: version, revision: revision}
}

// Branched returns a state pinned to a branch at a revision.
func Branched(branch, revision string) CheckoutState {
	return CheckoutState{kind: checkoutBranched, branch: branch, revision: revision}
}

// RevisionOnly returns a state pinned to a bare revision.
func RevisionOnly(revision string) CheckoutState {
	return CheckoutState{kind: checkoutRevisionOnly, revision: revision}
}

// Revision returns the resolved revision. It is populated for every variant.
func (s CheckoutState) Revision() string {
	return s.revision
}

// Version returns the pinned version and whether the state is versioned.
func (s CheckoutState) Version() (string, bool) {
	return s.version, s.kind == checkoutVersioned
}

// Branch returns the pinned branch and whether the state is branched.
func (s CheckoutState) Branch() (string, bool) {
	return s.branch, s.kind == checkoutBranched
}

// Description returns the version string, the branch name, or the revision
// identifier, whichever populated the state.
func (s CheckoutState) Description() string {
	switch s.kind {
	case checkoutVersioned:
		return s.version
	case checkoutBranched:
		return s.branch
	default:
		return s.revision
	}
}
