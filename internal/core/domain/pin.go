package domain

// Pin is one entry of the resolved-dependency ledger: a package reference and
// the exact checkout state resolution selected for it.
type Pin struct {
	Ref   PackageReference
	State CheckoutState
}
