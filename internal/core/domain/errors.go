package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedLedgerVersion is returned when the ledger file carries a
	// schema version this tool does not know how to decode.
	ErrUnsupportedLedgerVersion = zerr.New("unsupported resolved-dependency ledger version")

	// ErrMalformedLedger is returned when the ledger file is not valid JSON
	// or is missing fields its schema version requires.
	ErrMalformedLedger = zerr.New("unparsable resolved-dependency ledger")

	// ErrMalformedMirrors is returned when the mirrors file is invalid, for
	// example when two entries share an original or a mirror location.
	ErrMalformedMirrors = zerr.New("malformed mirrors file")

	// ErrUnknownReferenceKind is returned when a ledger entry carries a kind
	// discriminator outside the known set.
	ErrUnknownReferenceKind = zerr.New("unknown reference kind")

	// ErrCheckoutMissing is returned by verification when a pinned local
	// checkout is absent from the file system.
	ErrCheckoutMissing = zerr.New("pinned checkout missing")
)
