package inventory

import "errors"

// Sentinel errors for inventory loading.
var (
	// ErrFileNotFound indicates the inventory path does not resolve
	// to an existing file. This aborts the load.
	ErrFileNotFound = errors.New("inventory: file not found")

	// ErrMalformedRow indicates a row with a recognised prefix that
	// could not be turned into a device (missing fields, unparsable
	// boolean or integer, failed field validation). Malformed rows
	// are skipped during loading and never escape LoadFile; the
	// sentinel exists for row-level parsing via ParseRow.
	ErrMalformedRow = errors.New("inventory: malformed row")

	// errUnrecognisedPrefix marks rows whose first field matches no
	// known variant prefix. Such rows are discarded without producing
	// a device.
	errUnrecognisedPrefix = errors.New("inventory: unrecognised prefix")
)
