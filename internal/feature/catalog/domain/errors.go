// Package domain defines domain-level errors for the catalog feature.
package domain

import "errors"

var (
	// ErrInstrumentNotFound indicates that a trading symbol has no matching
	// equity record in the catalog. This is a per-instrument outcome and
	// never aborts a run.
	ErrInstrumentNotFound = errors.New("instrument key not found")

	// ErrCatalogUnavailable indicates the instrument reference list could
	// not be fetched or parsed. Fatal for the whole run.
	ErrCatalogUnavailable = errors.New("instrument catalog unavailable")
)
