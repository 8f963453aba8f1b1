package tcgdex

import "errors"

var (
	// ErrNotFound indicates that a requested remote entity (series, set or
	// card) does not exist in the reference dataset. It is returned by the
	// catalog synchronizers when the top-level entity of an operation is
	// absent; it is never used for transport problems.
	ErrNotFound = errors.New("entity not found in reference API")

	// ErrSourceUnavailable indicates that the reference API could not be
	// reached or returned a malformed or unexpected response. Callers should
	// retry the whole operation later instead of treating the entity as absent.
	ErrSourceUnavailable = errors.New("reference API unavailable")
)
