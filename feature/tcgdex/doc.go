// Package tcgdex provides read-only access to the TCGdex reference API.
//
// The TCGdex dataset is a hierarchy of series, sets and cards. This package
// wraps the REST API behind a typed Client and normalizes the inconsistent
// optional fields of the raw payloads (nested card counts, parent references)
// into stable flat structs, so the rest of the application never deals with
// missing keys.
//
// # Absence vs. Unavailability
//
// The two failure modes of a remote lookup demand different recovery, so they
// are kept distinct:
//   - A missing entity (HTTP 404) is reported as a nil result without error.
//   - A transport failure or unexpected status is reported as an error
//     wrapping ErrSourceUnavailable, to be matched with errors.Is.
//
// # HTTP Endpoints
//
// The feature also exposes thin read-through endpoints for the admin UI:
//   - GET /tcgdex/series : List all series.
//   - GET /tcgdex/sets : List all sets.
//   - GET /tcgdex/cards/search?q= : Search cards by name.
//   - GET /tcgdex/cards/:cardId : Fetch one card.
package tcgdex
