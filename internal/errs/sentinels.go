// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across api/session/page layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrLoginRequired indicates a gated action was attempted without a session.
	ErrLoginRequired = errors.New("login required")

	// ErrOwnArtwork indicates an attempt to order one's own listed artwork.
	ErrOwnArtwork = errors.New("cannot order your own artwork")

	// ErrPageOutOfRange indicates navigation to a page outside [1, totalPages].
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrEmptySelection indicates a bulk action was invoked with nothing selected.
	ErrEmptySelection = errors.New("empty selection")

	// ErrUnitUnavailable indicates a booking attempt against a unit that is not available.
	ErrUnitUnavailable = errors.New("unit is not available")

	// ErrStale indicates a fetch result was superseded by a newer request for the same key.
	ErrStale = errors.New("superseded by newer request")
)
