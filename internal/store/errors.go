package store

import (
	"errors"

	"github.com/cardfolio/cardfolio/internal/app"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// The user-facing ones take their message text from the shared app package so
// the client mapper can recognise them in response envelopes.
var (
	// ErrEmailAlreadyRegistered is returned when an attempt to register a
	// new user fails because a user with the same email already exists.
	ErrEmailAlreadyRegistered = errors.New(app.MsgEmailAlreadyRegistered)

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCardNotFound is returned when a card lookup produces no row. The
	// same error covers "never existed", "soft-deleted", and "owned by
	// someone else" so that no existence information leaks to the caller.
	ErrCardNotFound = errors.New(app.MsgCardNotFound)

	// ErrDuplicateSlug is returned when the unique index on
	// cards.public_slug rejects an insert. Slug generation is best-effort;
	// the index is authoritative and a collision is surfaced, never
	// silently overwritten.
	ErrDuplicateSlug = errors.New(app.MsgSlugAlreadyExists)

	// ErrUnknownCounter is returned when an increment targets a counter
	// name other than views or shares.
	ErrUnknownCounter = errors.New("unknown counter name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty update with no SET clauses).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan card row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan card rows")
)
