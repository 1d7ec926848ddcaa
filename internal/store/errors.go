package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists in the
	// database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrMenuNotFound is returned when a query or mutation targets a menu
	// record (identified by its UUID) that does not exist in the database.
	ErrMenuNotFound = errors.New("menu was not found")

	// ErrNotMenuOwner is returned when a mutation targets a menu record that
	// exists but belongs to a different user. The caller must not leak which
	// of the two conditions occurred to unauthenticated clients.
	ErrNotMenuOwner = errors.New("menu belongs to another user")

	// ErrLocalSessionNotFound is returned by the client-side local state
	// store when no cached session is present.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan menu row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan menu rows")

	// ErrEncodingDocument is returned when a menu document cannot be
	// serialised to JSON before being written to the jsonb column.
	ErrEncodingDocument = errors.New("failed to encode menu document")

	// ErrDecodingDocument is returned when a jsonb column read from the
	// database cannot be deserialised into a menu document.
	ErrDecodingDocument = errors.New("failed to decode menu document")
)
