package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAppNotFound is returned when a registry lookup targets a
	// platform/store-id pair that was never registered.
	ErrAppNotFound = errors.New("app is not registered")

	// ErrDocumentNotFound is returned when a cache lookup targets an
	// app/locale pair that has never been cached.
	ErrDocumentNotFound = errors.New("cached document was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// cache methods when a SQL-level operation fails before any domain logic can
// be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects or fails to
	// execute a query.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned into the
	// destination fields.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when an iteration error is detected after
	// the result set is exhausted.
	ErrScanningRows = errors.New("error iterating rows")
)
