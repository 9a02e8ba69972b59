package adapter

import "errors"

var (
	// ErrConfigurationMissing indicates that a required credential or
	// identity is absent. Fatal: surfaced immediately, never retried.
	ErrConfigurationMissing = errors.New("required credential or identity missing")

	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("store client unauthorized")
	ErrForbidden    = errors.New("store access forbidden")
	ErrNotFound     = errors.New("store resource not found")
	ErrRateLimited  = errors.New("store rate limit exceeded")
	ErrServerError  = errors.New("store server error")

	// ErrVersionStateConflict is the structured refusal of a platform to
	// mutate a field because the targeted version resource is in a lifecycle
	// state that forbids it. It is derived from the HTTP status plus the
	// platform's machine-readable error code, never from matching
	// human-readable message text.
	ErrVersionStateConflict = errors.New("version state conflict")

	// ErrUnsupported marks an operation the platform has no equivalent for.
	ErrUnsupported = errors.New("operation not supported by platform")
)
