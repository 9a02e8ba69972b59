package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDocument is returned when a push is asked to send a document
	// that carries no content for any locale.
	ErrEmptyDocument = errors.New("document has no pushable content")

	// ErrUnsupportedPlatform is returned when an operation is asked to run
	// against a platform whose client supports neither protocol the
	// orchestrator speaks.
	ErrUnsupportedPlatform = errors.New("platform is not supported")

	// ErrNoVersions is returned when an operation needs an existing version
	// record but the platform reports none.
	ErrNoVersions = errors.New("no version records exist")
)

// TransactionError marks a failed commit of an edit session: the staged
// changes were discarded and nothing was published. It is distinct from a
// failure inside the session body, which surfaces as the body's own error.
type TransactionError struct {
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("edit session commit failed, all changes discarded: %v", e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }
