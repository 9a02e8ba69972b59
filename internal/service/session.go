package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-aso-sync/internal/adapter"
	"github.com/MKhiriev/go-aso-sync/internal/logger"
	"github.com/MKhiriev/go-aso-sync/models"
)

// WithSession runs body inside one edit session: begin, body, commit. Every
// exit path leaves the session in a terminal state.
//
// A body error aborts the session and surfaces unchanged. A commit error
// aborts the session and surfaces as a *TransactionError, telling the caller
// that every staged change was discarded. The abort call itself is
// best-effort: the platform discards uncommitted sessions on expiry anyway,
// so an abort failure is logged and swallowed.
func WithSession(ctx context.Context, client adapter.SessionClient, app models.AppIdentity, log *logger.Logger, body func(session *models.EditSession) error) error {
	session, err := client.BeginSession(ctx, app)
	if err != nil {
		return fmt.Errorf("begin edit session: %w", err)
	}

	abort := func(cause string) {
		if abortErr := client.AbortSession(ctx, session); abortErr != nil {
			log.Warn().Err(abortErr).
				Str("store_id", app.StoreID()).
				Str("session", session.SessionID).
				Str("cause", cause).
				Msg("abort edit session failed")
		}
		session.MarkAborted()
	}

	if err = body(session); err != nil {
		abort("body error")
		return err
	}

	if err = client.CommitSession(ctx, session); err != nil {
		abort("commit error")
		return &TransactionError{Err: err}
	}
	session.MarkCommitted()

	return nil
}
