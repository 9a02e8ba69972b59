package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-aso-sync/internal/logger"
	"github.com/MKhiriev/go-aso-sync/models"
)

// recoveryService turns a version-state conflict into a NeedsNewVersion
// outcome. It only procures the replacement version record; resubmitting the
// pending locales stays an explicit caller decision.
type recoveryService struct {
	versions VersionService

	logger *logger.Logger
}

// NewRecoveryService constructs a [RecoveryService] on top of the version
// lifecycle service.
func NewRecoveryService(versions VersionService, log *logger.Logger) RecoveryService {
	return &recoveryService{
		versions: versions,
		logger:   log,
	}
}

// Recover procures an editable version record and packages it with the
// locales still awaiting resubmission. Idempotent: a second conflict against
// the same locked version reuses the already-created successor.
func (r *recoveryService) Recover(ctx context.Context, app models.AppIdentity, pending []models.Locale) (*models.NeedsNewVersion, error) {
	record, err := r.versions.EnsureEditableVersion(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("recover from version state conflict: %w", err)
	}

	r.logger.Info().
		Str("store_id", app.StoreID()).
		Str("version", record.VersionString).
		Int("pending_locales", len(pending)).
		Msg("version state conflict recovered, push must be resumed explicitly")

	return &models.NeedsNewVersion{
		Version:        record,
		PendingLocales: pending,
	}, nil
}
