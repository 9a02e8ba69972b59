// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-aso-sync/internal/adapter"
	"github.com/MKhiriev/go-aso-sync/internal/logger"
	"github.com/MKhiriev/go-aso-sync/internal/store"
	"github.com/MKhiriev/go-aso-sync/internal/validators"
	"github.com/MKhiriev/go-aso-sync/models"
)

// Field group names reported in FieldError on partial locale failures.
const (
	fieldGroupAppInfo = "app-info"
	fieldGroupVersion = "version"
)

// syncOrchestrator drives pushes and pulls over whichever protocol the
// platform client speaks: one atomic edit session for a SessionClient,
// per-locale field-group updates for a VersionedClient.
type syncOrchestrator struct {
	client    adapter.StoreClient
	versions  VersionService
	recovery  RecoveryService
	registry  store.Registry
	cache     store.MetadataCache
	validator validators.Validator

	logger *logger.Logger
}

// NewSyncOrchestrator constructs the [SyncOrchestrator] for one platform
// client. The listing validator is derived from the client's platform.
func NewSyncOrchestrator(client adapter.StoreClient, versions VersionService, recovery RecoveryService, registry store.Registry, cache store.MetadataCache, log *logger.Logger) SyncOrchestrator {
	return &syncOrchestrator{
		client:    client,
		versions:  versions,
		recovery:  recovery,
		registry:  registry,
		cache:     cache,
		validator: validators.NewListingValidator(client.Platform()),
		logger:    log,
	}
}

// PushDocument implements [SyncOrchestrator].
func (o *syncOrchestrator) PushDocument(ctx context.Context, app models.AppIdentity, doc models.MultilingualDocument) (models.PushOutcome, error) {
	locales, result := o.validateLocales(ctx, doc)
	if len(locales) == 0 && len(result.FailedLocales) == 0 {
		return models.PushOutcome{}, ErrEmptyDocument
	}

	switch client := o.client.(type) {
	case adapter.SessionClient:
		return o.pushTransactional(ctx, client, app, doc, locales, result)
	case adapter.VersionedClient:
		return o.pushVersioned(ctx, client, app, doc, locales, result, "")
	default:
		return models.PushOutcome{}, fmt.Errorf("push to %s: %w", o.client.Platform(), ErrUnsupportedPlatform)
	}
}

// ResumePush implements [SyncOrchestrator]. On a transactional platform a
// resume is just a fresh atomic push; the version handle only matters on
// version-addressable platforms.
func (o *syncOrchestrator) ResumePush(ctx context.Context, app models.AppIdentity, versionID string, doc models.MultilingualDocument) (models.PushOutcome, error) {
	client, ok := o.client.(adapter.VersionedClient)
	if !ok {
		return o.PushDocument(ctx, app, doc)
	}

	locales, result := o.validateLocales(ctx, doc)
	if len(locales) == 0 && len(result.FailedLocales) == 0 {
		return models.PushOutcome{}, ErrEmptyDocument
	}

	return o.pushVersioned(ctx, client, app, doc, locales, result, versionID)
}

// PullDocument implements [SyncOrchestrator].
func (o *syncOrchestrator) PullDocument(ctx context.Context, app models.AppIdentity) (models.MultilingualDocument, error) {
	listings, err := o.client.ListListings(ctx, app)
	if err != nil {
		return models.MultilingualDocument{}, fmt.Errorf("pull listings: %w", err)
	}

	// Screenshot enrichment is best-effort: a listing without images is
	// still a valid pull.
	for loc, d := range listings {
		shots, shotsErr := o.client.FetchScreenshots(ctx, app, loc)
		if shotsErr != nil {
			o.logger.Warn().Err(shotsErr).
				Str("store_id", app.StoreID()).
				Str("locale", string(loc)).
				Msg("fetch screenshots failed, listing kept without images")
			continue
		}
		if len(shots) > 0 {
			d.Screenshots = shots
			listings[loc] = d
		}
	}

	doc := ToMultilingual(listings, models.FallbackLocale)

	for loc, d := range doc.Locales {
		if cacheErr := o.cache.SaveDocument(ctx, app, loc, d); cacheErr != nil {
			o.logger.Warn().Err(cacheErr).
				Str("store_id", app.StoreID()).
				Str("locale", string(loc)).
				Msg("cache pulled document failed")
		}
	}

	return doc, nil
}

// EnsureVersion implements [SyncOrchestrator].
func (o *syncOrchestrator) EnsureVersion(ctx context.Context, app models.AppIdentity, versionString string) (models.VersionRecord, error) {
	if _, ok := o.client.(adapter.VersionedClient); !ok {
		return models.VersionRecord{}, fmt.Errorf("ensure version on %s: %w", o.client.Platform(), ErrUnsupportedPlatform)
	}
	return o.versions.EnsureVersion(ctx, app, versionString)
}

// validateLocales splits the document's locales into the pushable set (in
// document order) and pre-recorded local failures for documents that would be
// rejected by the platform anyway.
func (o *syncOrchestrator) validateLocales(ctx context.Context, doc models.MultilingualDocument) ([]models.Locale, *models.SyncResult) {
	result := models.NewSyncResult()
	locales := make([]models.Locale, 0, len(doc.Locales))

	for _, loc := range doc.OrderedLocales() {
		d := doc.Locales[loc]
		if d.Empty() {
			continue
		}
		if err := o.validator.Validate(ctx, d); err != nil {
			result.RecordFailed(loc, err)
			continue
		}
		locales = append(locales, loc)
	}

	return locales, result
}

// pushTransactional sends every locale inside one edit session. The outcome
// is all-or-nothing: any staging or commit error leaves the platform
// untouched and surfaces as an error, never as a partial result.
func (o *syncOrchestrator) pushTransactional(ctx context.Context, client adapter.SessionClient, app models.AppIdentity, doc models.MultilingualDocument, locales []models.Locale, result *models.SyncResult) (models.PushOutcome, error) {
	if len(locales) == 0 {
		return models.PushOutcome{Result: result}, nil
	}

	err := WithSession(ctx, client, app, o.logger, func(session *models.EditSession) error {
		for _, loc := range locales {
			if updateErr := client.UpdateListing(ctx, session, loc, doc.Locales[loc]); updateErr != nil {
				return fmt.Errorf("stage listing %s: %w", loc, updateErr)
			}
		}
		return nil
	})
	if err != nil {
		return models.PushOutcome{}, err
	}

	for _, loc := range locales {
		result.RecordUpdated(loc)
	}
	o.finishPush(ctx, app, doc, result)

	return models.PushOutcome{Result: result}, nil
}

// pushVersioned sends each locale as up to two field-group updates. A
// version-state conflict stops the push and reports the freshly prepared
// version with the locales still pending; any other failure is recorded
// against its locale and the push continues.
func (o *syncOrchestrator) pushVersioned(ctx context.Context, client adapter.VersionedClient, app models.AppIdentity, doc models.MultilingualDocument, locales []models.Locale, result *models.SyncResult, versionID string) (models.PushOutcome, error) {
	if versionID == "" && hasVersionFields(doc, locales) {
		resolved, err := o.resolveTargetVersion(ctx, app)
		if err != nil {
			return models.PushOutcome{}, err
		}
		versionID = resolved
	}

	for i, loc := range locales {
		d := doc.Locales[loc]

		var failedGroups []string
		var lastErr error

		if d.HasAppFields() {
			if err := client.UpdateAppFields(ctx, app, loc, d); err != nil {
				failedGroups = append(failedGroups, fieldGroupAppInfo)
				lastErr = err
			}
		}

		if d.HasVersionFields() {
			err := client.UpdateVersionFields(ctx, app, versionID, loc, d)
			if errors.Is(err, adapter.ErrVersionStateConflict) {
				needs, recErr := o.recovery.Recover(ctx, app, locales[i:])
				if recErr != nil {
					return models.PushOutcome{}, recErr
				}
				return models.PushOutcome{NeedsNewVersion: needs}, nil
			}
			if err != nil {
				failedGroups = append(failedGroups, fieldGroupVersion)
				lastErr = err
			}
		}

		if len(failedGroups) > 0 {
			result.RecordFailed(loc, &models.FieldError{Fields: failedGroups, Err: lastErr})
		} else {
			result.RecordUpdated(loc)
		}
	}

	o.finishPush(ctx, app, doc, result)

	return models.PushOutcome{Result: result}, nil
}

// resolveTargetVersion picks the version record that version-bound fields are
// sent against: the newest record even when locked (the platform, not a local
// guess, is the authority on whether the state permits the change), or a
// freshly created record when none exist.
func (o *syncOrchestrator) resolveTargetVersion(ctx context.Context, app models.AppIdentity) (string, error) {
	latest, err := o.versions.LatestVersion(ctx, app)
	if err != nil {
		return "", fmt.Errorf("resolve target version: %w", err)
	}
	if latest != nil {
		return latest.ID, nil
	}

	record, err := o.versions.EnsureEditableVersion(ctx, app)
	if err != nil {
		return "", fmt.Errorf("prepare version for push: %w", err)
	}
	return record.ID, nil
}

// finishPush refreshes the local cache and the registry bookkeeping for the
// updated locales. Both are best-effort: the push already happened and its
// result must not be masked by local persistence noise.
func (o *syncOrchestrator) finishPush(ctx context.Context, app models.AppIdentity, doc models.MultilingualDocument, result *models.SyncResult) {
	for _, loc := range result.UpdatedLocales {
		if err := o.cache.SaveDocument(ctx, app, loc, doc.Locales[loc]); err != nil {
			o.logger.Warn().Err(err).
				Str("store_id", app.StoreID()).
				Str("locale", string(loc)).
				Msg("cache pushed document failed")
		}
	}

	if len(result.UpdatedLocales) == 0 {
		return
	}
	if err := o.registry.RecordSyncedLocales(ctx, app, result.UpdatedLocales); err != nil {
		o.logger.Warn().Err(err).
			Str("store_id", app.StoreID()).
			Msg("record synced locales failed")
	}
}

func hasVersionFields(doc models.MultilingualDocument, locales []models.Locale) bool {
	for _, loc := range locales {
		if doc.Locales[loc].HasVersionFields() {
			return true
		}
	}
	return false
}
