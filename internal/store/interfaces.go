// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-aso-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AppSyncState is the registry's bookkeeping record for one application.
type AppSyncState struct {
	// RecordID is the registry-assigned identifier of the record.
	RecordID string `json:"record_id"`

	App models.AppIdentity `json:"app"`

	// SyncedLocales are the locales whose content has been pushed at least
	// once, sorted lexicographically.
	SyncedLocales []models.Locale `json:"synced_locales,omitempty"`

	// LastSyncedAt is the time of the most recent successful push or pull.
	// Zero when the app has never been synced.
	LastSyncedAt time.Time `json:"last_synced_at,omitempty"`
}

// Registry is the persistent index of applications the tool manages, keyed by
// platform plus store identifier.
type Registry interface {
	// RegisterApp adds app to the registry. Registering an app that is
	// already present refreshes its display name and is not an error.
	RegisterApp(ctx context.Context, app models.AppIdentity) error

	// GetApp resolves a platform/store-id pair to the registered identity.
	// Returns ErrAppNotFound when the app was never registered.
	GetApp(ctx context.Context, platform models.Platform, storeID string) (models.AppIdentity, error)

	// ListApps returns every registered app, ordered by platform then store id.
	ListApps(ctx context.Context) ([]models.AppIdentity, error)

	// RecordSyncedLocales merges locales into the app's synced set and stamps
	// the sync time. Returns ErrAppNotFound for an unregistered app.
	RecordSyncedLocales(ctx context.Context, app models.AppIdentity, locales []models.Locale) error

	// SyncState returns the bookkeeping record of app.
	// Returns ErrAppNotFound for an unregistered app.
	SyncState(ctx context.Context, app models.AppIdentity) (AppSyncState, error)
}

// MetadataCache is the local store of the last known listing content, one
// document per app and locale.
type MetadataCache interface {
	// SaveDocument inserts or replaces the cached document of one locale.
	SaveDocument(ctx context.Context, app models.AppIdentity, locale models.Locale, doc models.LocaleDocument) error

	// GetDocument returns the cached document of one locale.
	// Returns ErrDocumentNotFound when the locale has never been cached.
	GetDocument(ctx context.Context, app models.AppIdentity, locale models.Locale) (models.LocaleDocument, error)

	// ListDocuments returns every cached locale of app. An app with no cached
	// documents yields an empty map.
	ListDocuments(ctx context.Context, app models.AppIdentity) (map[models.Locale]models.LocaleDocument, error)

	// DeleteDocuments drops every cached document of app.
	DeleteDocuments(ctx context.Context, app models.AppIdentity) error
}
