// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-aso-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VersionService defines the contract for inspecting and advancing the
// version lifecycle of one app on a version-addressable platform.
type VersionService interface {
	// ListVersions returns every version record of app, newest version string
	// first. Returns the adapter's ErrUnsupported (wrapped) on platforms
	// without version records.
	ListVersions(ctx context.Context, app models.AppIdentity) ([]models.VersionRecord, error)

	// LatestVersion returns the newest version record, or nil when the app
	// has no versions at all.
	LatestVersion(ctx context.Context, app models.AppIdentity) (*models.VersionRecord, error)

	// EnsureEditableVersion returns a version record whose metadata can be
	// mutated, creating one if necessary. The call is idempotent: an existing
	// editable version is returned as is; a locked newest version produces
	// exactly one new record with an incremented version string.
	EnsureEditableVersion(ctx context.Context, app models.AppIdentity) (models.VersionRecord, error)

	// EnsureVersion returns the record carrying versionString, creating it
	// only when no such record exists ("already exists" is never an error).
	// An empty versionString delegates to EnsureEditableVersion.
	EnsureVersion(ctx context.Context, app models.AppIdentity, versionString string) (models.VersionRecord, error)
}

// RecoveryService defines the contract for recovering from a version-state
// conflict: it procures a fresh editable version and reports which locales
// still need their content resubmitted. It never resubmits anything itself.
type RecoveryService interface {
	Recover(ctx context.Context, app models.AppIdentity, pending []models.Locale) (*models.NeedsNewVersion, error)
}

// SyncOrchestrator defines the top-level contract of the sync core: pushing
// and pulling multilingual documents and preparing version records.
type SyncOrchestrator interface {
	// PushDocument sends every locale of doc to the platform. On a
	// transactional platform the whole push is one atomic edit session; on a
	// version-addressable platform locales are pushed one by one and a
	// version-state conflict interrupts the push with a NeedsNewVersion
	// outcome instead of an error.
	PushDocument(ctx context.Context, app models.AppIdentity, doc models.MultilingualDocument) (models.PushOutcome, error)

	// ResumePush re-sends doc against an explicitly named version record,
	// typically the one reported by a prior NeedsNewVersion outcome.
	ResumePush(ctx context.Context, app models.AppIdentity, versionID string, doc models.MultilingualDocument) (models.PushOutcome, error)

	// PullDocument fetches the platform's current listings for every locale,
	// enriches them with screenshots where available, refreshes the local
	// cache, and returns the unified multilingual document.
	PullDocument(ctx context.Context, app models.AppIdentity) (models.MultilingualDocument, error)

	// EnsureVersion guarantees a version record exists and returns it: the
	// record named by versionString when given, otherwise an editable one.
	// Unsupported on transactional platforms.
	EnsureVersion(ctx context.Context, app models.AppIdentity, versionString string) (models.VersionRecord, error)
}
