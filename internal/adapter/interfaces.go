// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the two store backends.
//
// The primary abstraction is [StoreClient], the capability surface shared by
// both platforms. Each platform extends it with the mutation style it
// actually supports: [SessionClient] for Google Play's transactional edit
// sessions, [VersionedClient] for the App Store's state-gated field updates.
// The service layer selects the extension by type assertion on the tagged
// platform, never by runtime feature probing.
//
// Error values defined in errors.go are mapped from HTTP responses by the
// per-platform mappers in errors_mapper.go so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g.
// [ErrVersionStateConflict] for a 409 carrying a state-error code).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-aso-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthProvider supplies a valid bearer token for one request. The sync core
// never caches tokens itself: implementations are asked fresh on every call
// and may mint or reuse credentials internally.
type AuthProvider interface {
	Token(ctx context.Context, app models.AppIdentity) (string, error)
}

// StoreClient is the capability surface shared by both store backends.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type StoreClient interface {
	// Platform returns the tag identifying which backend this client drives.
	Platform() models.Platform

	// FetchLocale retrieves the listing metadata of a single locale.
	// Returns ErrNotFound (wrapped) if the locale has no listing.
	FetchLocale(ctx context.Context, app models.AppIdentity, locale models.Locale) (models.LocaleDocument, error)

	// ListListings retrieves the listing metadata of every locale the app
	// has, without screenshot enrichment.
	ListListings(ctx context.Context, app models.AppIdentity) (map[models.Locale]models.LocaleDocument, error)

	// FetchScreenshots retrieves the screenshot URL lists of one locale,
	// keyed by device class. Best-effort enrichment data for pulls.
	FetchScreenshots(ctx context.Context, app models.AppIdentity, locale models.Locale) (map[models.DeviceClass][]string, error)

	// ListVersions retrieves all version records of the app in the order the
	// platform returned them. Returns ErrUnsupported (wrapped) on platforms
	// that do not expose version resources to metadata sync.
	ListVersions(ctx context.Context, app models.AppIdentity) ([]models.VersionRecord, error)

	// CreateVersion creates a brand-new version record with the given
	// version string. Returns ErrUnsupported (wrapped) on platforms that do
	// not expose version resources to metadata sync.
	CreateVersion(ctx context.Context, app models.AppIdentity, versionString string) (models.VersionRecord, error)
}

// SessionClient is implemented by platforms whose mutations are transactional:
// they only become visible when the surrounding edit session is committed, and
// an uncommitted session is silently discarded.
type SessionClient interface {
	StoreClient

	// BeginSession opens a new edit session against the app and returns its
	// handle in the Open state.
	BeginSession(ctx context.Context, app models.AppIdentity) (*models.EditSession, error)

	// CommitSession atomically publishes every mutation issued inside the
	// session. Rapid successive commits corrupt backend state, so callers
	// commit exactly once per push.
	CommitSession(ctx context.Context, session *models.EditSession) error

	// AbortSession deletes the session, discarding all of its mutations.
	AbortSession(ctx context.Context, session *models.EditSession) error

	// UpdateListing stages the locale's listing fields inside the session.
	UpdateListing(ctx context.Context, session *models.EditSession, locale models.Locale, doc models.LocaleDocument) error
}

// VersionedClient is implemented by platforms without transactions, where
// individual field updates are refused with ErrVersionStateConflict while the
// targeted version record is in a locked lifecycle state.
type VersionedClient interface {
	StoreClient

	// UpdateAppFields mutates the version-independent field group of one
	// locale (title, subtitle, keywords, contact data).
	UpdateAppFields(ctx context.Context, app models.AppIdentity, locale models.Locale, doc models.LocaleDocument) error

	// UpdateVersionFields mutates the field group bound to the version
	// record identified by versionID (description, promotional text, release
	// notes). Returns ErrVersionStateConflict (wrapped) while the version is
	// locked.
	UpdateVersionFields(ctx context.Context, app models.AppIdentity, versionID string, locale models.Locale, doc models.LocaleDocument) error
}
