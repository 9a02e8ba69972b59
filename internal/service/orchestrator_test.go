// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-aso-sync/internal/adapter"
	"github.com/MKhiriev/go-aso-sync/internal/logger"
	"github.com/MKhiriev/go-aso-sync/internal/mock"
	"github.com/MKhiriev/go-aso-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// orchestratorMocks объединяет зависимости оркестратора для тестов.
type orchestratorMocks struct {
	versions *mock.MockVersionService
	recovery *mock.MockRecoveryService
	registry *mock.MockRegistry
	cache    *mock.MockMetadataCache
}

func newOrchestratorMocks(ctrl *gomock.Controller) orchestratorMocks {
	return orchestratorMocks{
		versions: mock.NewMockVersionService(ctrl),
		recovery: mock.NewMockRecoveryService(ctrl),
		registry: mock.NewMockRegistry(ctrl),
		cache:    mock.NewMockMetadataCache(ctrl),
	}
}

func (m orchestratorMocks) orchestrator(client adapter.StoreClient) SyncOrchestrator {
	return NewSyncOrchestrator(client, m.versions, m.recovery, m.registry, m.cache, logger.Nop())
}

func twoLocaleDoc() models.MultilingualDocument {
	return models.MultilingualDocument{
		DefaultLocale: "en-US",
		Locales: map[models.Locale]models.LocaleDocument{
			"en-US": {Title: "Example", Description: "The long text."},
			"de-DE": {Title: "Beispiel", Description: "Der lange Text."},
		},
	}
}

// ── Transactional push ───────────────────────────────────────────────────────

func TestPushDocument_Transactional_AllLocalesOneSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSessionClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testPlayApp()
	doc := twoLocaleDoc()
	session := openSession(app)

	client.EXPECT().Platform().Return(models.PlatformGooglePlay).AnyTimes()

	gomock.InOrder(
		client.EXPECT().BeginSession(gomock.Any(), app).Return(session, nil),
		client.EXPECT().UpdateListing(gomock.Any(), session, models.Locale("en-US"), doc.Locales["en-US"]).Return(nil),
		client.EXPECT().UpdateListing(gomock.Any(), session, models.Locale("de-DE"), doc.Locales["de-DE"]).Return(nil),
		client.EXPECT().CommitSession(gomock.Any(), session).Return(nil),
	)
	m.cache.EXPECT().SaveDocument(gomock.Any(), app, models.Locale("en-US"), doc.Locales["en-US"]).Return(nil)
	m.cache.EXPECT().SaveDocument(gomock.Any(), app, models.Locale("de-DE"), doc.Locales["de-DE"]).Return(nil)
	m.registry.EXPECT().RecordSyncedLocales(gomock.Any(), app, []models.Locale{"en-US", "de-DE"}).Return(nil)

	outcome, err := m.orchestrator(client).PushDocument(context.Background(), app, doc)

	require.NoError(t, err)
	require.True(t, outcome.Completed())
	assert.Equal(t, []models.Locale{"en-US", "de-DE"}, outcome.Result.UpdatedLocales)
	assert.Empty(t, outcome.Result.FailedLocales)
	assert.Equal(t, models.SessionCommitted, session.State)
}

func TestPushDocument_Transactional_StagingErrorLeavesNoPartialResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSessionClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testPlayApp()
	doc := twoLocaleDoc()
	session := openSession(app)
	stageErr := errors.New("400")

	client.EXPECT().Platform().Return(models.PlatformGooglePlay).AnyTimes()

	// Вторая локаль падает: сессия прерывается, commit не вызывается.
	gomock.InOrder(
		client.EXPECT().BeginSession(gomock.Any(), app).Return(session, nil),
		client.EXPECT().UpdateListing(gomock.Any(), session, models.Locale("en-US"), doc.Locales["en-US"]).Return(nil),
		client.EXPECT().UpdateListing(gomock.Any(), session, models.Locale("de-DE"), doc.Locales["de-DE"]).Return(stageErr),
		client.EXPECT().AbortSession(gomock.Any(), session).Return(nil),
	)

	outcome, err := m.orchestrator(client).PushDocument(context.Background(), app, doc)

	require.ErrorIs(t, err, stageErr)
	assert.False(t, outcome.Completed(), "a failed atomic push must not report per-locale results")
	assert.Equal(t, models.SessionAborted, session.State)
}

func TestPushDocument_Transactional_CommitErrorIsTransactionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSessionClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testPlayApp()
	doc := twoLocaleDoc()
	session := openSession(app)

	client.EXPECT().Platform().Return(models.PlatformGooglePlay).AnyTimes()
	client.EXPECT().BeginSession(gomock.Any(), app).Return(session, nil)
	client.EXPECT().UpdateListing(gomock.Any(), session, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	client.EXPECT().CommitSession(gomock.Any(), session).Return(errors.New("edit expired"))
	client.EXPECT().AbortSession(gomock.Any(), session).Return(nil)

	_, err := m.orchestrator(client).PushDocument(context.Background(), app, doc)

	var txErr *TransactionError
	require.ErrorAs(t, err, &txErr)
}

func TestPushDocument_EmptyDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSessionClient(ctrl)
	m := newOrchestratorMocks(ctrl)

	client.EXPECT().Platform().Return(models.PlatformGooglePlay).AnyTimes()

	doc := models.MultilingualDocument{
		DefaultLocale: "en-US",
		Locales: map[models.Locale]models.LocaleDocument{
			"en-US": {},
		},
	}

	_, err := m.orchestrator(client).PushDocument(context.Background(), testPlayApp(), doc)

	require.ErrorIs(t, err, ErrEmptyDocument)
}

func TestPushDocument_ValidationFailureStaysLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSessionClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testPlayApp()

	client.EXPECT().Platform().Return(models.PlatformGooglePlay).AnyTimes()

	// Превышение лимита short description отсекается локально:
	// ни одного обращения к платформе.
	doc := models.MultilingualDocument{
		DefaultLocale: "en-US",
		Locales: map[models.Locale]models.LocaleDocument{
			"en-US": {Subtitle: strings.Repeat("a", 81)},
		},
	}

	outcome, err := m.orchestrator(client).PushDocument(context.Background(), app, doc)

	require.NoError(t, err)
	require.True(t, outcome.Completed())
	assert.Empty(t, outcome.Result.UpdatedLocales)
	assert.Contains(t, outcome.Result.FailedLocales, models.Locale("en-US"))
}

// ── Versioned push ───────────────────────────────────────────────────────────

func TestPushDocument_Versioned_FieldGroupsPerLocale(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockVersionedClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testAppStoreApp()
	doc := twoLocaleDoc()
	latest := models.VersionRecord{ID: "v7", VersionString: "1.4.0", State: models.VersionStatePrepareForSubmission}

	client.EXPECT().Platform().Return(models.PlatformAppStore).AnyTimes()
	m.versions.EXPECT().LatestVersion(gomock.Any(), app).Return(&latest, nil)

	client.EXPECT().UpdateAppFields(gomock.Any(), app, models.Locale("en-US"), doc.Locales["en-US"]).Return(nil)
	client.EXPECT().UpdateVersionFields(gomock.Any(), app, "v7", models.Locale("en-US"), doc.Locales["en-US"]).Return(nil)
	client.EXPECT().UpdateAppFields(gomock.Any(), app, models.Locale("de-DE"), doc.Locales["de-DE"]).Return(nil)
	client.EXPECT().UpdateVersionFields(gomock.Any(), app, "v7", models.Locale("de-DE"), doc.Locales["de-DE"]).Return(nil)

	m.cache.EXPECT().SaveDocument(gomock.Any(), app, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.registry.EXPECT().RecordSyncedLocales(gomock.Any(), app, []models.Locale{"en-US", "de-DE"}).Return(nil)

	outcome, err := m.orchestrator(client).PushDocument(context.Background(), app, doc)

	require.NoError(t, err)
	require.True(t, outcome.Completed())
	assert.Equal(t, []models.Locale{"en-US", "de-DE"}, outcome.Result.UpdatedLocales)
}

func TestPushDocument_Versioned_AppFieldsOnlySkipsVersionLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockVersionedClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testAppStoreApp()

	client.EXPECT().Platform().Return(models.PlatformAppStore).AnyTimes()

	// Только app-info поля: версия не резолвится вовсе.
	doc := models.MultilingualDocument{
		DefaultLocale: "en-US",
		Locales: map[models.Locale]models.LocaleDocument{
			"en-US": {Title: "Example", Subtitle: "Short"},
		},
	}

	client.EXPECT().UpdateAppFields(gomock.Any(), app, models.Locale("en-US"), doc.Locales["en-US"]).Return(nil)
	m.cache.EXPECT().SaveDocument(gomock.Any(), app, gomock.Any(), gomock.Any()).Return(nil)
	m.registry.EXPECT().RecordSyncedLocales(gomock.Any(), app, []models.Locale{"en-US"}).Return(nil)

	outcome, err := m.orchestrator(client).PushDocument(context.Background(), app, doc)

	require.NoError(t, err)
	assert.Equal(t, []models.Locale{"en-US"}, outcome.Result.UpdatedLocales)
}

func TestPushDocument_Versioned_StateConflictTriggersRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockVersionedClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testAppStoreApp()
	doc := twoLocaleDoc()
	latest := models.VersionRecord{ID: "v7", VersionString: "1.4.0", State: models.VersionStateReadyForSale}
	fresh := models.VersionRecord{ID: "v8", VersionString: "1.4.1", State: models.VersionStatePrepareForSubmission}

	client.EXPECT().Platform().Return(models.PlatformAppStore).AnyTimes()
	m.versions.EXPECT().LatestVersion(gomock.Any(), app).Return(&latest, nil)

	// Конфликт на первой локали: в pending попадают все локали с неё и дальше.
	client.EXPECT().UpdateAppFields(gomock.Any(), app, models.Locale("en-US"), doc.Locales["en-US"]).Return(nil)
	client.EXPECT().UpdateVersionFields(gomock.Any(), app, "v7", models.Locale("en-US"), doc.Locales["en-US"]).
		Return(adapter.ErrVersionStateConflict)
	m.recovery.EXPECT().Recover(gomock.Any(), app, []models.Locale{"en-US", "de-DE"}).
		Return(&models.NeedsNewVersion{Version: fresh, PendingLocales: []models.Locale{"en-US", "de-DE"}}, nil)

	outcome, err := m.orchestrator(client).PushDocument(context.Background(), app, doc)

	require.NoError(t, err)
	assert.False(t, outcome.Completed())
	require.NotNil(t, outcome.NeedsNewVersion)
	assert.Equal(t, "v8", outcome.NeedsNewVersion.Version.ID)
	assert.Equal(t, []models.Locale{"en-US", "de-DE"}, outcome.NeedsNewVersion.PendingLocales)
}

func TestPushDocument_Versioned_PartialFailureRecordsFieldGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockVersionedClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testAppStoreApp()
	doc := twoLocaleDoc()
	latest := models.VersionRecord{ID: "v7", VersionString: "1.4.0", State: models.VersionStatePrepareForSubmission}
	appErr := errors.New("400")

	client.EXPECT().Platform().Return(models.PlatformAppStore).AnyTimes()
	m.versions.EXPECT().LatestVersion(gomock.Any(), app).Return(&latest, nil)

	client.EXPECT().UpdateAppFields(gomock.Any(), app, models.Locale("en-US"), doc.Locales["en-US"]).Return(appErr)
	client.EXPECT().UpdateVersionFields(gomock.Any(), app, "v7", models.Locale("en-US"), doc.Locales["en-US"]).Return(nil)
	client.EXPECT().UpdateAppFields(gomock.Any(), app, models.Locale("de-DE"), doc.Locales["de-DE"]).Return(nil)
	client.EXPECT().UpdateVersionFields(gomock.Any(), app, "v7", models.Locale("de-DE"), doc.Locales["de-DE"]).Return(nil)

	m.cache.EXPECT().SaveDocument(gomock.Any(), app, models.Locale("de-DE"), doc.Locales["de-DE"]).Return(nil)
	m.registry.EXPECT().RecordSyncedLocales(gomock.Any(), app, []models.Locale{"de-DE"}).Return(nil)

	outcome, err := m.orchestrator(client).PushDocument(context.Background(), app, doc)

	require.NoError(t, err)
	require.True(t, outcome.Completed())
	assert.Equal(t, []models.Locale{"de-DE"}, outcome.Result.UpdatedLocales)

	var fieldErr *models.FieldError
	require.ErrorAs(t, outcome.Result.FailedLocales["en-US"], &fieldErr)
	assert.Equal(t, []string{"app-info"}, fieldErr.Fields)
	assert.ErrorIs(t, fieldErr, appErr)
}

func TestPushDocument_Versioned_InvalidLocaleFailsOthersProceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockVersionedClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testAppStoreApp()

	client.EXPECT().Platform().Return(models.PlatformAppStore).AnyTimes()

	doc := models.MultilingualDocument{
		DefaultLocale: "en-US",
		Locales: map[models.Locale]models.LocaleDocument{
			"en-US": {Title: "Example", Subtitle: "Short"},
			"ko":    {Subtitle: strings.Repeat("한", 31)}, // App Store limit is 30
		},
	}

	client.EXPECT().UpdateAppFields(gomock.Any(), app, models.Locale("en-US"), doc.Locales["en-US"]).Return(nil)
	m.cache.EXPECT().SaveDocument(gomock.Any(), app, models.Locale("en-US"), doc.Locales["en-US"]).Return(nil)
	m.registry.EXPECT().RecordSyncedLocales(gomock.Any(), app, []models.Locale{"en-US"}).Return(nil)

	outcome, err := m.orchestrator(client).PushDocument(context.Background(), app, doc)

	require.NoError(t, err)
	require.True(t, outcome.Completed())
	assert.Equal(t, []models.Locale{"en-US"}, outcome.Result.UpdatedLocales)
	assert.Contains(t, outcome.Result.FailedLocales, models.Locale("ko"))
}

// ── ResumePush ───────────────────────────────────────────────────────────────

func TestResumePush_Versioned_UsesExplicitVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockVersionedClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testAppStoreApp()
	doc := twoLocaleDoc()

	client.EXPECT().Platform().Return(models.PlatformAppStore).AnyTimes()

	// Версия передана явно: LatestVersion не вызывается.
	client.EXPECT().UpdateAppFields(gomock.Any(), app, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	client.EXPECT().UpdateVersionFields(gomock.Any(), app, "v8", models.Locale("en-US"), doc.Locales["en-US"]).Return(nil)
	client.EXPECT().UpdateVersionFields(gomock.Any(), app, "v8", models.Locale("de-DE"), doc.Locales["de-DE"]).Return(nil)
	m.cache.EXPECT().SaveDocument(gomock.Any(), app, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.registry.EXPECT().RecordSyncedLocales(gomock.Any(), app, gomock.Any()).Return(nil)

	outcome, err := m.orchestrator(client).ResumePush(context.Background(), app, "v8", doc)

	require.NoError(t, err)
	assert.True(t, outcome.Completed())
}

func TestResumePush_Transactional_IsFreshAtomicPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSessionClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testPlayApp()
	doc := twoLocaleDoc()
	session := openSession(app)

	client.EXPECT().Platform().Return(models.PlatformGooglePlay).AnyTimes()
	client.EXPECT().BeginSession(gomock.Any(), app).Return(session, nil)
	client.EXPECT().UpdateListing(gomock.Any(), session, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	client.EXPECT().CommitSession(gomock.Any(), session).Return(nil)
	m.cache.EXPECT().SaveDocument(gomock.Any(), app, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.registry.EXPECT().RecordSyncedLocales(gomock.Any(), app, gomock.Any()).Return(nil)

	outcome, err := m.orchestrator(client).ResumePush(context.Background(), app, "ignored", doc)

	require.NoError(t, err)
	assert.True(t, outcome.Completed())
}

// ── PullDocument ─────────────────────────────────────────────────────────────

func TestPullDocument_MergesScreenshotsAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSessionClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testPlayApp()

	client.EXPECT().Platform().Return(models.PlatformGooglePlay).AnyTimes()
	client.EXPECT().ListListings(gomock.Any(), app).Return(map[models.Locale]models.LocaleDocument{
		"en-US": {Title: "Example"},
		"de-DE": {Title: "Beispiel"},
	}, nil)

	shots := map[models.DeviceClass][]string{
		models.DevicePhone: {"https://img.example/1.png"},
	}
	client.EXPECT().FetchScreenshots(gomock.Any(), app, models.Locale("en-US")).Return(shots, nil)
	// Провал скриншотов одной локали не роняет pull целиком.
	client.EXPECT().FetchScreenshots(gomock.Any(), app, models.Locale("de-DE")).Return(nil, errors.New("503"))

	m.cache.EXPECT().SaveDocument(gomock.Any(), app, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	doc, err := m.orchestrator(client).PullDocument(context.Background(), app)

	require.NoError(t, err)
	assert.Equal(t, models.Locale("en-US"), doc.DefaultLocale)
	require.Len(t, doc.Locales, 2)
	assert.Equal(t, shots, doc.Locales["en-US"].Screenshots)
	assert.Empty(t, doc.Locales["de-DE"].Screenshots)
}

func TestPullDocument_ListingsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSessionClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testPlayApp()
	listErr := errors.New("401")

	client.EXPECT().Platform().Return(models.PlatformGooglePlay).AnyTimes()
	client.EXPECT().ListListings(gomock.Any(), app).Return(nil, listErr)

	_, err := m.orchestrator(client).PullDocument(context.Background(), app)

	require.ErrorIs(t, err, listErr)
}

// ── EnsureVersion ────────────────────────────────────────────────────────────

func TestEnsureVersion_VersionedDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockVersionedClient(ctrl)
	m := newOrchestratorMocks(ctrl)
	app := testAppStoreApp()
	record := models.VersionRecord{ID: "v9", VersionString: "2.0.0", State: models.VersionStatePrepareForSubmission}

	client.EXPECT().Platform().Return(models.PlatformAppStore).AnyTimes()
	m.versions.EXPECT().EnsureVersion(gomock.Any(), app, "").Return(record, nil)

	got, err := m.orchestrator(client).EnsureVersion(context.Background(), app, "")

	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestEnsureVersion_UnsupportedOnTransactionalPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSessionClient(ctrl)
	m := newOrchestratorMocks(ctrl)

	client.EXPECT().Platform().Return(models.PlatformGooglePlay).AnyTimes()

	_, err := m.orchestrator(client).EnsureVersion(context.Background(), testPlayApp(), "")

	require.ErrorIs(t, err, ErrUnsupportedPlatform)
}
