package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-aso-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryTestApp() models.AppIdentity {
	return models.AppIdentity{
		Platform:    models.PlatformGooglePlay,
		PackageName: "com.example.app",
		Name:        "Example",
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r, err := NewJSONRegistry("")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, r.RegisterApp(ctx, registryTestApp()))

	got, err := r.GetApp(ctx, models.PlatformGooglePlay, "com.example.app")
	require.NoError(t, err)
	assert.Equal(t, "Example", got.Name)
}

func TestRegistry_RegisterIsIdempotent(t *testing.T) {
	r, err := NewJSONRegistry("")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, r.RegisterApp(ctx, registryTestApp()))

	// повторная регистрация обновляет имя, но не создаёт дубликат
	renamed := registryTestApp()
	renamed.Name = "Example Renamed"
	require.NoError(t, r.RegisterApp(ctx, renamed))

	apps, err := r.ListApps(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Example Renamed", apps[0].Name)
}

func TestRegistry_RegisterRejectsInvalid(t *testing.T) {
	r, err := NewJSONRegistry("")
	require.NoError(t, err)

	ctx := context.Background()
	assert.Error(t, r.RegisterApp(ctx, models.AppIdentity{Platform: "windows-phone"}))
	assert.Error(t, r.RegisterApp(ctx, models.AppIdentity{Platform: models.PlatformAppStore}))
}

func TestRegistry_GetApp_NotFound(t *testing.T) {
	r, err := NewJSONRegistry("")
	require.NoError(t, err)

	_, err = r.GetApp(context.Background(), models.PlatformAppStore, "999")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAppNotFound)
}

func TestRegistry_ListApps_Ordered(t *testing.T) {
	r, err := NewJSONRegistry("")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, r.RegisterApp(ctx, models.AppIdentity{Platform: models.PlatformGooglePlay, PackageName: "com.zzz.app"}))
	require.NoError(t, r.RegisterApp(ctx, models.AppIdentity{Platform: models.PlatformAppStore, AppID: "1234567890"}))
	require.NoError(t, r.RegisterApp(ctx, models.AppIdentity{Platform: models.PlatformGooglePlay, PackageName: "com.aaa.app"}))

	apps, err := r.ListApps(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, "1234567890", apps[0].StoreID())
	assert.Equal(t, "com.aaa.app", apps[1].StoreID())
	assert.Equal(t, "com.zzz.app", apps[2].StoreID())
}

func TestRegistry_RecordSyncedLocales(t *testing.T) {
	r, err := NewJSONRegistry("")
	require.NoError(t, err)

	ctx := context.Background()
	app := registryTestApp()
	require.NoError(t, r.RegisterApp(ctx, app))

	require.NoError(t, r.RecordSyncedLocales(ctx, app, []models.Locale{"en-US", "de-DE"}))
	require.NoError(t, r.RecordSyncedLocales(ctx, app, []models.Locale{"ko", "en-US"}))

	state, err := r.SyncState(ctx, app)
	require.NoError(t, err)
	assert.Equal(t, []models.Locale{"de-DE", "en-US", "ko"}, state.SyncedLocales)
	assert.False(t, state.LastSyncedAt.IsZero())
	assert.NotEmpty(t, state.RecordID)
}

func TestRegistry_RecordSyncedLocales_NotRegistered(t *testing.T) {
	r, err := NewJSONRegistry("")
	require.NoError(t, err)

	err = r.RecordSyncedLocales(context.Background(), registryTestApp(), []models.Locale{"en-US"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAppNotFound)
}

func TestRegistry_PersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	ctx := context.Background()

	r1, err := NewJSONRegistry(path)
	require.NoError(t, err)
	require.NoError(t, r1.RegisterApp(ctx, registryTestApp()))
	require.NoError(t, r1.RecordSyncedLocales(ctx, registryTestApp(), []models.Locale{"en-US"}))

	r2, err := NewJSONRegistry(path)
	require.NoError(t, err)

	state, err := r2.SyncState(ctx, registryTestApp())
	require.NoError(t, err)
	assert.Equal(t, []models.Locale{"en-US"}, state.SyncedLocales)

	apps, err := r2.ListApps(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestRegistry_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := NewJSONRegistry(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode registry file")
}
