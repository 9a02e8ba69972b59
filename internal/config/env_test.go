package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Success(t *testing.T) {
	t.Setenv("GOOGLE_PLAY_ACCESS_TOKEN", "ya29.token")
	t.Setenv("APP_STORE_KEY_ID", "ABC123DEFG")
	t.Setenv("APP_STORE_ISSUER_ID", "69a6de70-03db-47e3-e053-5b8c7c11a4d1")
	t.Setenv("APP_STORE_TOKEN_TTL", "10m")
	t.Setenv("STORAGE_REGISTRY_PATH", "/var/lib/asosync/apps.json")
	t.Setenv("STORAGE_CACHE_DSN", "file:asosync.db")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "30s")
	t.Setenv("ADAPTER_MAX_RETRIES", "3")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "ya29.token", cfg.GooglePlay.AccessToken)
	assert.Equal(t, "ABC123DEFG", cfg.AppStore.KeyID)
	assert.Equal(t, "69a6de70-03db-47e3-e053-5b8c7c11a4d1", cfg.AppStore.IssuerID)
	assert.Equal(t, 10*time.Minute, cfg.AppStore.TokenTTL)
	assert.Equal(t, "/var/lib/asosync/apps.json", cfg.Storage.RegistryPath)
	assert.Equal(t, "file:asosync.db", cfg.Storage.CacheDSN)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3, cfg.Adapter.MaxRetries)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.GooglePlay.AccessToken)
	assert.Empty(t, cfg.AppStore.KeyID)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}
