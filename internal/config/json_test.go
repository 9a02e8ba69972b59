package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings like "30s" or raw nanosecond numbers.
	jsonBody := `{
		"google_play": {
			"base_url": "https://androidpublisher.googleapis.com/androidpublisher/v3",
			"access_token": "ya29.secret"
		},
		"app_store": {
			"key_id": "ABC123DEFG",
			"issuer_id": "69a6de70-03db-47e3-e053-5b8c7c11a4d1",
			"private_key_path": "/etc/asosync/AuthKey.p8",
			"token_ttl": "10m"
		},
		"storage": {
			"registry_path": "/var/lib/asosync/apps.json",
			"cache_dsn": "file:asosync.db"
		},
		"adapter": {
			"request_timeout": "30s",
			"max_retries": 3
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://androidpublisher.googleapis.com/androidpublisher/v3", cfg.GooglePlay.BaseURL)
	assert.Equal(t, "ya29.secret", cfg.GooglePlay.AccessToken)

	assert.Equal(t, "ABC123DEFG", cfg.AppStore.KeyID)
	assert.Equal(t, "69a6de70-03db-47e3-e053-5b8c7c11a4d1", cfg.AppStore.IssuerID)
	assert.Equal(t, "/etc/asosync/AuthKey.p8", cfg.AppStore.PrivateKeyPath)
	assert.Equal(t, 10*time.Minute, cfg.AppStore.TokenTTL)

	assert.Equal(t, "/var/lib/asosync/apps.json", cfg.Storage.RegistryPath)
	assert.Equal(t, "file:asosync.db", cfg.Storage.CacheDSN)

	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3, cfg.Adapter.MaxRetries)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON_Number(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte("1000000000")))
	assert.Equal(t, time.Second, time.Duration(d))
}
