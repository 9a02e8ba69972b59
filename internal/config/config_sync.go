package config

import (
	"fmt"
	"time"
)

// Defaults applied when no source sets a value.
const (
	DefaultRegistryPath   = "asosync-registry.json"
	DefaultRequestTimeout = 30 * time.Second
)

// SyncConfig is the validated configuration view consumed by the sync
// runtime, assembled from [StructuredConfig].
type SyncConfig struct {
	// GooglePlay contains Google Play transport credentials.
	GooglePlay GooglePlay
	// AppStore contains App Store Connect token-minting settings.
	AppStore AppStore
	// Storage contains local registry and cache settings.
	Storage Storage
	// Adapter contains shared outbound transport settings.
	Adapter Adapter
}

// GetSyncConfig builds and validates the sync-runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the sync runtime, and validates the resulting [SyncConfig].
func GetSyncConfig() (*SyncConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	syncCfg := &SyncConfig{
		GooglePlay: cfg.GooglePlay,
		AppStore:   cfg.AppStore,
		Storage:    cfg.Storage,
		Adapter:    cfg.Adapter,
	}
	syncCfg.applyDefaults()

	return syncCfg, syncCfg.validate()
}

func (cfg *SyncConfig) applyDefaults() {
	if cfg.Storage.RegistryPath == "" {
		cfg.Storage.RegistryPath = DefaultRegistryPath
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
}
