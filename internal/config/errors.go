package config

import "errors"

// Validation errors returned by [SyncConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid outbound transport settings
	// (for example, a missing request timeout or a negative retry budget).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty registry path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
