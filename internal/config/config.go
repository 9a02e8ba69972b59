// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-aso-sync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// GooglePlay holds credentials and endpoint settings for the Google Play
	// publishing API.
	GooglePlay GooglePlay `envPrefix:"GOOGLE_PLAY_"`

	// AppStore holds credentials and endpoint settings for the App Store
	// Connect API.
	AppStore AppStore `envPrefix:"APP_STORE_"`

	// Storage holds configuration for the local persistence backends: the
	// JSON app registry and the SQLite metadata cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings shared by the outbound transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// GooglePlay holds the settings needed to drive the Google Play edit-session
// API. Token minting is out of scope: the access token is consumed as an
// opaque bearer credential.
type GooglePlay struct {
	// BaseURL overrides the publishing API endpoint. Empty means the
	// production endpoint; tests point it at a local server.
	// Env: GOOGLE_PLAY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AccessToken is the OAuth bearer token attached to every request.
	// Env: GOOGLE_PLAY_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`
}

// AppStore holds the settings needed to mint App Store Connect API tokens
// and reach the API.
type AppStore struct {
	// BaseURL overrides the App Store Connect API endpoint.
	// Env: APP_STORE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// KeyID is the App Store Connect API key identifier ("kid" header).
	// Env: APP_STORE_KEY_ID
	KeyID string `env:"KEY_ID"`

	// IssuerID is the API issuer identifier ("iss" claim).
	// Env: APP_STORE_ISSUER_ID
	IssuerID string `env:"ISSUER_ID"`

	// PrivateKeyPath points at the PEM-encoded EC private key used to sign
	// API tokens with ES256.
	// Env: APP_STORE_PRIVATE_KEY_PATH
	PrivateKeyPath string `env:"PRIVATE_KEY_PATH"`

	// TokenTTL is the lifetime of each minted API token (e.g. "10m").
	// Env: APP_STORE_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// RegistryPath is the path to the JSON registry of known apps.
	// Env: STORAGE_REGISTRY_PATH
	RegistryPath string `env:"REGISTRY_PATH"`

	// CacheDSN is the SQLite connection string of the local metadata cache
	// (e.g. "file:asosync.db" or ":memory:").
	// Env: STORAGE_CACHE_DSN
	CacheDSN string `env:"CACHE_DSN"`
}

// Adapter holds settings shared by both outbound platform clients.
type Adapter struct {
	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRetries bounds the transport-level retry budget for rate-limit and
	// server errors. Zero disables retrying.
	// Env: ADAPTER_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
