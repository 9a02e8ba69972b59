package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-registry path to the JSON registry of known apps
//	-cache SQLite DSN of the local metadata cache
//	-play-url Google Play publishing API base URL override
//	-play-token Google Play OAuth bearer token
//	-asc-url App Store Connect API base URL override
//	-asc-key-id App Store Connect API key id
//	-asc-issuer-id App Store Connect API issuer id
//	-asc-key path to the PEM-encoded EC private key
//	-asc-token-ttl lifetime of minted App Store tokens (e.g. "10m")
//	-request-timeout outbound request timeout (e.g. "30s", "1m")
//	-max-retries transport retry budget for rate-limit and server errors
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var registryPath string
	var cacheDSN string
	var playBaseURL string
	var playAccessToken string
	var ascBaseURL string
	var ascKeyID string
	var ascIssuerID string
	var ascPrivateKeyPath string
	var ascTokenTTL time.Duration
	var requestTimeout time.Duration
	var maxRetries int
	var jsonConfigPath string

	flag.StringVar(&registryPath, "registry", "", "JSON app registry path")
	flag.StringVar(&cacheDSN, "cache", "", "SQLite metadata cache DSN")
	flag.StringVar(&playBaseURL, "play-url", "", "Google Play API base URL")
	flag.StringVar(&playAccessToken, "play-token", "", "Google Play OAuth bearer token")
	flag.StringVar(&ascBaseURL, "asc-url", "", "App Store Connect API base URL")
	flag.StringVar(&ascKeyID, "asc-key-id", "", "App Store Connect API key id")
	flag.StringVar(&ascIssuerID, "asc-issuer-id", "", "App Store Connect API issuer id")
	flag.StringVar(&ascPrivateKeyPath, "asc-key", "", "App Store Connect EC private key path")
	flag.DurationVar(&ascTokenTTL, "asc-token-ttl", 0, "App Store token TTL (e.g. 10m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s, 1m)")
	flag.IntVar(&maxRetries, "max-retries", 0, "Transport retry budget")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		GooglePlay: GooglePlay{
			BaseURL:     playBaseURL,
			AccessToken: playAccessToken,
		},
		AppStore: AppStore{
			BaseURL:        ascBaseURL,
			KeyID:          ascKeyID,
			IssuerID:       ascIssuerID,
			PrivateKeyPath: ascPrivateKeyPath,
			TokenTTL:       ascTokenTTL,
		},
		Storage: Storage{
			RegistryPath: registryPath,
			CacheDSN:     cacheDSN,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
			MaxRetries:     maxRetries,
		},
		JSONFilePath: jsonConfigPath,
	}
}
