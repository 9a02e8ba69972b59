package adapter

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-aso-sync/internal/config"
	"github.com/MKhiriev/go-aso-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// appStoreTokenTTLCap is the maximum token lifetime App Store Connect accepts.
const appStoreTokenTTLCap = 20 * time.Minute

const defaultAppStoreTokenTTL = 10 * time.Minute

// staticTokenProvider hands out a fixed bearer token. Used for Google Play,
// where token minting is an external concern and the tool consumes an
// already-minted OAuth access token.
type staticTokenProvider struct {
	token string
}

// NewStaticTokenProvider wraps an externally minted bearer token as an
// [AuthProvider]. Returns ErrConfigurationMissing (wrapped) for an empty token.
func NewStaticTokenProvider(token string) (AuthProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("bearer token: %w", ErrConfigurationMissing)
	}
	return &staticTokenProvider{token: token}, nil
}

func (p *staticTokenProvider) Token(_ context.Context, _ models.AppIdentity) (string, error) {
	return p.token, nil
}

// appStoreTokenProvider mints a fresh ES256-signed App Store Connect API
// token on every call. Nothing is cached: the sync core always asks fresh and
// the mint is cheap relative to the API round-trip.
type appStoreTokenProvider struct {
	keyID    string
	issuerID string
	key      *ecdsa.PrivateKey
	ttl      time.Duration
}

// NewAppStoreTokenProvider loads the PEM-encoded EC private key named by cfg
// and returns a provider minting short-lived API tokens.
//
// Returns ErrConfigurationMissing (wrapped) if the key id, issuer id, or key
// path is absent, or an error if the key cannot be read or parsed.
func NewAppStoreTokenProvider(cfg config.AppStore) (AuthProvider, error) {
	if cfg.KeyID == "" || cfg.IssuerID == "" || cfg.PrivateKeyPath == "" {
		return nil, fmt.Errorf("app store key id, issuer id and private key path: %w", ErrConfigurationMissing)
	}

	pemBytes, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read app store private key: %w", err)
	}

	key, err := jwt.ParseECPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parse app store private key: %w", err)
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultAppStoreTokenTTL
	}
	if ttl > appStoreTokenTTLCap {
		ttl = appStoreTokenTTLCap
	}

	return &appStoreTokenProvider{
		keyID:    cfg.KeyID,
		issuerID: cfg.IssuerID,
		key:      key,
		ttl:      ttl,
	}, nil
}

func (p *appStoreTokenProvider) Token(_ context.Context, _ models.AppIdentity) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"iss": p.issuerID,
		"iat": now.Unix(),
		"exp": now.Add(p.ttl).Unix(),
		"aud": "appstoreconnect-v1",
	})
	token.Header["kid"] = p.keyID

	signed, err := token.SignedString(p.key)
	if err != nil {
		return "", fmt.Errorf("sign app store token: %w", err)
	}

	return signed, nil
}
