package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	GooglePlay struct {
		BaseURL     string `json:"base_url"`
		AccessToken string `json:"access_token"`
	} `json:"google_play,omitempty"`

	AppStore struct {
		BaseURL        string   `json:"base_url"`
		KeyID          string   `json:"key_id"`
		IssuerID       string   `json:"issuer_id"`
		PrivateKeyPath string   `json:"private_key_path"`
		TokenTTL       Duration `json:"token_ttl"`
	} `json:"app_store,omitempty"`

	Storage struct {
		RegistryPath string `json:"registry_path"`
		CacheDSN     string `json:"cache_dsn"`
	} `json:"storage,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		MaxRetries     int      `json:"max_retries"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		GooglePlay: GooglePlay{
			BaseURL:     jsonCfg.GooglePlay.BaseURL,
			AccessToken: jsonCfg.GooglePlay.AccessToken,
		},
		AppStore: AppStore{
			BaseURL:        jsonCfg.AppStore.BaseURL,
			KeyID:          jsonCfg.AppStore.KeyID,
			IssuerID:       jsonCfg.AppStore.IssuerID,
			PrivateKeyPath: jsonCfg.AppStore.PrivateKeyPath,
			TokenTTL:       time.Duration(jsonCfg.AppStore.TokenTTL),
		},
		Storage: Storage{
			RegistryPath: jsonCfg.Storage.RegistryPath,
			CacheDSN:     jsonCfg.Storage.CacheDSN,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			MaxRetries:     jsonCfg.Adapter.MaxRetries,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
