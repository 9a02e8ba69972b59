package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-aso-sync/models"
	"github.com/google/uuid"
)

// jsonRegistry is the file-backed implementation of [Registry]. The whole
// registry is held in memory and flushed to disk after every mutation; the
// data set is a handful of apps, not a database.
type jsonRegistry struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	records map[string]*AppSyncState
}

type registryPersistedState struct {
	Records map[string]*AppSyncState `json:"records"`
}

// NewJSONRegistry loads (or initializes) the registry file at path. An empty
// path keeps the registry in memory only, which tests use.
func NewJSONRegistry(path string) (Registry, error) {
	r := &jsonRegistry{
		path:     path,
		inMemory: path == "" || path == ":memory:",
		records:  make(map[string]*AppSyncState),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func registryKey(platform models.Platform, storeID string) string {
	return string(platform) + "/" + storeID
}

// RegisterApp implements [Registry].
func (r *jsonRegistry) RegisterApp(_ context.Context, app models.AppIdentity) error {
	if !app.Platform.Valid() {
		return fmt.Errorf("register app: unknown platform %q", app.Platform)
	}
	if app.StoreID() == "" {
		return fmt.Errorf("register app: empty store id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey(app.Platform, app.StoreID())
	if existing, ok := r.records[key]; ok {
		existing.App.Name = app.Name
	} else {
		r.records[key] = &AppSyncState{
			RecordID: uuid.NewString(),
			App:      app,
		}
	}

	return r.persist()
}

// GetApp implements [Registry].
func (r *jsonRegistry) GetApp(_ context.Context, platform models.Platform, storeID string) (models.AppIdentity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[registryKey(platform, storeID)]
	if !ok {
		return models.AppIdentity{}, fmt.Errorf("app %s/%s: %w", platform, storeID, ErrAppNotFound)
	}
	return record.App, nil
}

// ListApps implements [Registry].
func (r *jsonRegistry) ListApps(_ context.Context) ([]models.AppIdentity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.records))
	for key := range r.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	apps := make([]models.AppIdentity, 0, len(keys))
	for _, key := range keys {
		apps = append(apps, r.records[key].App)
	}
	return apps, nil
}

// RecordSyncedLocales implements [Registry].
func (r *jsonRegistry) RecordSyncedLocales(_ context.Context, app models.AppIdentity, locales []models.Locale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[registryKey(app.Platform, app.StoreID())]
	if !ok {
		return fmt.Errorf("app %s/%s: %w", app.Platform, app.StoreID(), ErrAppNotFound)
	}

	seen := make(map[models.Locale]bool, len(record.SyncedLocales)+len(locales))
	for _, loc := range record.SyncedLocales {
		seen[loc] = true
	}
	for _, loc := range locales {
		seen[loc] = true
	}

	merged := make([]models.Locale, 0, len(seen))
	for loc := range seen {
		merged = append(merged, loc)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i] < merged[j] })

	record.SyncedLocales = merged
	record.LastSyncedAt = time.Now().UTC()

	return r.persist()
}

// SyncState implements [Registry].
func (r *jsonRegistry) SyncState(_ context.Context, app models.AppIdentity) (AppSyncState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[registryKey(app.Platform, app.StoreID())]
	if !ok {
		return AppSyncState{}, fmt.Errorf("app %s/%s: %w", app.Platform, app.StoreID(), ErrAppNotFound)
	}
	return *record, nil
}

func (r *jsonRegistry) load() error {
	if r.inMemory {
		return nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read registry file: %w", err)
	}

	var st registryPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode registry file: %w", err)
	}

	if st.Records == nil {
		st.Records = make(map[string]*AppSyncState)
	}
	r.records = st.Records

	return nil
}

func (r *jsonRegistry) persist() error {
	if r.inMemory {
		return nil
	}

	dir := filepath.Dir(r.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create registry dir: %w", err)
		}
	}

	state := registryPersistedState{Records: r.records}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}

	if err = os.WriteFile(r.path, payload, 0o600); err != nil {
		return fmt.Errorf("write registry file: %w", err)
	}

	return nil
}
