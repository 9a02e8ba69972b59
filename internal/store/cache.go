package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-aso-sync/internal/logger"
	"github.com/MKhiriev/go-aso-sync/models"
)

// metadataCache is the SQLite-backed implementation of [MetadataCache]. It
// stores each locale document as a JSON blob in the "documents" table keyed by
// platform, store id, and locale.
//
// Every public method obtains a context-scoped logger via [logger.FromContext]
// so that all database interactions are traced with structured fields.
type metadataCache struct {
	*DB
	logger *logger.Logger
}

// NewMetadataCache constructs a [MetadataCache] backed by the provided
// database connection and logger.
func NewMetadataCache(db *DB, logger *logger.Logger) MetadataCache {
	return &metadataCache{
		DB:     db,
		logger: logger,
	}
}

// SaveDocument inserts or replaces the cached document of one locale.
func (c *metadataCache) SaveDocument(ctx context.Context, app models.AppIdentity, locale models.Locale, doc models.LocaleDocument) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document for cache: %w", err)
	}

	query, args, err := buildUpsertDocumentQuery(app, locale, payload)
	if err != nil {
		log.Err(err).
			Str("func", "metadataCache.SaveDocument").
			Str("store_id", app.StoreID()).
			Str("locale", string(locale)).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metadataCache.SaveDocument").
			Str("store_id", app.StoreID()).
			Str("locale", string(locale)).
			Msg("failed to upsert cached document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetDocument returns the cached document of one locale.
func (c *metadataCache) GetDocument(ctx context.Context, app models.AppIdentity, locale models.Locale) (models.LocaleDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDocumentQuery(app, locale)
	if err != nil {
		log.Err(err).
			Str("func", "metadataCache.GetDocument").
			Str("store_id", app.StoreID()).
			Str("locale", string(locale)).
			Msg("failed to build select query")
		return models.LocaleDocument{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload []byte
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocaleDocument{}, fmt.Errorf("document %s/%s: %w", app.StoreID(), locale, ErrDocumentNotFound)
	}
	if err != nil {
		log.Err(err).
			Str("func", "metadataCache.GetDocument").
			Str("store_id", app.StoreID()).
			Str("locale", string(locale)).
			Msg("failed to query cached document")
		return models.LocaleDocument{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var doc models.LocaleDocument
	if err = json.Unmarshal(payload, &doc); err != nil {
		return models.LocaleDocument{}, fmt.Errorf("decode cached document: %w", err)
	}

	return doc, nil
}

// ListDocuments returns every cached locale of app.
func (c *metadataCache) ListDocuments(ctx context.Context, app models.AppIdentity) (map[models.Locale]models.LocaleDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(app)
	if err != nil {
		log.Err(err).
			Str("func", "metadataCache.ListDocuments").
			Str("store_id", app.StoreID()).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "metadataCache.ListDocuments").
			Str("store_id", app.StoreID()).
			Msg("failed to query cached documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make(map[models.Locale]models.LocaleDocument)
	for rows.Next() {
		var (
			locale  string
			payload []byte
		)
		if scanErr := rows.Scan(&locale, &payload); scanErr != nil {
			log.Err(scanErr).
				Str("func", "metadataCache.ListDocuments").
				Str("store_id", app.StoreID()).
				Msg("failed to scan cached document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		var doc models.LocaleDocument
		if err = json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("decode cached document %s: %w", locale, err)
		}
		out[models.Locale(locale)] = doc
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "metadataCache.ListDocuments").
			Str("store_id", app.StoreID()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return out, nil
}

// DeleteDocuments drops every cached document of app.
func (c *metadataCache) DeleteDocuments(ctx context.Context, app models.AppIdentity) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentsQuery(app)
	if err != nil {
		log.Err(err).
			Str("func", "metadataCache.DeleteDocuments").
			Str("store_id", app.StoreID()).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metadataCache.DeleteDocuments").
			Str("store_id", app.StoreID()).
			Msg("failed to delete cached documents")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
