// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-aso-sync/models"
)

const documentsTable = "documents"

// buildUpsertDocumentQuery builds the INSERT-or-replace statement for one
// cached locale document. payload is the JSON-encoded document.
func buildUpsertDocumentQuery(app models.AppIdentity, locale models.Locale, payload []byte) (string, []any, error) {
	return sq.Insert(documentsTable).
		Columns("platform", "store_id", "locale", "document", "updated_at").
		Values(string(app.Platform), app.StoreID(), string(locale), payload, time.Now().UTC()).
		Suffix(`ON CONFLICT(platform, store_id, locale) DO UPDATE SET
			document   = excluded.document,
			updated_at = excluded.updated_at`).
		ToSql()
}

// buildGetDocumentQuery builds the lookup of one app/locale document.
func buildGetDocumentQuery(app models.AppIdentity, locale models.Locale) (string, []any, error) {
	return sq.Select("document").
		From(documentsTable).
		Where(sq.Eq{
			"platform": string(app.Platform),
			"store_id": app.StoreID(),
			"locale":   string(locale),
		}).
		ToSql()
}

// buildListDocumentsQuery builds the scan over every cached locale of app.
func buildListDocumentsQuery(app models.AppIdentity) (string, []any, error) {
	return sq.Select("locale", "document").
		From(documentsTable).
		Where(sq.Eq{
			"platform": string(app.Platform),
			"store_id": app.StoreID(),
		}).
		OrderBy("locale").
		ToSql()
}

// buildDeleteDocumentsQuery builds the delete of every cached locale of app.
func buildDeleteDocumentsQuery(app models.AppIdentity) (string, []any, error) {
	return sq.Delete(documentsTable).
		Where(sq.Eq{
			"platform": string(app.Platform),
			"store_id": app.StoreID(),
		}).
		ToSql()
}
