// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-aso-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queriesTestApp() models.AppIdentity {
	return models.AppIdentity{
		Platform:    models.PlatformGooglePlay,
		PackageName: "com.example.app",
	}
}

func Test_buildUpsertDocumentQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildUpsertDocumentQuery(queriesTestApp(), "en-US", []byte(`{"title":"Example"}`))

	require.NoError(t, err)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into documents")
	require.Contains(t, q, "on conflict(platform, store_id, locale)")
	require.Contains(t, q, "excluded.document")

	// platform, store_id, locale, document, updated_at
	require.Len(t, args, 5)
	assert.Equal(t, "google-play", args[0])
	assert.Equal(t, "com.example.app", args[1])
	assert.Equal(t, "en-US", args[2])
}

func Test_buildGetDocumentQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildGetDocumentQuery(queriesTestApp(), "de-DE")

	require.NoError(t, err)
	q := strings.ToLower(query)

	require.Contains(t, q, "select document")
	require.Contains(t, q, "from documents")
	require.Contains(t, q, "where")
	require.Contains(t, q, "platform")
	require.Contains(t, q, "store_id")
	require.Contains(t, q, "locale")

	require.Len(t, args, 3)
	assert.Contains(t, args, "de-DE")
}

func Test_buildListDocumentsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListDocumentsQuery(queriesTestApp())

	require.NoError(t, err)
	q := strings.ToLower(query)

	require.Contains(t, q, "select locale, document")
	require.Contains(t, q, "from documents")
	require.Contains(t, q, "order by locale")

	// locale must not appear in the WHERE section: the scan covers all locales.
	whereIdx := strings.Index(q, "where")
	require.NotEqual(t, -1, whereIdx)
	assert.NotContains(t, q[whereIdx:strings.Index(q, "order by")], "locale =")

	require.Len(t, args, 2)
}

func Test_buildDeleteDocumentsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildDeleteDocumentsQuery(queriesTestApp())

	require.NoError(t, err)
	q := strings.ToLower(query)

	require.Contains(t, q, "delete from documents")
	require.Contains(t, q, "platform")
	require.Contains(t, q, "store_id")

	require.Len(t, args, 2)
	assert.Equal(t, "google-play", args[0])
	assert.Equal(t, "com.example.app", args[1])
}
