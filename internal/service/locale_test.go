package service

import (
	"testing"

	"github.com/MKhiriev/go-aso-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectDefaultLocale(t *testing.T) {
	tests := []struct {
		name      string
		locales   []models.Locale
		preferred models.Locale
		want      models.Locale
	}{
		{
			name:      "preferred present",
			locales:   []models.Locale{"de-DE", "en-US", "ko"},
			preferred: "ko",
			want:      "ko",
		},
		{
			name:      "preferred absent falls back to en-US",
			locales:   []models.Locale{"de-DE", "en-US", "ko"},
			preferred: "fr-FR",
			want:      "en-US",
		},
		{
			name:    "no preferred no fallback picks first",
			locales: []models.Locale{"ko", "de-DE"},
			want:    "de-DE",
		},
		{
			name: "empty set",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectDefaultLocale(tt.locales, tt.preferred))
		})
	}
}

func TestToMultilingual_CanonicalizesLocales(t *testing.T) {
	docs := map[models.Locale]models.LocaleDocument{
		"en-US": {Title: "Example"},
		"ko-KR": {Title: "예제"},
	}

	doc := ToMultilingual(docs, models.FallbackLocale)

	require.Len(t, doc.Locales, 2)
	assert.Equal(t, models.Locale("en-US"), doc.DefaultLocale)
	assert.Equal(t, "예제", doc.Locales["ko-KR"].Title)
}

func TestToMultilingual_MergesCollidingCodes(t *testing.T) {
	// "en-us" и "en-US" каноникализируются в одну локаль.
	docs := map[models.Locale]models.LocaleDocument{
		"en-US": {Title: "Example"},
		"en-us": {Title: "Duplicate", Description: "The long text."},
	}

	doc := ToMultilingual(docs, models.FallbackLocale)

	require.Len(t, doc.Locales, 1)
	merged := doc.Locales["en-US"]
	assert.Equal(t, "Example", merged.Title, "earlier canonical entry keeps its field")
	assert.Equal(t, "The long text.", merged.Description, "empty field is filled from the duplicate")
}

func TestToMultilingual_KeepsUnparseableCodeVerbatim(t *testing.T) {
	docs := map[models.Locale]models.LocaleDocument{
		"!!": {Title: "Odd"},
	}

	doc := ToMultilingual(docs, models.FallbackLocale)

	require.Len(t, doc.Locales, 1)
	assert.Equal(t, "Odd", doc.Locales["!!"].Title)
}
