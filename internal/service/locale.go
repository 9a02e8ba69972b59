package service

import (
	"sort"

	"github.com/MKhiriev/go-aso-sync/models"
)

// SelectDefaultLocale picks the default locale of a document: preferred when
// present, otherwise [models.FallbackLocale] when present, otherwise the
// lexicographically first locale. Returns "" for an empty set.
func SelectDefaultLocale(locales []models.Locale, preferred models.Locale) models.Locale {
	if len(locales) == 0 {
		return ""
	}

	sorted := make([]models.Locale, len(locales))
	copy(sorted, locales)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for _, loc := range sorted {
		if preferred != "" && loc == preferred {
			return loc
		}
	}
	for _, loc := range sorted {
		if loc == models.FallbackLocale {
			return loc
		}
	}
	return sorted[0]
}

// ToMultilingual assembles raw per-locale documents into the unified internal
// shape. Locale codes are canonicalized; when two raw codes collapse into the
// same canonical locale their documents are merged field by field, earlier
// (canonical-form) entries winning.
func ToMultilingual(docs map[models.Locale]models.LocaleDocument, preferred models.Locale) models.MultilingualDocument {
	normalized := make(map[models.Locale]models.LocaleDocument, len(docs))

	// Deterministic merge order regardless of map iteration.
	raw := make([]models.Locale, 0, len(docs))
	for loc := range docs {
		raw = append(raw, loc)
	}
	sort.Slice(raw, func(i, j int) bool { return raw[i] < raw[j] })

	for _, loc := range raw {
		canonical, err := models.NormalizeLocale(string(loc))
		if err != nil {
			canonical = loc
		}

		if existing, ok := normalized[canonical]; ok {
			normalized[canonical] = mergeDocuments(existing, docs[loc])
		} else {
			normalized[canonical] = docs[loc]
		}
	}

	locales := make([]models.Locale, 0, len(normalized))
	for loc := range normalized {
		locales = append(locales, loc)
	}

	return models.MultilingualDocument{
		Locales:       normalized,
		DefaultLocale: SelectDefaultLocale(locales, preferred),
	}
}

// mergeDocuments fills a's empty fields from b. a always wins where both
// carry content.
func mergeDocuments(a, b models.LocaleDocument) models.LocaleDocument {
	if a.Title == "" {
		a.Title = b.Title
	}
	if a.Subtitle == "" {
		a.Subtitle = b.Subtitle
	}
	if a.Description == "" {
		a.Description = b.Description
	}
	if a.Keywords == "" {
		a.Keywords = b.Keywords
	}
	if a.PromotionalText == "" {
		a.PromotionalText = b.PromotionalText
	}
	if a.ReleaseNotes == "" {
		a.ReleaseNotes = b.ReleaseNotes
	}
	if len(a.Screenshots) == 0 {
		a.Screenshots = b.Screenshots
	}
	if a.FeatureImage == "" {
		a.FeatureImage = b.FeatureImage
	}
	if a.ContactEmail == "" {
		a.ContactEmail = b.ContactEmail
	}
	if a.ContactPhone == "" {
		a.ContactPhone = b.ContactPhone
	}
	if a.ContactWebsite == "" {
		a.ContactWebsite = b.ContactWebsite
	}
	return a
}
