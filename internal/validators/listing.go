package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-aso-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the app display name.
	FieldTitle = "title"

	// FieldSubtitle targets the subtitle / short description line.
	FieldSubtitle = "subtitle"

	// FieldDescription targets the long listing text.
	FieldDescription = "description"

	// FieldKeywords targets the comma-separated search term list.
	FieldKeywords = "keywords"

	// FieldPromotionalText targets the freely editable promo paragraph.
	FieldPromotionalText = "promotional_text"

	// FieldReleaseNotes targets the localized "what's new" text.
	FieldReleaseNotes = "release_notes"
)

// listingLimits holds the per-field character limits of one platform.
// A zero limit means the field is unrestricted (or unused) on that platform.
type listingLimits struct {
	title           int
	subtitle        int
	description     int
	keywords        int
	promotionalText int
	releaseNotes    int
}

// Limits as published by the stores. Counted in characters, not bytes.
var platformLimits = map[models.Platform]listingLimits{
	models.PlatformGooglePlay: {
		title:       30,
		subtitle:    80,
		description: 4000,
	},
	models.PlatformAppStore: {
		title:           30,
		subtitle:        30,
		description:     4000,
		keywords:        100,
		promotionalText: 170,
		releaseNotes:    4000,
	},
}

// ListingValidator implements the Validator interface for locale documents,
// enforcing the listing field limits of one platform. It accepts
// models.LocaleDocument by value or pointer and allows optional field-level
// scoping via variadic field name arguments.
type ListingValidator struct {
	platform models.Platform
	limits   listingLimits
}

// NewListingValidator constructs a Validator enforcing the listing limits of
// the given platform. An unknown platform validates nothing.
func NewListingValidator(platform models.Platform) Validator {
	return &ListingValidator{
		platform: platform,
		limits:   platformLimits[platform],
	}
}

// Validate dispatches validation to the document check. Only
// models.LocaleDocument values (or pointers) are accepted.
func (v *ListingValidator) Validate(_ context.Context, input any, fields ...string) error {
	switch doc := input.(type) {
	case models.LocaleDocument:
		return v.validateDocument(doc, fields...)
	case *models.LocaleDocument:
		return v.validateDocument(*doc, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
	}
}

func (v *ListingValidator) validateDocument(doc models.LocaleDocument, fields ...string) error {
	checks := []struct {
		field string
		value string
		limit int
	}{
		{FieldTitle, doc.Title, v.limits.title},
		{FieldSubtitle, doc.Subtitle, v.limits.subtitle},
		{FieldDescription, doc.Description, v.limits.description},
		{FieldKeywords, doc.Keywords, v.limits.keywords},
		{FieldPromotionalText, doc.PromotionalText, v.limits.promotionalText},
		{FieldReleaseNotes, doc.ReleaseNotes, v.limits.releaseNotes},
	}

	for _, check := range checks {
		if len(fields) > 0 && !containsField(fields, check.field) {
			continue
		}
		if check.limit <= 0 || check.value == "" {
			continue
		}
		if length := utf8.RuneCountInString(check.value); length > check.limit {
			return fmt.Errorf("%w: %s is %d characters, %s allows %d",
				ErrFieldTooLong, check.field, length, v.platform, check.limit)
		}
	}

	return nil
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
