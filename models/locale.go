package models

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// Locale is a BCP 47 language/region code identifying one translated variant
// of a store listing, e.g. "en-US" or "ko".
type Locale string

// FallbackLocale is the canonical default used whenever a document does not
// name its own default locale and no preferred locale is available.
const FallbackLocale Locale = "en-US"

// DeviceClass keys a screenshot list to the device family it was captured on.
type DeviceClass string

const (
	DevicePhone    DeviceClass = "phone"
	DeviceTablet7  DeviceClass = "tablet-7"
	DeviceTablet10 DeviceClass = "tablet-10"
	DeviceDesktop  DeviceClass = "desktop"
	DeviceTV       DeviceClass = "tv"
	DeviceWear     DeviceClass = "wear"
)

// NormalizeLocale parses raw as a BCP 47 tag and returns its canonical form.
// Returns an error for codes the language parser rejects outright.
func NormalizeLocale(raw string) (Locale, error) {
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse locale %q: %w", raw, err)
	}
	return Locale(tag.String()), nil
}

// LocaleDocument is the metadata of one app listing in one locale.
//
// Every field is optional: the zero value ("" or nil) means "do not change
// this field on push". Pull fills in whatever the platform returned.
type LocaleDocument struct {
	// Title is the display name of the app.
	Title string `json:"title,omitempty"`

	// Subtitle is the short promotional line shown under the title
	// (Google Play calls this the short description).
	Subtitle string `json:"subtitle,omitempty"`

	// Description is the long listing text.
	Description string `json:"description,omitempty"`

	// Keywords is the comma-separated search term list (App Store only).
	Keywords string `json:"keywords,omitempty"`

	// PromotionalText is the freely editable promo paragraph.
	PromotionalText string `json:"promotional_text,omitempty"`

	// ReleaseNotes is the localized "what's new" text attached to a version.
	ReleaseNotes string `json:"release_notes,omitempty"`

	// Screenshots maps a device class to the ordered list of screenshot URLs.
	Screenshots map[DeviceClass][]string `json:"screenshots,omitempty"`

	// FeatureImage is the URL of the feature graphic, when the platform has one.
	FeatureImage string `json:"feature_image,omitempty"`

	ContactEmail   string `json:"contact_email,omitempty"`
	ContactPhone   string `json:"contact_phone,omitempty"`
	ContactWebsite string `json:"contact_website,omitempty"`
}

// Empty reports whether the document carries no pushable content at all.
func (d LocaleDocument) Empty() bool {
	return d.Title == "" && d.Subtitle == "" && d.Description == "" &&
		d.Keywords == "" && d.PromotionalText == "" && d.ReleaseNotes == "" &&
		len(d.Screenshots) == 0 && d.FeatureImage == "" &&
		d.ContactEmail == "" && d.ContactPhone == "" && d.ContactWebsite == ""
}

// HasAppFields reports whether the document touches the version-independent
// field group (title, subtitle, keywords, contact data).
func (d LocaleDocument) HasAppFields() bool {
	return d.Title != "" || d.Subtitle != "" || d.Keywords != "" ||
		d.ContactEmail != "" || d.ContactPhone != "" || d.ContactWebsite != ""
}

// HasVersionFields reports whether the document touches the field group that
// is attached to a concrete version record (description, promo, release notes).
func (d LocaleDocument) HasVersionFields() bool {
	return d.Description != "" || d.PromotionalText != "" || d.ReleaseNotes != ""
}

// MultilingualDocument is the unified internal shape: one LocaleDocument per
// locale plus a designated default locale.
type MultilingualDocument struct {
	Locales       map[Locale]LocaleDocument `json:"locales"`
	DefaultLocale Locale                    `json:"default_locale"`
}

// OrderedLocales returns the locales of the document in push order: the
// default locale first, the rest sorted lexicographically. Map iteration
// order is never relied upon.
func (m MultilingualDocument) OrderedLocales() []Locale {
	rest := make([]Locale, 0, len(m.Locales))
	for loc := range m.Locales {
		if loc != m.DefaultLocale {
			rest = append(rest, loc)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	if _, ok := m.Locales[m.DefaultLocale]; !ok {
		return rest
	}
	return append([]Locale{m.DefaultLocale}, rest...)
}
