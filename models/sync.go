package models

import (
	"fmt"
	"sort"
	"strings"
)

// SyncResult is the per-locale outcome of one push or pull. Every attempted
// locale ends up in exactly one bucket: UpdatedLocales and the keys of
// FailedLocales are disjoint and their union is the attempted set.
type SyncResult struct {
	UpdatedLocales []Locale
	FailedLocales  map[Locale]error
}

// NewSyncResult returns an empty result ready for recording.
func NewSyncResult() *SyncResult {
	return &SyncResult{FailedLocales: make(map[Locale]error)}
}

// RecordUpdated puts locale into the success bucket.
func (r *SyncResult) RecordUpdated(locale Locale) {
	r.UpdatedLocales = append(r.UpdatedLocales, locale)
}

// RecordFailed puts locale into the failure bucket with its error.
func (r *SyncResult) RecordFailed(locale Locale, err error) {
	if r.FailedLocales == nil {
		r.FailedLocales = make(map[Locale]error)
	}
	r.FailedLocales[locale] = err
}

// Attempted returns the sorted union of both buckets.
func (r *SyncResult) Attempted() []Locale {
	out := make([]Locale, 0, len(r.UpdatedLocales)+len(r.FailedLocales))
	out = append(out, r.UpdatedLocales...)
	for loc := range r.FailedLocales {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FieldError marks a locale push that failed for a subset of its field
// groups; groups not listed were applied successfully.
type FieldError struct {
	// Fields are the names of the field groups that failed, e.g.
	// "app-info", "version".
	Fields []string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field groups [%s] failed: %v", strings.Join(e.Fields, ", "), e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// NeedsNewVersion tells the caller that a mutation was refused because the
// targeted version is locked, a fresh editable version record has been
// created, and the listed locales must be resubmitted against it. The push is
// not retried automatically; resuming is the caller's explicit next step.
type NeedsNewVersion struct {
	// Version is the freshly created editable version record.
	Version VersionRecord `json:"version"`

	// PendingLocales are the locales whose content still needs to be
	// resubmitted, in document order.
	PendingLocales []Locale `json:"pending_locales"`
}

// PushOutcome is the discriminated result of a push: exactly one of Result or
// NeedsNewVersion is set.
type PushOutcome struct {
	Result          *SyncResult
	NeedsNewVersion *NeedsNewVersion
}

// Completed reports whether the push ran to completion and produced a
// per-locale result (as opposed to being interrupted by version recovery).
func (o PushOutcome) Completed() bool {
	return o.Result != nil
}
