package models

// VersionState is the store-defined lifecycle tag of a version record. The
// concrete values are platform vocabulary; the only distinction the sync core
// cares about is editable vs locked.
type VersionState string

const (
	// Editable states: metadata attached to the version may still change.
	VersionStatePrepareForSubmission VersionState = "PREPARE_FOR_SUBMISSION"
	VersionStateDeveloperRejected    VersionState = "DEVELOPER_REJECTED"
	VersionStateMetadataRejected     VersionState = "METADATA_REJECTED"
	VersionStateRejected             VersionState = "REJECTED"

	// Locked states: version-bound fields are refused with a state conflict.
	VersionStateWaitingForReview VersionState = "WAITING_FOR_REVIEW"
	VersionStateInReview         VersionState = "IN_REVIEW"
	VersionStatePendingRelease   VersionState = "PENDING_DEVELOPER_RELEASE"
	VersionStateReadyForSale     VersionState = "READY_FOR_SALE"
	VersionStateReplaced         VersionState = "REPLACED_WITH_NEW_VERSION"
)

// Editable reports whether version-bound metadata can still be mutated while
// the version is in state s. Unknown states are treated as locked; the
// platform remains the authority and will refuse with a state conflict.
func (s VersionState) Editable() bool {
	switch s {
	case VersionStatePrepareForSubmission,
		VersionStateDeveloperRejected,
		VersionStateMetadataRejected,
		VersionStateRejected:
		return true
	default:
		return false
	}
}

// VersionRecord is one version resource on a store. Records are never mutated
// in place: a new version string always produces a new record.
type VersionRecord struct {
	// ID is the opaque store-assigned handle of the record.
	ID string `json:"id"`

	// VersionString is the dot-separated version, e.g. "1.2.0".
	VersionString string `json:"version_string"`

	State    VersionState `json:"state"`
	Platform Platform     `json:"platform"`
}
