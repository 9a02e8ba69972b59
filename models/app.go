package models

// Platform identifies one of the two supported store backends.
type Platform string

const (
	// PlatformGooglePlay is the Google Play store. Metadata mutations are
	// transactional: they happen inside an edit session and are discarded
	// unless the session is committed.
	PlatformGooglePlay Platform = "google-play"

	// PlatformAppStore is the Apple App Store. There is no transaction
	// concept; individual field updates can be refused depending on the
	// lifecycle state of the targeted version record.
	PlatformAppStore Platform = "app-store"
)

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	return p == PlatformGooglePlay || p == PlatformAppStore
}

// AppIdentity names one application on one platform. Exactly one of
// PackageName (Google Play) or AppID (App Store) is meaningful, selected by
// Platform.
type AppIdentity struct {
	Platform Platform `json:"platform"`

	// PackageName is the Google Play application id, e.g. "com.example.app".
	PackageName string `json:"package_name,omitempty"`

	// AppID is the numeric App Store Connect application identifier.
	AppID string `json:"app_id,omitempty"`

	// Name is a human-readable label used for logging and the local registry.
	Name string `json:"name,omitempty"`
}

// StoreID returns the platform-native identifier for the app: the package
// name on Google Play, the numeric app id on the App Store.
func (a AppIdentity) StoreID() string {
	if a.Platform == PlatformGooglePlay {
		return a.PackageName
	}
	return a.AppID
}
