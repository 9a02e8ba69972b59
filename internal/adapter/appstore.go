package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-aso-sync/internal/config"
	"github.com/MKhiriev/go-aso-sync/internal/logger"
	"github.com/MKhiriev/go-aso-sync/internal/utils"
	"github.com/MKhiriev/go-aso-sync/models"
	"github.com/go-resty/resty/v2"
)

const defaultAppStoreBaseURL = "https://api.appstoreconnect.apple.com/v1"

type appStoreClient struct {
	client     *utils.HTTPClient
	auth       AuthProvider
	maxRetries int

	logger *logger.Logger
}

// NewAppStoreClient constructs the App Store Connect implementation of
// [VersionedClient]. Every request carries a freshly minted ES256 API token.
//
// Returns ErrConfigurationMissing (wrapped) if the token-minting credentials
// are incomplete, or an error if the base URL or key cannot be processed.
func NewAppStoreClient(adapterCfg config.Adapter, ascCfg config.AppStore, log *logger.Logger) (VersionedClient, error) {
	auth, err := NewAppStoreTokenProvider(ascCfg)
	if err != nil {
		return nil, fmt.Errorf("app store credentials: %w", err)
	}

	return newAppStoreClientWithAuth(adapterCfg, ascCfg.BaseURL, auth, log)
}

// newAppStoreClientWithAuth is the injection point used by tests, which
// substitute a static token provider for the key-file based one.
func newAppStoreClientWithAuth(adapterCfg config.Adapter, rawBaseURL string, auth AuthProvider, log *logger.Logger) (VersionedClient, error) {
	baseURL, err := normalizeBaseURL(rawBaseURL, defaultAppStoreBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid app store base url: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
	)

	return &appStoreClient{
		client:     client,
		auth:       auth,
		maxRetries: adapterCfg.MaxRetries,
		logger:     log,
	}, nil
}

func (a *appStoreClient) Platform() models.Platform { return models.PlatformAppStore }

// JSON:API envelope shapes. Only the attributes the sync core reads are
// modelled; everything else in the vendor responses is ignored.

type ascVersionAttributes struct {
	VersionString string `json:"versionString"`
	AppStoreState string `json:"appStoreState"`
	Platform      string `json:"platform"`
}

type ascVersionData struct {
	ID         string               `json:"id"`
	Attributes ascVersionAttributes `json:"attributes"`
}

type ascVersionList struct {
	Data []ascVersionData `json:"data"`
}

type ascVersionSingle struct {
	Data ascVersionData `json:"data"`
}

type ascLocalizationAttributes struct {
	Locale          string `json:"locale,omitempty"`
	Name            string `json:"name,omitempty"`
	Subtitle        string `json:"subtitle,omitempty"`
	Keywords        string `json:"keywords,omitempty"`
	Description     string `json:"description,omitempty"`
	PromotionalText string `json:"promotionalText,omitempty"`
	WhatsNew        string `json:"whatsNew,omitempty"`
	SupportEmail    string `json:"supportEmail,omitempty"`
	SupportPhone    string `json:"supportPhone,omitempty"`
	SupportURL      string `json:"supportUrl,omitempty"`
}

type ascLocalizationData struct {
	Type       string                    `json:"type,omitempty"`
	ID         string                    `json:"id,omitempty"`
	Attributes ascLocalizationAttributes `json:"attributes"`
}

type ascLocalizationList struct {
	Data []ascLocalizationData `json:"data"`
}

type ascScreenshotSetList struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			ScreenshotDisplayType string   `json:"screenshotDisplayType"`
			Locale                string   `json:"locale"`
			URLs                  []string `json:"urls"`
		} `json:"attributes"`
	} `json:"data"`
}

type ascRelationship struct {
	Data struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	} `json:"data"`
}

// ListVersions implements [StoreClient].
func (a *appStoreClient) ListVersions(ctx context.Context, app models.AppIdentity) ([]models.VersionRecord, error) {
	resp, err := a.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
		return req.Get(fmt.Sprintf("/apps/%s/appStoreVersions", app.AppID))
	})
	if err != nil {
		return nil, fmt.Errorf("list versions request: %w", err)
	}
	if err = mapAppStoreError(resp); err != nil {
		return nil, err
	}

	var list ascVersionList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode versions response: %w", err)
	}

	records := make([]models.VersionRecord, 0, len(list.Data))
	for _, item := range list.Data {
		records = append(records, versionDataToRecord(item))
	}
	return records, nil
}

// CreateVersion implements [StoreClient].
func (a *appStoreClient) CreateVersion(ctx context.Context, app models.AppIdentity, versionString string) (models.VersionRecord, error) {
	body := map[string]any{
		"data": map[string]any{
			"type": "appStoreVersions",
			"attributes": map[string]any{
				"versionString": versionString,
				"platform":      "IOS",
			},
			"relationships": map[string]any{
				"app": map[string]any{
					"data": map[string]any{"type": "apps", "id": app.AppID},
				},
			},
		},
	}

	resp, err := a.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post("/appStoreVersions")
	})
	if err != nil {
		return models.VersionRecord{}, fmt.Errorf("create version request: %w", err)
	}
	if err = mapAppStoreError(resp); err != nil {
		return models.VersionRecord{}, err
	}

	var single ascVersionSingle
	if err = json.Unmarshal(resp.Body(), &single); err != nil {
		return models.VersionRecord{}, fmt.Errorf("decode created version response: %w", err)
	}

	return versionDataToRecord(single.Data), nil
}

// ListListings implements [StoreClient]. Version-independent fields come from
// the app info localizations; version-bound fields are merged in from the
// newest version's localizations when any version exists.
func (a *appStoreClient) ListListings(ctx context.Context, app models.AppIdentity) (map[models.Locale]models.LocaleDocument, error) {
	infos, err := a.listAppInfoLocalizations(ctx, app)
	if err != nil {
		return nil, err
	}

	out := make(map[models.Locale]models.LocaleDocument, len(infos))
	for _, item := range infos {
		loc := models.Locale(item.Attributes.Locale)
		out[loc] = models.LocaleDocument{
			Title:          item.Attributes.Name,
			Subtitle:       item.Attributes.Subtitle,
			Keywords:       item.Attributes.Keywords,
			ContactEmail:   item.Attributes.SupportEmail,
			ContactPhone:   item.Attributes.SupportPhone,
			ContactWebsite: item.Attributes.SupportURL,
		}
	}

	versions, err := a.ListVersions(ctx, app)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return out, nil
	}

	versionLocs, err := a.listVersionLocalizations(ctx, app, versions[0].ID)
	if err != nil {
		return nil, err
	}
	for _, item := range versionLocs {
		loc := models.Locale(item.Attributes.Locale)
		doc := out[loc]
		doc.Description = item.Attributes.Description
		doc.PromotionalText = item.Attributes.PromotionalText
		doc.ReleaseNotes = item.Attributes.WhatsNew
		out[loc] = doc
	}

	return out, nil
}

// FetchLocale implements [StoreClient].
func (a *appStoreClient) FetchLocale(ctx context.Context, app models.AppIdentity, locale models.Locale) (models.LocaleDocument, error) {
	listings, err := a.ListListings(ctx, app)
	if err != nil {
		return models.LocaleDocument{}, err
	}

	doc, ok := listings[locale]
	if !ok {
		return models.LocaleDocument{}, fmt.Errorf("listing for locale %s: %w", locale, ErrNotFound)
	}
	return doc, nil
}

// FetchScreenshots implements [StoreClient].
func (a *appStoreClient) FetchScreenshots(ctx context.Context, app models.AppIdentity, locale models.Locale) (map[models.DeviceClass][]string, error) {
	resp, err := a.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParam("filter[locale]", string(locale)).
			Get(fmt.Sprintf("/apps/%s/appScreenshotSets", app.AppID))
	})
	if err != nil {
		return nil, fmt.Errorf("fetch screenshot sets request: %w", err)
	}
	if err = mapAppStoreError(resp); err != nil {
		return nil, err
	}

	var list ascScreenshotSetList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode screenshot sets response: %w", err)
	}

	out := make(map[models.DeviceClass][]string)
	for _, set := range list.Data {
		device := displayTypeToDevice(set.Attributes.ScreenshotDisplayType)
		out[device] = append(out[device], set.Attributes.URLs...)
	}
	return out, nil
}

// UpdateAppFields implements [VersionedClient]. The localization record is
// patched when the locale already exists and created otherwise.
func (a *appStoreClient) UpdateAppFields(ctx context.Context, app models.AppIdentity, locale models.Locale, doc models.LocaleDocument) error {
	attrs := ascLocalizationAttributes{
		Name:         doc.Title,
		Subtitle:     doc.Subtitle,
		Keywords:     doc.Keywords,
		SupportEmail: doc.ContactEmail,
		SupportPhone: doc.ContactPhone,
		SupportURL:   doc.ContactWebsite,
	}

	infos, err := a.listAppInfoLocalizations(ctx, app)
	if err != nil {
		return err
	}

	for _, item := range infos {
		if models.Locale(item.Attributes.Locale) != locale {
			continue
		}
		return a.patchLocalization(ctx, app, "appInfoLocalizations", item.ID, attrs)
	}

	attrs.Locale = string(locale)
	return a.createLocalization(ctx, app, "appInfoLocalizations", attrs, "app", "apps", app.AppID)
}

// UpdateVersionFields implements [VersionedClient].
func (a *appStoreClient) UpdateVersionFields(ctx context.Context, app models.AppIdentity, versionID string, locale models.Locale, doc models.LocaleDocument) error {
	attrs := ascLocalizationAttributes{
		Description:     doc.Description,
		PromotionalText: doc.PromotionalText,
		WhatsNew:        doc.ReleaseNotes,
	}

	locs, err := a.listVersionLocalizations(ctx, app, versionID)
	if err != nil {
		return err
	}

	for _, item := range locs {
		if models.Locale(item.Attributes.Locale) != locale {
			continue
		}
		return a.patchLocalization(ctx, app, "appStoreVersionLocalizations", item.ID, attrs)
	}

	attrs.Locale = string(locale)
	return a.createLocalization(ctx, app, "appStoreVersionLocalizations", attrs, "appStoreVersion", "appStoreVersions", versionID)
}

func (a *appStoreClient) listAppInfoLocalizations(ctx context.Context, app models.AppIdentity) ([]ascLocalizationData, error) {
	resp, err := a.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
		return req.Get(fmt.Sprintf("/apps/%s/appInfoLocalizations", app.AppID))
	})
	if err != nil {
		return nil, fmt.Errorf("list app info localizations request: %w", err)
	}
	if err = mapAppStoreError(resp); err != nil {
		return nil, err
	}

	var list ascLocalizationList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode app info localizations response: %w", err)
	}
	return list.Data, nil
}

func (a *appStoreClient) listVersionLocalizations(ctx context.Context, app models.AppIdentity, versionID string) ([]ascLocalizationData, error) {
	resp, err := a.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
		return req.Get(fmt.Sprintf("/appStoreVersions/%s/appStoreVersionLocalizations", versionID))
	})
	if err != nil {
		return nil, fmt.Errorf("list version localizations request: %w", err)
	}
	if err = mapAppStoreError(resp); err != nil {
		return nil, err
	}

	var list ascLocalizationList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode version localizations response: %w", err)
	}
	return list.Data, nil
}

func (a *appStoreClient) patchLocalization(ctx context.Context, app models.AppIdentity, resource, id string, attrs ascLocalizationAttributes) error {
	body := map[string]any{
		"data": ascLocalizationData{Type: resource, ID: id, Attributes: attrs},
	}

	resp, err := a.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Patch(fmt.Sprintf("/%s/%s", resource, id))
	})
	if err != nil {
		return fmt.Errorf("patch %s request: %w", resource, err)
	}

	return mapAppStoreError(resp)
}

func (a *appStoreClient) createLocalization(ctx context.Context, app models.AppIdentity, resource string, attrs ascLocalizationAttributes, relName, relType, relID string) error {
	rel := ascRelationship{}
	rel.Data.Type = relType
	rel.Data.ID = relID

	body := map[string]any{
		"data": map[string]any{
			"type":          resource,
			"attributes":    attrs,
			"relationships": map[string]any{relName: rel},
		},
	}

	resp, err := a.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post("/" + resource)
	})
	if err != nil {
		return fmt.Errorf("create %s request: %w", resource, err)
	}

	return mapAppStoreError(resp)
}

func (a *appStoreClient) send(ctx context.Context, app models.AppIdentity, call func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	return doWithRetry(ctx, a.maxRetries, func(ctx context.Context) (*resty.Response, error) {
		token, err := a.auth.Token(ctx, app)
		if err != nil {
			return nil, fmt.Errorf("mint api token: %w", err)
		}

		req := a.client.R().
			SetContext(ctx).
			SetHeader("Authorization", "Bearer "+token)
		return call(req)
	})
}

func versionDataToRecord(data ascVersionData) models.VersionRecord {
	return models.VersionRecord{
		ID:            data.ID,
		VersionString: data.Attributes.VersionString,
		State:         models.VersionState(data.Attributes.AppStoreState),
		Platform:      models.PlatformAppStore,
	}
}

func displayTypeToDevice(displayType string) models.DeviceClass {
	switch {
	case strings.HasPrefix(displayType, "APP_IPHONE"):
		return models.DevicePhone
	case strings.HasPrefix(displayType, "APP_IPAD_PRO"):
		return models.DeviceTablet10
	case strings.HasPrefix(displayType, "APP_IPAD"):
		return models.DeviceTablet7
	case strings.HasPrefix(displayType, "APP_APPLE_TV"):
		return models.DeviceTV
	case strings.HasPrefix(displayType, "APP_WATCH"):
		return models.DeviceWear
	case strings.HasPrefix(displayType, "APP_DESKTOP"):
		return models.DeviceDesktop
	default:
		return models.DevicePhone
	}
}
