package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-aso-sync/internal/config"
	"github.com/MKhiriev/go-aso-sync/internal/logger"
	"github.com/MKhiriev/go-aso-sync/internal/utils"
	"github.com/MKhiriev/go-aso-sync/models"
	"github.com/go-resty/resty/v2"
)

const defaultGooglePlayBaseURL = "https://androidpublisher.googleapis.com/androidpublisher/v3"

// playDeviceImageTypes maps the internal device classes to the publishing
// API's image type identifiers. Slice, not map: fetch order must be stable.
var playDeviceImageTypes = []struct {
	device    models.DeviceClass
	imageType string
}{
	{models.DevicePhone, "phoneScreenshots"},
	{models.DeviceTablet7, "sevenInchScreenshots"},
	{models.DeviceTablet10, "tenInchScreenshots"},
	{models.DeviceTV, "tvScreenshots"},
	{models.DeviceWear, "wearScreenshots"},
}

type googlePlayClient struct {
	client     *utils.HTTPClient
	auth       AuthProvider
	maxRetries int

	logger *logger.Logger
}

// NewGooglePlayClient constructs the Google Play implementation of
// [SessionClient]. The access token is consumed as an opaque bearer
// credential; minting it is the caller's concern.
//
// Returns ErrConfigurationMissing (wrapped) if no access token is configured,
// or an error if the base URL cannot be parsed.
func NewGooglePlayClient(adapterCfg config.Adapter, playCfg config.GooglePlay, log *logger.Logger) (SessionClient, error) {
	auth, err := NewStaticTokenProvider(playCfg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("google play credentials: %w", err)
	}

	baseURL, err := normalizeBaseURL(playCfg.BaseURL, defaultGooglePlayBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid google play base url: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
	)

	return &googlePlayClient{
		client:     client,
		auth:       auth,
		maxRetries: adapterCfg.MaxRetries,
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw, fallback string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (g *googlePlayClient) Platform() models.Platform { return models.PlatformGooglePlay }

// playListing is the wire shape of one localized store listing.
type playListing struct {
	Language         string `json:"language,omitempty"`
	Title            string `json:"title,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty"`
	FullDescription  string `json:"fullDescription,omitempty"`
	Video            string `json:"video,omitempty"`
}

type playListingList struct {
	Listings []playListing `json:"listings"`
}

type playEdit struct {
	ID string `json:"id"`
}

type playImageList struct {
	Images []struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"images"`
}

type playAppDetails struct {
	ContactEmail   string `json:"contactEmail,omitempty"`
	ContactPhone   string `json:"contactPhone,omitempty"`
	ContactWebsite string `json:"contactWebsite,omitempty"`
}

// BeginSession implements [SessionClient]. It POSTs a new edit resource and
// returns its handle in the Open state.
func (g *googlePlayClient) BeginSession(ctx context.Context, app models.AppIdentity) (*models.EditSession, error) {
	resp, err := g.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
		return req.Post(fmt.Sprintf("/applications/%s/edits", app.PackageName))
	})
	if err != nil {
		return nil, fmt.Errorf("begin edit request: %w", err)
	}
	if err = mapGooglePlayError(resp); err != nil {
		return nil, err
	}

	var edit playEdit
	if err = json.Unmarshal(resp.Body(), &edit); err != nil {
		return nil, fmt.Errorf("decode edit response: %w", err)
	}

	return &models.EditSession{
		SessionID: edit.ID,
		App:       app,
		State:     models.SessionOpen,
	}, nil
}

// CommitSession implements [SessionClient]. It publishes every mutation
// staged inside the session in one atomic commit.
func (g *googlePlayClient) CommitSession(ctx context.Context, session *models.EditSession) error {
	resp, err := g.send(ctx, session.App, func(req *resty.Request) (*resty.Response, error) {
		return req.Post(fmt.Sprintf("/applications/%s/edits/%s:commit", session.App.PackageName, session.SessionID))
	})
	if err != nil {
		return fmt.Errorf("commit edit request: %w", err)
	}

	return mapGooglePlayError(resp)
}

// AbortSession implements [SessionClient]. It deletes the edit resource,
// discarding all staged mutations.
func (g *googlePlayClient) AbortSession(ctx context.Context, session *models.EditSession) error {
	resp, err := g.send(ctx, session.App, func(req *resty.Request) (*resty.Response, error) {
		return req.Delete(fmt.Sprintf("/applications/%s/edits/%s", session.App.PackageName, session.SessionID))
	})
	if err != nil {
		return fmt.Errorf("abort edit request: %w", err)
	}

	return mapGooglePlayError(resp)
}

// UpdateListing implements [SessionClient]. It stages the locale's listing
// fields inside the session. Contact fields are app-wide on this platform and
// are staged via the edit's details resource when present.
func (g *googlePlayClient) UpdateListing(ctx context.Context, session *models.EditSession, locale models.Locale, doc models.LocaleDocument) error {
	listing := playListing{
		Language:         string(locale),
		Title:            doc.Title,
		ShortDescription: doc.Subtitle,
		FullDescription:  doc.Description,
	}

	resp, err := g.send(ctx, session.App, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(listing).
			Put(fmt.Sprintf("/applications/%s/edits/%s/listings/%s", session.App.PackageName, session.SessionID, locale))
	})
	if err != nil {
		return fmt.Errorf("update listing request: %w", err)
	}
	if err = mapGooglePlayError(resp); err != nil {
		return err
	}

	if doc.ContactEmail == "" && doc.ContactPhone == "" && doc.ContactWebsite == "" {
		return nil
	}

	details := playAppDetails{
		ContactEmail:   doc.ContactEmail,
		ContactPhone:   doc.ContactPhone,
		ContactWebsite: doc.ContactWebsite,
	}
	resp, err = g.send(ctx, session.App, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(details).
			Patch(fmt.Sprintf("/applications/%s/edits/%s/details", session.App.PackageName, session.SessionID))
	})
	if err != nil {
		return fmt.Errorf("update app details request: %w", err)
	}

	return mapGooglePlayError(resp)
}

// FetchLocale implements [StoreClient]. Reads on this platform also require
// an edit container; a throwaway edit is opened and discarded uncommitted,
// which the platform treats as a no-op.
func (g *googlePlayClient) FetchLocale(ctx context.Context, app models.AppIdentity, locale models.Locale) (models.LocaleDocument, error) {
	var doc models.LocaleDocument

	err := g.withReadEdit(ctx, app, func(editID string) error {
		resp, err := g.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
			return req.Get(fmt.Sprintf("/applications/%s/edits/%s/listings/%s", app.PackageName, editID, locale))
		})
		if err != nil {
			return fmt.Errorf("fetch listing request: %w", err)
		}
		if err = mapGooglePlayError(resp); err != nil {
			return err
		}

		var listing playListing
		if err = json.Unmarshal(resp.Body(), &listing); err != nil {
			return fmt.Errorf("decode listing response: %w", err)
		}

		doc = listingToDocument(listing)
		return nil
	})

	return doc, err
}

// ListListings implements [StoreClient].
func (g *googlePlayClient) ListListings(ctx context.Context, app models.AppIdentity) (map[models.Locale]models.LocaleDocument, error) {
	out := make(map[models.Locale]models.LocaleDocument)

	err := g.withReadEdit(ctx, app, func(editID string) error {
		resp, err := g.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
			return req.Get(fmt.Sprintf("/applications/%s/edits/%s/listings", app.PackageName, editID))
		})
		if err != nil {
			return fmt.Errorf("list listings request: %w", err)
		}
		if err = mapGooglePlayError(resp); err != nil {
			return err
		}

		var list playListingList
		if err = json.Unmarshal(resp.Body(), &list); err != nil {
			return fmt.Errorf("decode listings response: %w", err)
		}

		for _, listing := range list.Listings {
			out[models.Locale(listing.Language)] = listingToDocument(listing)
		}
		return nil
	})

	return out, err
}

// FetchScreenshots implements [StoreClient]. Each device class is fetched
// separately; a device class with no images is simply absent from the result.
func (g *googlePlayClient) FetchScreenshots(ctx context.Context, app models.AppIdentity, locale models.Locale) (map[models.DeviceClass][]string, error) {
	out := make(map[models.DeviceClass][]string)

	err := g.withReadEdit(ctx, app, func(editID string) error {
		for _, dt := range playDeviceImageTypes {
			resp, err := g.send(ctx, app, func(req *resty.Request) (*resty.Response, error) {
				return req.Get(fmt.Sprintf("/applications/%s/edits/%s/images/%s/%s", app.PackageName, editID, locale, dt.imageType))
			})
			if err != nil {
				return fmt.Errorf("fetch %s images request: %w", dt.imageType, err)
			}
			if err = mapGooglePlayError(resp); err != nil {
				return err
			}

			var list playImageList
			if err = json.Unmarshal(resp.Body(), &list); err != nil {
				return fmt.Errorf("decode %s images response: %w", dt.imageType, err)
			}

			for _, img := range list.Images {
				out[dt.device] = append(out[dt.device], img.URL)
			}
		}
		return nil
	})

	return out, err
}

// ListVersions implements [StoreClient]. Google Play versions live on release
// tracks, which belong to release management rather than metadata sync.
func (g *googlePlayClient) ListVersions(_ context.Context, _ models.AppIdentity) ([]models.VersionRecord, error) {
	return nil, fmt.Errorf("google play version listing: %w", ErrUnsupported)
}

// CreateVersion implements [StoreClient].
func (g *googlePlayClient) CreateVersion(_ context.Context, _ models.AppIdentity, _ string) (models.VersionRecord, error) {
	return models.VersionRecord{}, fmt.Errorf("google play version creation: %w", ErrUnsupported)
}

// withReadEdit opens a throwaway edit for read-only calls and deletes it
// afterwards. Deletion is best-effort: an uncommitted edit left behind is
// discarded by the platform on expiry.
func (g *googlePlayClient) withReadEdit(ctx context.Context, app models.AppIdentity, fn func(editID string) error) error {
	session, err := g.BeginSession(ctx, app)
	if err != nil {
		return fmt.Errorf("open read edit: %w", err)
	}

	defer func() {
		if abortErr := g.AbortSession(ctx, session); abortErr != nil {
			g.logger.Warn().Err(abortErr).
				Str("package", app.PackageName).
				Str("edit", session.SessionID).
				Msg("discard read edit failed")
		}
		session.MarkAborted()
	}()

	return fn(session.SessionID)
}

func (g *googlePlayClient) send(ctx context.Context, app models.AppIdentity, call func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	return doWithRetry(ctx, g.maxRetries, func(ctx context.Context) (*resty.Response, error) {
		token, err := g.auth.Token(ctx, app)
		if err != nil {
			return nil, fmt.Errorf("obtain bearer token: %w", err)
		}

		req := g.client.R().
			SetContext(ctx).
			SetHeader("Authorization", "Bearer "+token)
		return call(req)
	})
}

func listingToDocument(listing playListing) models.LocaleDocument {
	return models.LocaleDocument{
		Title:       listing.Title,
		Subtitle:    listing.ShortDescription,
		Description: listing.FullDescription,
	}
}
