package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-aso-sync/internal/adapter"
	"github.com/MKhiriev/go-aso-sync/internal/logger"
	"github.com/MKhiriev/go-aso-sync/models"
)

// initialVersionString is created for an app that has no version records yet.
const initialVersionString = "1.0.0"

// IncrementVersion returns the next patch version after version: the string is
// split on dots, padded with zero segments to at least three, and the last
// segment is incremented. "1.2.9" becomes "1.2.10", "1.2" becomes "1.2.1",
// "9" becomes "9.0.1". Non-numeric segments are kept verbatim except the last,
// which falls back to appending ".1".
func IncrementVersion(version string) string {
	segments := strings.Split(version, ".")
	for len(segments) < 3 {
		segments = append(segments, "0")
	}

	last := len(segments) - 1
	n, err := strconv.Atoi(segments[last])
	if err != nil {
		return version + ".1"
	}
	segments[last] = strconv.Itoa(n + 1)

	return strings.Join(segments, ".")
}

// compareVersions orders dot-separated version strings numerically segment by
// segment. Returns -1, 0, or 1. Missing segments count as zero; non-numeric
// segments compare lexicographically.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		var av, bv string
		if i < len(as) {
			av = as[i]
		} else {
			av = "0"
		}
		if i < len(bs) {
			bv = bs[i]
		} else {
			bv = "0"
		}

		an, aErr := strconv.Atoi(av)
		bn, bErr := strconv.Atoi(bv)
		if aErr != nil || bErr != nil {
			if av == bv {
				continue
			}
			if av < bv {
				return -1
			}
			return 1
		}

		if an != bn {
			if an < bn {
				return -1
			}
			return 1
		}
	}

	return 0
}

type versionService struct {
	client adapter.StoreClient

	logger *logger.Logger
}

// NewVersionService constructs a [VersionService] over the platform client.
func NewVersionService(client adapter.StoreClient, log *logger.Logger) VersionService {
	return &versionService{
		client: client,
		logger: log,
	}
}

// ListVersions returns the app's version records, newest version string first.
func (v *versionService) ListVersions(ctx context.Context, app models.AppIdentity) ([]models.VersionRecord, error) {
	records, err := v.client.ListVersions(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return compareVersions(records[i].VersionString, records[j].VersionString) > 0
	})

	return records, nil
}

// LatestVersion returns the newest version record, nil when none exist.
func (v *versionService) LatestVersion(ctx context.Context, app models.AppIdentity) (*models.VersionRecord, error) {
	records, err := v.ListVersions(ctx, app)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// EnsureEditableVersion returns an editable version record, creating a new one
// only when the newest record is locked or no record exists.
func (v *versionService) EnsureEditableVersion(ctx context.Context, app models.AppIdentity) (models.VersionRecord, error) {
	latest, err := v.LatestVersion(ctx, app)
	if err != nil {
		return models.VersionRecord{}, err
	}

	if latest == nil {
		v.logger.Info().
			Str("store_id", app.StoreID()).
			Str("version", initialVersionString).
			Msg("no versions exist, creating initial version")
		record, createErr := v.client.CreateVersion(ctx, app, initialVersionString)
		if createErr != nil {
			return models.VersionRecord{}, fmt.Errorf("create initial version: %w", createErr)
		}
		return record, nil
	}

	if latest.State.Editable() {
		return *latest, nil
	}

	next := IncrementVersion(latest.VersionString)
	v.logger.Info().
		Str("store_id", app.StoreID()).
		Str("locked_version", latest.VersionString).
		Str("next_version", next).
		Msg("newest version is locked, creating successor")

	record, err := v.client.CreateVersion(ctx, app, next)
	if err != nil {
		return models.VersionRecord{}, fmt.Errorf("create version %s: %w", next, err)
	}

	return record, nil
}

// EnsureVersion returns the record carrying versionString, creating it only
// when absent. A record that already exists is returned as is, whatever its
// state: "already exists" is never an error.
func (v *versionService) EnsureVersion(ctx context.Context, app models.AppIdentity, versionString string) (models.VersionRecord, error) {
	if versionString == "" {
		return v.EnsureEditableVersion(ctx, app)
	}

	records, err := v.ListVersions(ctx, app)
	if err != nil {
		return models.VersionRecord{}, err
	}
	for _, record := range records {
		if record.VersionString == versionString {
			return record, nil
		}
	}

	record, err := v.client.CreateVersion(ctx, app, versionString)
	if err != nil {
		return models.VersionRecord{}, fmt.Errorf("create version %s: %w", versionString, err)
	}

	return record, nil
}
