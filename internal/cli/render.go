package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/MKhiriev/go-aso-sync/internal/store"
	"github.com/MKhiriev/go-aso-sync/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderApps(w io.Writer, apps []models.AppIdentity) {
	if len(apps) == 0 {
		fmt.Fprintln(w, "no apps registered")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"platform", "store id", "name"})
	for _, app := range apps {
		t.AppendRow(table.Row{app.Platform, app.StoreID(), app.Name})
	}
	t.Render()
}

func renderSyncState(w io.Writer, state store.AppSyncState) {
	t := newTable(w)
	t.AppendHeader(table.Row{"platform", "store id", "synced locales", "last synced"})

	lastSynced := "never"
	if !state.LastSyncedAt.IsZero() {
		lastSynced = state.LastSyncedAt.Format("2006-01-02 15:04:05 MST")
	}
	t.AppendRow(table.Row{
		state.App.Platform,
		state.App.StoreID(),
		len(state.SyncedLocales),
		lastSynced,
	})
	t.Render()

	for _, loc := range state.SyncedLocales {
		fmt.Fprintf(w, "  %s\n", loc)
	}
}

func renderVersions(w io.Writer, records []models.VersionRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "no version records")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"id", "version", "state", "editable"})
	for _, record := range records {
		t.AppendRow(table.Row{record.ID, record.VersionString, record.State, record.State.Editable()})
	}
	t.Render()
}

func renderPushOutcome(w io.Writer, outcome models.PushOutcome) {
	if needs := outcome.NeedsNewVersion; needs != nil {
		fmt.Fprintf(w, "version state conflict: created version %s (%s)\n",
			needs.Version.VersionString, needs.Version.ID)
		fmt.Fprintf(w, "resume with: push -resume-version %s to submit %d pending locales\n",
			needs.Version.ID, len(needs.PendingLocales))
		return
	}

	result := outcome.Result
	t := newTable(w)
	t.AppendHeader(table.Row{"locale", "status", "detail"})

	for _, loc := range result.UpdatedLocales {
		t.AppendRow(table.Row{loc, "updated", ""})
	}

	failed := make([]models.Locale, 0, len(result.FailedLocales))
	for loc := range result.FailedLocales {
		failed = append(failed, loc)
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })
	for _, loc := range failed {
		t.AppendRow(table.Row{loc, "failed", result.FailedLocales[loc].Error()})
	}

	t.Render()
	fmt.Fprintf(w, "%d updated, %d failed\n", len(result.UpdatedLocales), len(result.FailedLocales))
}
