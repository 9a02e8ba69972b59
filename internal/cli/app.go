package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-aso-sync/internal/adapter"
	"github.com/MKhiriev/go-aso-sync/internal/config"
	"github.com/MKhiriev/go-aso-sync/internal/logger"
	"github.com/MKhiriev/go-aso-sync/internal/service"
	"github.com/MKhiriev/go-aso-sync/internal/store"
	"github.com/MKhiriev/go-aso-sync/models"
)

// App is the asosync command-line application: one subcommand per run,
// local storage and the platform adapter built lazily for the commands
// that need them.
type App struct {
	cfg *config.SyncConfig

	registry store.Registry
	cache    store.MetadataCache

	logger *logger.Logger
}

// NewApp wires the local storage backends and returns a runnable App.
func NewApp(ctx context.Context, cfg *config.SyncConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("connect metadata cache: %w", err)
	}
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate metadata cache: %w", err)
	}

	registry, err := store.NewJSONRegistry(cfg.Storage.RegistryPath)
	if err != nil {
		return nil, fmt.Errorf("open app registry: %w", err)
	}

	return &App{
		cfg:      cfg,
		registry: registry,
		cache:    store.NewMetadataCache(db, log),
		logger:   log,
	}, nil
}

// Run implements [Client]. The first element of args names the subcommand,
// the rest are its flags.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return errors.New("no command given")
	}

	ctx := context.Background()
	command, rest := args[0], args[1:]

	switch command {
	case "register":
		return a.runRegister(ctx, rest)
	case "list":
		return a.runList(ctx)
	case "status":
		return a.runStatus(ctx, rest)
	case "pull":
		return a.runPull(ctx, rest)
	case "push":
		return a.runPush(ctx, rest)
	case "versions":
		return a.runVersions(ctx, rest)
	case "ensure-version":
		return a.runEnsureVersion(ctx, rest)
	case "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// appFlags are the flags shared by every app-scoped subcommand.
type appFlags struct {
	platform string
	storeID  string
}

func newAppFlagSet(name string) (*flag.FlagSet, *appFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &appFlags{}
	fs.StringVar(&flags.platform, "platform", "", `store platform: "google-play" or "app-store"`)
	fs.StringVar(&flags.storeID, "id", "", "package name (Google Play) or numeric app id (App Store)")
	return fs, flags
}

// resolveApp turns the platform/id pair into a full identity, preferring the
// registered record so the display name survives into logs and tables.
func (a *App) resolveApp(ctx context.Context, flags *appFlags) (models.AppIdentity, error) {
	platform := models.Platform(flags.platform)
	if !platform.Valid() {
		return models.AppIdentity{}, fmt.Errorf("unknown platform %q", flags.platform)
	}
	if flags.storeID == "" {
		return models.AppIdentity{}, errors.New("missing -id")
	}

	app, err := a.registry.GetApp(ctx, platform, flags.storeID)
	if err == nil {
		return app, nil
	}
	if !errors.Is(err, store.ErrAppNotFound) {
		return models.AppIdentity{}, fmt.Errorf("look up app: %w", err)
	}

	app = models.AppIdentity{Platform: platform}
	if platform == models.PlatformGooglePlay {
		app.PackageName = flags.storeID
	} else {
		app.AppID = flags.storeID
	}
	return app, nil
}

// buildServices constructs the platform adapter and the service stack for app.
func (a *App) buildServices(app models.AppIdentity) (*service.Services, error) {
	var (
		client adapter.StoreClient
		err    error
	)

	switch app.Platform {
	case models.PlatformGooglePlay:
		client, err = adapter.NewGooglePlayClient(a.cfg.Adapter, a.cfg.GooglePlay, a.logger)
	case models.PlatformAppStore:
		client, err = adapter.NewAppStoreClient(a.cfg.Adapter, a.cfg.AppStore, a.logger)
	default:
		err = fmt.Errorf("unknown platform %q", app.Platform)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", app.Platform, err)
	}

	return service.NewServices(client, a.registry, a.cache, a.logger), nil
}

func (a *App) runRegister(ctx context.Context, args []string) error {
	fs, flags := newAppFlagSet("register")
	var name string
	fs.StringVar(&name, "name", "", "human-readable app label")
	if err := fs.Parse(args); err != nil {
		return err
	}

	platform := models.Platform(flags.platform)
	if !platform.Valid() {
		return fmt.Errorf("unknown platform %q", flags.platform)
	}

	app := models.AppIdentity{Platform: platform, Name: name}
	if platform == models.PlatformGooglePlay {
		app.PackageName = flags.storeID
	} else {
		app.AppID = flags.storeID
	}

	if err := a.registry.RegisterApp(ctx, app); err != nil {
		return fmt.Errorf("register app: %w", err)
	}
	fmt.Printf("registered %s/%s\n", app.Platform, app.StoreID())
	return nil
}

func (a *App) runList(ctx context.Context) error {
	apps, err := a.registry.ListApps(ctx)
	if err != nil {
		return fmt.Errorf("list apps: %w", err)
	}
	renderApps(os.Stdout, apps)
	return nil
}

func (a *App) runStatus(ctx context.Context, args []string) error {
	fs, flags := newAppFlagSet("status")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := a.resolveApp(ctx, flags)
	if err != nil {
		return err
	}

	state, err := a.registry.SyncState(ctx, app)
	if err != nil {
		return fmt.Errorf("sync state: %w", err)
	}
	renderSyncState(os.Stdout, state)
	return nil
}

func (a *App) runPull(ctx context.Context, args []string) error {
	fs, flags := newAppFlagSet("pull")
	var outPath string
	fs.StringVar(&outPath, "o", "", "write the pulled document to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := a.resolveApp(ctx, flags)
	if err != nil {
		return err
	}

	services, err := a.buildServices(app)
	if err != nil {
		return err
	}

	doc, err := services.Orchestrator.PullDocument(ctx, app)
	if err != nil {
		return fmt.Errorf("pull document: %w", err)
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pulled document: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(encoded))
		return nil
	}
	if err = os.WriteFile(outPath, encoded, 0o600); err != nil {
		return fmt.Errorf("write pulled document: %w", err)
	}
	fmt.Printf("pulled %d locales into %s\n", len(doc.Locales), outPath)
	return nil
}

func (a *App) runPush(ctx context.Context, args []string) error {
	fs, flags := newAppFlagSet("push")
	var (
		filePath      string
		resumeVersion string
	)
	fs.StringVar(&filePath, "file", "", "JSON multilingual document to push")
	fs.StringVar(&resumeVersion, "resume-version", "", "version record id to resume an interrupted push against")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if filePath == "" {
		return errors.New("missing -file")
	}

	app, err := a.resolveApp(ctx, flags)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	var doc models.MultilingualDocument
	if err = json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	services, err := a.buildServices(app)
	if err != nil {
		return err
	}

	var outcome models.PushOutcome
	if resumeVersion == "" {
		outcome, err = services.Orchestrator.PushDocument(ctx, app, doc)
	} else {
		outcome, err = services.Orchestrator.ResumePush(ctx, app, resumeVersion, doc)
	}
	if err != nil {
		return fmt.Errorf("push document: %w", err)
	}

	renderPushOutcome(os.Stdout, outcome)

	if outcome.Completed() && len(outcome.Result.FailedLocales) > 0 {
		return fmt.Errorf("%d locales failed", len(outcome.Result.FailedLocales))
	}
	return nil
}

func (a *App) runVersions(ctx context.Context, args []string) error {
	fs, flags := newAppFlagSet("versions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := a.resolveApp(ctx, flags)
	if err != nil {
		return err
	}

	services, err := a.buildServices(app)
	if err != nil {
		return err
	}

	records, err := services.Versions.ListVersions(ctx, app)
	if err != nil {
		return fmt.Errorf("list versions: %w", err)
	}
	renderVersions(os.Stdout, records)
	return nil
}

func (a *App) runEnsureVersion(ctx context.Context, args []string) error {
	fs, flags := newAppFlagSet("ensure-version")
	var versionString string
	fs.StringVar(&versionString, "version", "", "version string to ensure; empty picks or creates an editable version")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := a.resolveApp(ctx, flags)
	if err != nil {
		return err
	}

	services, err := a.buildServices(app)
	if err != nil {
		return err
	}

	record, err := services.Orchestrator.EnsureVersion(ctx, app, versionString)
	if err != nil {
		return fmt.Errorf("ensure version: %w", err)
	}
	renderVersions(os.Stdout, []models.VersionRecord{record})
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: asosync [global flags] <command> [command flags]

commands:
  register        add an app to the local registry (-platform, -id, -name)
  list            list registered apps
  status          show the sync bookkeeping of one app (-platform, -id)
  pull            fetch the current listings of an app (-platform, -id, -o)
  push            push a multilingual document (-platform, -id, -file, -resume-version)
  versions        list the version records of an app (-platform, -id)
  ensure-version  guarantee a version record exists (-platform, -id, -version)
  help            print this message

global flags are listed by: asosync -h`)
}
