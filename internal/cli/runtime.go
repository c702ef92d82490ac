package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/LXMachado/tinnie-house-revamp/internal/app"
	"github.com/LXMachado/tinnie-house-revamp/internal/config"
	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
	"github.com/LXMachado/tinnie-house-revamp/internal/httpclient"
	"github.com/LXMachado/tinnie-house-revamp/internal/logger"
	"github.com/LXMachado/tinnie-house-revamp/internal/reconcile"
	"github.com/LXMachado/tinnie-house-revamp/internal/spotlight"
	"github.com/LXMachado/tinnie-house-revamp/internal/static"
	"github.com/LXMachado/tinnie-house-revamp/internal/store"
	"github.com/LXMachado/tinnie-house-revamp/internal/supabase"
)

// runtime holds everything a command needs to read or write content.
type runtime struct {
	cfg       *config.Config
	log       *logger.Logger
	db        *store.DB
	settings  *store.SettingsRepo
	source    app.Source
	spotlight *spotlight.Holder
	content   *app.ContentService
}

// newRuntime loads and validates configuration, then opens the configured
// content source. Settings always live in the SQLite file at DB_PATH, whatever
// the content source is.
func newRuntime(ctx context.Context, logOut io.Writer) (*runtime, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: logOut,
	})

	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	rt := &runtime{
		cfg:      cfg,
		log:      log,
		db:       db,
		settings: store.NewSettingsRepo(db),
	}

	if err := rt.openSource(); err != nil {
		_ = db.Close()
		return nil, err
	}

	rt.spotlight, err = spotlight.Load(ctx, rt.settings, cfg.SpotlightBundleID)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	overrides := reconcile.DefaultOverrides()
	if cfg.OverridesPath != "" {
		overrides, err = reconcile.LoadOverrides(cfg.OverridesPath)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	index := reconcile.NewIndex(overrides)
	releases, artists := index.Len()
	log.Debug("Overrides loaded", "releases", releases, "artists", artists, "path", cfg.OverridesPath)

	rt.content = app.NewContentService(rt.source, reconcile.New(index, rt.spotlight), log)
	return rt, nil
}

func (rt *runtime) openSource() error {
	var primary app.Source
	switch rt.cfg.DataSource {
	case constants.DataSourceSQLite:
		primary = rt.db
	case constants.DataSourceSupabase:
		hc := httpclient.NewClient(nil, constants.DefaultRequestInterval)
		primary = supabase.New(rt.cfg.SupabaseURL, rt.cfg.SupabaseAnonKey, hc)
	case constants.DataSourceStatic:
		snap, err := static.LoadDir(rt.cfg.StaticDir)
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}
		rt.source = snap
		return nil
	default:
		return errors.New("unknown data source " + rt.cfg.DataSource)
	}

	if rt.cfg.StaticDir == "" {
		rt.source = primary
		return nil
	}
	snap, err := static.LoadDir(rt.cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("failed to load fallback snapshot: %w", err)
	}
	rt.source = app.NewFallbackSource(primary, snap, rt.log)
	return nil
}

func (rt *runtime) Close() error {
	return rt.db.Close()
}
