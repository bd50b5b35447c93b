package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/p-gag/grapegeek-sub001/internal/config"
	"github.com/p-gag/grapegeek-sub001/internal/dataset"
	"github.com/p-gag/grapegeek-sub001/internal/handler"
	"github.com/p-gag/grapegeek-sub001/internal/i18n"
	"github.com/p-gag/grapegeek-sub001/internal/repo"
	"github.com/p-gag/grapegeek-sub001/internal/service"
)

// site is everything a request needs, built once per process.
type site struct {
	catalog *service.Catalog
	tr      *i18n.Translator
	router  http.Handler
	close   func()
}

// openSite connects the configured dataset and wires the router over it.
// The caller must call close when done.
func openSite(ctx context.Context, cfg config.Config, log *slog.Logger) (*site, error) {
	varieties, growers, closeFn, err := openRepos(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	tr, err := i18n.New(cfg.DefaultLocale)
	if err != nil {
		closeFn()
		return nil, err
	}

	catalog := service.NewCatalog(varieties, growers, service.MapConfig{
		EmbedURL: cfg.MapEmbedURL,
		APIKey:   cfg.MapAPIKey,
	})
	srv := handler.NewServer(catalog, tr, log)
	router := handler.NewRouter(srv, handler.RouterOptions{
		CORSOrigins:  cfg.CORSOrigins,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}, log)

	return &site{catalog: catalog, tr: tr, router: router, close: closeFn}, nil
}

// openRepos returns the accessors for DATASET_DRIVER.
func openRepos(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.VarietyRepo, repo.WinegrowerRepo, func(), error) {
	switch cfg.DatasetDriver {
	case config.DriverSeed:
		ds, err := dataset.LoadSeed()
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("dataset loaded", "driver", cfg.DatasetDriver,
			"varieties", len(ds.Varieties), "winegrowers", len(ds.Winegrowers))
		return repo.NewMemoryVarietyRepo(ds), repo.NewMemoryWinegrowerRepo(ds), func() {}, nil

	case config.DriverSQLite:
		db, err := repo.OpenSQLite(ctx, cfg.DatasetDSN)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("dataset opened", "driver", cfg.DatasetDriver, "path", cfg.DatasetDSN)
		return repo.NewSQLiteVarietyRepo(db), repo.NewSQLiteWinegrowerRepo(db), func() { db.Close() }, nil

	case config.DriverPostgres:
		// New() does not open connections immediately; the first query does.
		pool, err := pgxpool.New(ctx, cfg.DatasetDSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create database pool: %w", err)
		}
		// Verify the DB is reachable before accepting traffic.
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		log.Info("database connection established")
		return repo.NewVarietyRepo(pool), repo.NewWinegrowerRepo(pool), pool.Close, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown dataset driver %q", cfg.DatasetDriver)
}
