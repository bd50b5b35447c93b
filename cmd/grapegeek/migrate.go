package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/p-gag/grapegeek-sub001/internal/config"
	"github.com/p-gag/grapegeek-sub001/internal/dataset"
	"github.com/p-gag/grapegeek-sub001/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the dataset schema in the configured SQL database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, dialect, _, err := openSQL(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := migrations.Up(cmd.Context(), db, dialect)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", "driver", cfg.DatasetDriver, "count", n)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the configured SQL database and load the embedded dataset into it",
	Long: `Applies pending migrations, then replaces every variety and winegrower in
the configured SQL database with the dataset embedded in the binary.
Run it with DATASET_DRIVER=sqlite to build the file the site reads from.
--from loads a YAML dataset file instead of the embedded one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return seed(cmd.Context(), cfg, seedFrom)
	},
}

var seedFrom string

func init() {
	seedCmd.Flags().StringVar(&seedFrom, "from", "", "YAML dataset file (default: embedded dataset)")
}

// seed migrates the configured database and loads the dataset at from, or
// the embedded one when from is empty.
func seed(ctx context.Context, cfg config.Config, from string) error {
	db, dialect, ph, err := openSQL(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := migrations.Up(ctx, db, dialect); err != nil {
		return err
	}
	ds, err := loadDataset(from)
	if err != nil {
		return err
	}
	if err := dataset.Seed(ctx, db, ph, ds); err != nil {
		return err
	}
	logger.Info("dataset seeded", "driver", cfg.DatasetDriver,
		"varieties", len(ds.Varieties), "winegrowers", len(ds.Winegrowers))
	return nil
}

// openSQL opens the configured dataset for writing.
func openSQL(cfg config.Config) (*sql.DB, goose.Dialect, dataset.Placeholder, error) {
	switch cfg.DatasetDriver {
	case config.DriverSQLite:
		db, err := sql.Open("sqlite", cfg.DatasetDSN)
		if err != nil {
			return nil, "", nil, fmt.Errorf("open sqlite: %w", err)
		}
		return db, goose.DialectSQLite3, dataset.Question, nil
	case config.DriverPostgres:
		db, err := sql.Open("pgx", cfg.DatasetDSN)
		if err != nil {
			return nil, "", nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, goose.DialectPostgres, dataset.Dollar, nil
	}
	return nil, "", nil, fmt.Errorf("DATASET_DRIVER=%s has no schema; use sqlite or postgres", cfg.DatasetDriver)
}

func loadDataset(from string) (dataset.Dataset, error) {
	if from == "" {
		return dataset.LoadSeed()
	}
	return dataset.LoadFile(from)
}
