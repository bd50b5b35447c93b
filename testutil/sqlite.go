package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers "sqlite" driver for database/sql

	"github.com/p-gag/grapegeek-sub001/internal/dataset"
	"github.com/p-gag/grapegeek-sub001/migrations"
)

// NewSQLiteDB returns an in-memory SQLite database with all migrations
// applied and the embedded seed dataset loaded. It is closed when the test ends.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("testutil.NewSQLiteDB: open: %v", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	seedSQLite(t, db)
	return db
}

// NewSQLiteFile builds a seeded SQLite dataset file in a temporary directory
// and returns its path. Use it to exercise the read-only file path.
func NewSQLiteFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "grapegeek.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("testutil.NewSQLiteFile: open: %v", err)
	}
	defer db.Close()

	seedSQLite(t, db)
	return path
}

// SeedDataset returns the embedded seed dataset, failing the test on error.
func SeedDataset(t *testing.T) dataset.Dataset {
	t.Helper()

	ds, err := dataset.LoadSeed()
	if err != nil {
		t.Fatalf("testutil.SeedDataset: %v", err)
	}
	return ds
}

func seedSQLite(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()

	if _, err := migrations.Up(ctx, db, goose.DialectSQLite3); err != nil {
		t.Fatalf("testutil: migrate: %v", err)
	}
	if err := dataset.Seed(ctx, db, dataset.Question, SeedDataset(t)); err != nil {
		t.Fatalf("testutil: seed: %v", err)
	}
}
