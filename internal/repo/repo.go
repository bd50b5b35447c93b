// Package repo contains the read-only data accessors for varieties and winegrowers.
// Each resource has its own file with an interface and its implementations:
// Postgres (pgx), SQLite (database/sql) and in-memory over a loaded dataset.
// No business logic lives here, only queries and type mapping.
package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// sqlDB is the database/sql counterpart of db, satisfied by *sql.DB and *sql.Tx.
type sqlDB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows, allowing
// the scan helpers to be reused by every SQL implementation.
type scanner interface {
	Scan(dest ...any) error
}

// noRows maps the driver-specific "no rows" errors to domain.ErrNotFound.
func noRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// decodeJSON unmarshals a JSON text column. An empty or null column leaves
// dst untouched, so a list the caller preset to empty stays non-nil.
func decodeJSON(column, raw string, dst any) error {
	if raw = strings.TrimSpace(raw); raw == "" || raw == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", column, err)
	}
	return nil
}
