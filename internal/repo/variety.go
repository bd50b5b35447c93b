package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/p-gag/grapegeek-sub001/internal/dataset"
	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// VarietyRepo defines the read operations for grape varieties.
// The service layer depends on this interface, not on an implementation,
// which allows the service to be unit-tested with a mock.
type VarietyRepo interface {
	// List returns every variety ordered by folded name.
	List(ctx context.Context) ([]domain.Variety, error)

	// GetBySlug retrieves a single variety by its URL slug.
	// Returns domain.ErrNotFound if no variety has that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Variety, error)
}

const varietyColumns = `id, name, slug, species, parent_crosses, similar_varieties,
	color, country_of_origin, breeder, year_of_crossing,
	hardiness, ripening, characteristics, description`

// pgVarietyRepo is the Postgres implementation of VarietyRepo.
type pgVarietyRepo struct {
	db db
}

// NewVarietyRepo constructs a VarietyRepo backed by the provided Postgres connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVarietyRepo(db db) VarietyRepo {
	return &pgVarietyRepo{db: db}
}

// List returns every variety.
func (r *pgVarietyRepo) List(ctx context.Context) ([]domain.Variety, error) {
	q := `SELECT ` + varietyColumns + ` FROM varieties ORDER BY lower(name)`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VarietyRepo.List: %w", err)
	}
	defer rows.Close()

	varieties := []domain.Variety{}
	for rows.Next() {
		v, err := scanVariety(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VarietyRepo.List: scan: %w", err)
		}
		varieties = append(varieties, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VarietyRepo.List: rows: %w", err)
	}

	dataset.SortVarieties(varieties)
	return varieties, nil
}

// GetBySlug retrieves a variety by slug.
func (r *pgVarietyRepo) GetBySlug(ctx context.Context, slug string) (domain.Variety, error) {
	q := `SELECT ` + varietyColumns + ` FROM varieties WHERE slug = @slug`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug})
	v, err := scanVariety(row)
	if err != nil {
		return domain.Variety{}, fmt.Errorf("repo.VarietyRepo.GetBySlug: %w", err)
	}
	return v, nil
}

// sqliteVarietyRepo is the SQLite implementation of VarietyRepo.
type sqliteVarietyRepo struct {
	db sqlDB
}

// NewSQLiteVarietyRepo constructs a VarietyRepo over a database/sql handle,
// typically the pre-built dataset file opened with OpenSQLite.
func NewSQLiteVarietyRepo(db sqlDB) VarietyRepo {
	return &sqliteVarietyRepo{db: db}
}

// List returns every variety.
func (r *sqliteVarietyRepo) List(ctx context.Context) ([]domain.Variety, error) {
	q := `SELECT ` + varietyColumns + ` FROM varieties ORDER BY name COLLATE NOCASE`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VarietyRepo.List: %w", err)
	}
	defer rows.Close()

	varieties := []domain.Variety{}
	for rows.Next() {
		v, err := scanVariety(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VarietyRepo.List: scan: %w", err)
		}
		varieties = append(varieties, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VarietyRepo.List: rows: %w", err)
	}

	dataset.SortVarieties(varieties)
	return varieties, nil
}

// GetBySlug retrieves a variety by slug.
func (r *sqliteVarietyRepo) GetBySlug(ctx context.Context, slug string) (domain.Variety, error) {
	q := `SELECT ` + varietyColumns + ` FROM varieties WHERE slug = ?`

	v, err := scanVariety(r.db.QueryRowContext(ctx, q, slug))
	if err != nil {
		return domain.Variety{}, fmt.Errorf("repo.VarietyRepo.GetBySlug: %w", err)
	}
	return v, nil
}

// scanVariety maps a single row into a domain.Variety, decoding the JSON
// list columns. A missing row becomes domain.ErrNotFound.
func scanVariety(s scanner) (domain.Variety, error) {
	var (
		v                               domain.Variety
		id                              string
		species, parents, similar, char string
	)

	err := s.Scan(&id, &v.Name, &v.Slug, &species, &parents, &similar,
		&v.Color, &v.CountryOfOrigin, &v.Breeder, &v.YearOfCrossing,
		&v.Hardiness, &v.Ripening, &char, &v.Description)
	if err != nil {
		return domain.Variety{}, noRows(err)
	}

	if v.ID, err = uuid.Parse(id); err != nil {
		return domain.Variety{}, fmt.Errorf("parse id %q: %w", id, err)
	}

	v.Species, v.ParentCrosses, v.SimilarVarieties = []string{}, []string{}, []string{}
	for _, col := range []struct {
		name string
		raw  string
		dst  any
	}{
		{"species", species, &v.Species},
		{"parent_crosses", parents, &v.ParentCrosses},
		{"similar_varieties", similar, &v.SimilarVarieties},
		{"characteristics", char, &v.Characteristics},
	} {
		if err := decodeJSON(col.name, col.raw, col.dst); err != nil {
			return domain.Variety{}, err
		}
	}
	if len(v.Characteristics) == 0 {
		v.Characteristics = nil
	}

	return v, nil
}
