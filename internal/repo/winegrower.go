package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/p-gag/grapegeek-sub001/internal/dataset"
	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// WinegrowerRepo defines the read operations for winegrowers.
type WinegrowerRepo interface {
	// List returns every winegrower ordered by folded business name.
	List(ctx context.Context) ([]domain.Winegrower, error)

	// GetBySlug retrieves a single winegrower by its URL slug.
	// Returns domain.ErrNotFound if no winegrower has that slug.
	GetBySlug(ctx context.Context, slug string) (domain.Winegrower, error)
}

const winegrowerColumns = `id, business_name, slug, city, state_province, country,
	website, latitude, longitude, grape_varieties, wine_types, wines`

// pgWinegrowerRepo is the Postgres implementation of WinegrowerRepo.
type pgWinegrowerRepo struct {
	db db
}

// NewWinegrowerRepo constructs a WinegrowerRepo backed by the provided Postgres connection.
func NewWinegrowerRepo(db db) WinegrowerRepo {
	return &pgWinegrowerRepo{db: db}
}

// List returns every winegrower.
func (r *pgWinegrowerRepo) List(ctx context.Context) ([]domain.Winegrower, error) {
	q := `SELECT ` + winegrowerColumns + ` FROM winegrowers ORDER BY lower(business_name)`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.WinegrowerRepo.List: %w", err)
	}
	defer rows.Close()

	growers := []domain.Winegrower{}
	for rows.Next() {
		w, err := scanWinegrower(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.WinegrowerRepo.List: scan: %w", err)
		}
		growers = append(growers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.WinegrowerRepo.List: rows: %w", err)
	}

	dataset.SortWinegrowers(growers)
	return growers, nil
}

// GetBySlug retrieves a winegrower by slug.
func (r *pgWinegrowerRepo) GetBySlug(ctx context.Context, slug string) (domain.Winegrower, error) {
	q := `SELECT ` + winegrowerColumns + ` FROM winegrowers WHERE slug = @slug`

	w, err := scanWinegrower(r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}))
	if err != nil {
		return domain.Winegrower{}, fmt.Errorf("repo.WinegrowerRepo.GetBySlug: %w", err)
	}
	return w, nil
}

// sqliteWinegrowerRepo is the SQLite implementation of WinegrowerRepo.
type sqliteWinegrowerRepo struct {
	db sqlDB
}

// NewSQLiteWinegrowerRepo constructs a WinegrowerRepo over a database/sql handle.
func NewSQLiteWinegrowerRepo(db sqlDB) WinegrowerRepo {
	return &sqliteWinegrowerRepo{db: db}
}

// List returns every winegrower.
func (r *sqliteWinegrowerRepo) List(ctx context.Context) ([]domain.Winegrower, error) {
	q := `SELECT ` + winegrowerColumns + ` FROM winegrowers ORDER BY business_name COLLATE NOCASE`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.WinegrowerRepo.List: %w", err)
	}
	defer rows.Close()

	growers := []domain.Winegrower{}
	for rows.Next() {
		w, err := scanWinegrower(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.WinegrowerRepo.List: scan: %w", err)
		}
		growers = append(growers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.WinegrowerRepo.List: rows: %w", err)
	}

	dataset.SortWinegrowers(growers)
	return growers, nil
}

// GetBySlug retrieves a winegrower by slug.
func (r *sqliteWinegrowerRepo) GetBySlug(ctx context.Context, slug string) (domain.Winegrower, error) {
	q := `SELECT ` + winegrowerColumns + ` FROM winegrowers WHERE slug = ?`

	w, err := scanWinegrower(r.db.QueryRowContext(ctx, q, slug))
	if err != nil {
		return domain.Winegrower{}, fmt.Errorf("repo.WinegrowerRepo.GetBySlug: %w", err)
	}
	return w, nil
}

// scanWinegrower maps a single row into a domain.Winegrower.
func scanWinegrower(s scanner) (domain.Winegrower, error) {
	var (
		w                      domain.Winegrower
		id                     string
		grapes, types, wineRaw string
	)

	err := s.Scan(&id, &w.BusinessName, &w.Slug, &w.City, &w.StateProvince, &w.Country,
		&w.Website, &w.Latitude, &w.Longitude, &grapes, &types, &wineRaw)
	if err != nil {
		return domain.Winegrower{}, noRows(err)
	}

	if w.ID, err = uuid.Parse(id); err != nil {
		return domain.Winegrower{}, fmt.Errorf("parse id %q: %w", id, err)
	}

	w.GrapeVarieties, w.WineTypes, w.Wines = []string{}, []string{}, []domain.Wine{}
	if err := decodeJSON("grape_varieties", grapes, &w.GrapeVarieties); err != nil {
		return domain.Winegrower{}, err
	}
	if err := decodeJSON("wine_types", types, &w.WineTypes); err != nil {
		return domain.Winegrower{}, err
	}
	if err := decodeJSON("wines", wineRaw, &w.Wines); err != nil {
		return domain.Winegrower{}, err
	}
	if w.Wines == nil {
		w.Wines = []domain.Wine{}
	}
	for i := range w.Wines {
		if w.Wines[i].Varieties == nil {
			w.Wines[i].Varieties = []string{}
		}
	}

	return w, nil
}
