package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Placeholder renders the n-th (1-based) bind parameter of a SQL dialect.
type Placeholder func(n int) string

// Dollar is the Postgres placeholder style ($1, $2, ...).
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question is the SQLite placeholder style (?, ?, ...).
func Question(int) string { return "?" }

// Seed replaces the contents of the varieties and winegrowers tables with ds,
// inside a single transaction. The schema must already exist (see the
// migrations package). List and map fields are stored as JSON text.
func Seed(ctx context.Context, db *sql.DB, ph Placeholder, ds Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("dataset.Seed: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, table := range []string{"varieties", "winegrowers"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("dataset.Seed: clear %s: %w", table, err)
		}
	}

	insertVariety := insertSQL(ph, "varieties", []string{
		"id", "name", "slug", "species", "parent_crosses", "similar_varieties",
		"color", "country_of_origin", "breeder", "year_of_crossing",
		"hardiness", "ripening", "characteristics", "description",
	})
	for _, v := range ds.Varieties {
		_, err := tx.ExecContext(ctx, insertVariety,
			v.ID.String(), v.Name, v.Slug,
			mustJSON(v.Species), mustJSON(v.ParentCrosses), mustJSON(v.SimilarVarieties),
			v.Color, v.CountryOfOrigin, v.Breeder, v.YearOfCrossing,
			v.Hardiness, v.Ripening, mustJSON(v.Characteristics), v.Description,
		)
		if err != nil {
			return fmt.Errorf("dataset.Seed: insert variety %q: %w", v.Name, err)
		}
	}

	insertWinegrower := insertSQL(ph, "winegrowers", []string{
		"id", "business_name", "slug", "city", "state_province", "country",
		"website", "latitude", "longitude", "grape_varieties", "wine_types", "wines",
	})
	for _, w := range ds.Winegrowers {
		_, err := tx.ExecContext(ctx, insertWinegrower,
			w.ID.String(), w.BusinessName, w.Slug, w.City, w.StateProvince, w.Country,
			w.Website, w.Latitude, w.Longitude,
			mustJSON(w.GrapeVarieties), mustJSON(w.WineTypes), mustJSON(w.Wines),
		)
		if err != nil {
			return fmt.Errorf("dataset.Seed: insert winegrower %q: %w", w.BusinessName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("dataset.Seed: commit: %w", err)
	}
	return nil
}

func insertSQL(ph Placeholder, table string, cols []string) string {
	params := make([]string, len(cols))
	for i := range cols {
		params[i] = ph(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(params, ", "))
}

// mustJSON encodes values built by Load, which are always encodable.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic("dataset: encode: " + err.Error())
	}
	if string(b) == "null" {
		return "{}"
	}
	return string(b)
}
