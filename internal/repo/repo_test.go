package repo_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-gag/grapegeek-sub001/internal/dataset"
	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/repo"
	"github.com/p-gag/grapegeek-sub001/testutil"
)

// implementation bundles the two repos of one storage backend.
type implementation struct {
	varieties repo.VarietyRepo
	growers   repo.WinegrowerRepo
}

// implementations returns every backend available in this environment.
// Postgres is included only when TEST_DATABASE_URL is set.
func implementations(t *testing.T) map[string]func(t *testing.T) implementation {
	t.Helper()
	return map[string]func(t *testing.T) implementation{
		"memory": func(t *testing.T) implementation {
			ds := testutil.SeedDataset(t)
			return implementation{repo.NewMemoryVarietyRepo(ds), repo.NewMemoryWinegrowerRepo(ds)}
		},
		"sqlite": func(t *testing.T) implementation {
			db := testutil.NewSQLiteDB(t)
			return implementation{repo.NewSQLiteVarietyRepo(db), repo.NewSQLiteWinegrowerRepo(db)}
		},
		"sqlite-file": func(t *testing.T) implementation {
			db, err := repo.OpenSQLite(context.Background(), testutil.NewSQLiteFile(t))
			require.NoError(t, err)
			t.Cleanup(func() { db.Close() })
			return implementation{repo.NewSQLiteVarietyRepo(db), repo.NewSQLiteWinegrowerRepo(db)}
		},
		"postgres": func(t *testing.T) implementation {
			pool := testutil.NewPool(t)
			tx, err := pool.Begin(context.Background())
			require.NoError(t, err, "begin transaction")
			t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
			return implementation{repo.NewVarietyRepo(tx), repo.NewWinegrowerRepo(tx)}
		},
	}
}

func TestVarietyRepo_List(t *testing.T) {
	want := testutil.SeedDataset(t).Varieties

	for name, open := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			r := open(t).varieties

			got, err := r.List(context.Background())

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestVarietyRepo_GetBySlug(t *testing.T) {
	for name, open := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			r := open(t).varieties

			got, err := r.GetBySlug(context.Background(), "marechal-foch")

			require.NoError(t, err)
			assert.Equal(t, "Maréchal Foch", got.Name)
			assert.Equal(t, dataset.VarietyID("Maréchal Foch"), got.ID)
			assert.Equal(t, []string{"Millardet et Grasset 101-14", "Goldriesling"}, got.ParentCrosses)
			assert.Equal(t, []string{"Léon Millot"}, got.SimilarVarieties)
		})
	}
}

func TestVarietyRepo_GetBySlug_NotFound(t *testing.T) {
	for name, open := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			r := open(t).varieties

			_, err := r.GetBySlug(context.Background(), "no-such-grape")

			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestVarietyRepo_EmptyListsAreNotNil(t *testing.T) {
	for name, open := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			r := open(t).varieties

			got, err := r.GetBySlug(context.Background(), "vandal-cliche")

			require.NoError(t, err)
			assert.NotNil(t, got.SimilarVarieties)
			assert.Empty(t, got.SimilarVarieties)
		})
	}
}

func TestSQLiteRepo_NullListColumnsAreNotNil(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	_, err := db.ExecContext(ctx,
		`UPDATE varieties SET species = 'null', parent_crosses = 'null', similar_varieties = 'null', characteristics = 'null'
		 WHERE slug = 'marquette'`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`UPDATE winegrowers SET grape_varieties = 'null', wine_types = 'null', wines = '[{"name":"Blanc","type":"white","varieties":null}]'
		 WHERE slug = 'fjellvin-gard'`)
	require.NoError(t, err)

	v, err := repo.NewSQLiteVarietyRepo(db).GetBySlug(ctx, "marquette")
	require.NoError(t, err)
	assert.Equal(t, []string{}, v.Species)
	assert.Equal(t, []string{}, v.ParentCrosses)
	assert.Equal(t, []string{}, v.SimilarVarieties)

	w, err := repo.NewSQLiteWinegrowerRepo(db).GetBySlug(ctx, "fjellvin-gard")
	require.NoError(t, err)
	assert.Equal(t, []string{}, w.GrapeVarieties)
	assert.Equal(t, []string{}, w.WineTypes)
	require.Len(t, w.Wines, 1)
	assert.Equal(t, []string{}, w.Wines[0].Varieties)
}

func TestOpenSQLite_PathWithURIMetacharacters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data #1?")
	require.NoError(t, os.Mkdir(dir, 0o755))
	path := filepath.Join(dir, "grape?geek#.db")
	require.NoError(t, os.Rename(testutil.NewSQLiteFile(t), path))

	db, err := repo.OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	got, err := repo.NewSQLiteVarietyRepo(db).GetBySlug(context.Background(), "marquette")
	require.NoError(t, err)
	assert.Equal(t, "Marquette", got.Name)
}

func TestOpenSQLite_Missing(t *testing.T) {
	_, err := repo.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "missing.db"))

	assert.Error(t, err)
}

func TestWinegrowerRepo_List(t *testing.T) {
	want := testutil.SeedDataset(t).Winegrowers

	for name, open := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			r := open(t).growers

			got, err := r.List(context.Background())

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestWinegrowerRepo_GetBySlug(t *testing.T) {
	for name, open := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			r := open(t).growers

			got, err := r.GetBySlug(context.Background(), "annapolis-ridge-winery")

			require.NoError(t, err)
			assert.Equal(t, "Nova Scotia", got.StateProvince)
			assert.Equal(t, "Canada", got.Country)
			require.Len(t, got.Wines, 3)
			assert.Equal(t, "sparkling", got.Wines[0].Type)
			assert.Equal(t, 2019, got.Wines[0].Vintage)
			assert.True(t, got.HasLocation())
		})
	}
}

func TestWinegrowerRepo_GetBySlug_NotFound(t *testing.T) {
	for name, open := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			r := open(t).growers

			_, err := r.GetBySlug(context.Background(), "nobody")

			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestMemoryRepo_CanceledContext(t *testing.T) {
	ds := testutil.SeedDataset(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.NewMemoryVarietyRepo(ds).List(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryRepo_ListReturnsCopy(t *testing.T) {
	ds := testutil.SeedDataset(t)
	r := repo.NewMemoryVarietyRepo(ds)

	got, err := r.List(context.Background())
	require.NoError(t, err)
	got[0].Name = "mutated"

	again, err := r.List(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Name)
}
