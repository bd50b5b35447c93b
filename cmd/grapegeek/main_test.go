package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-gag/grapegeek-sub001/internal/config"
	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testConfig(driver, dsn string) config.Config {
	return config.Config{
		Port:          8080,
		LogLevel:      "info",
		DatasetDriver: driver,
		DatasetDSN:    dsn,
		DefaultLocale: "en",
		SiteURL:       "http://localhost:8080",
		MapEmbedURL:   "https://maps.example.com/embed",
		MaxBodyBytes:  1 << 20,
	}
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := newLogger("chatty")

	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, newLogger("debug").Enabled(context.Background(), slog.LevelDebug))
}

func TestOpenSite_Seed(t *testing.T) {
	s, err := openSite(context.Background(), testConfig(config.DriverSeed, ""), discardLogger())
	require.NoError(t, err)
	defer s.close()

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/en/varieties/marquette", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Marquette")
}

func TestSeedThenServeSQLite(t *testing.T) {
	logger = discardLogger()
	path := filepath.Join(t.TempDir(), "grapegeek.db")
	ctx := context.Background()

	require.NoError(t, seed(ctx, testConfig(config.DriverSQLite, path), ""))

	s, err := openSite(ctx, testConfig(config.DriverSQLite, path), discardLogger())
	require.NoError(t, err)
	defer s.close()

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fr/winegrowers/fjellvin-gard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fjellvin Gård")
}

func TestSeedFromFile(t *testing.T) {
	logger = discardLogger()
	dir := t.TempDir()
	src := filepath.Join(dir, "grapes.yaml")
	require.NoError(t, os.WriteFile(src, []byte(`
varieties:
  - name: Itasca
    species: [Vitis riparia]
winegrowers:
  - business_name: Prairie Vines
    state_province: Minnesota
    country: United States
`), 0o644))
	path := filepath.Join(dir, "grapegeek.db")
	ctx := context.Background()

	require.NoError(t, seed(ctx, testConfig(config.DriverSQLite, path), src))

	s, err := openSite(ctx, testConfig(config.DriverSQLite, path), discardLogger())
	require.NoError(t, err)
	defer s.close()

	all, err := s.catalog.AllVarieties(ctx, domain.VarietyFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Itasca", all[0].Name)
}

func TestSeedFromMissingFile(t *testing.T) {
	logger = discardLogger()
	path := filepath.Join(t.TempDir(), "grapegeek.db")

	err := seed(context.Background(), testConfig(config.DriverSQLite, path), filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorContains(t, err, "dataset.LoadFile")
}

func TestOpenSQL_SeedDriverHasNoSchema(t *testing.T) {
	_, _, _, err := openSQL(testConfig(config.DriverSeed, ""))

	assert.ErrorContains(t, err, "DATASET_DRIVER")
}

func TestOpenSite_MissingSQLiteFile(t *testing.T) {
	_, err := openSite(context.Background(),
		testConfig(config.DriverSQLite, filepath.Join(t.TempDir(), "missing.db")), discardLogger())

	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	for _, k := range []string{"DATASET_DSN", "MAP_API_KEY", "CORS_ORIGINS", "PORT", "MAX_BODY_BYTES", "SITE_URL", "MAP_EMBED_URL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("DATASET_DRIVER", "seed")
	t.Setenv("DEFAULT_LOCALE", "fr")
	t.Setenv("LOG_LEVEL", "error")
	out := t.TempDir()

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"export", "--out", out, "--parallel", "2"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, stdout.String(), "exported")
	assert.FileExists(t, filepath.Join(out, "manifest.json"))
	assert.FileExists(t, filepath.Join(out, "fr", "varieties", "marquette", "index.html"))

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "/fr/", "root redirects to DEFAULT_LOCALE")
}
