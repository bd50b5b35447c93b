package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p-gag/grapegeek-sub001/internal/config"
)

var allVars = []string{
	"PORT", "LOG_LEVEL", "CORS_ORIGINS", "DATASET_DRIVER", "DATASET_DSN",
	"DEFAULT_LOCALE", "SITE_URL", "MAP_EMBED_URL", "MAP_API_KEY", "MAX_BODY_BYTES",
}

// unsetAll removes every variable Load reads for the duration of the test.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(k))
	}
}

// TestLoad_defaults verifies that every variable falls back to its default
// and that the seed driver needs no DSN.
func TestLoad_defaults(t *testing.T) {
	unsetAll(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, config.DriverSeed, cfg.DatasetDriver)
	require.Empty(t, cfg.DatasetDSN)
	require.Equal(t, "en", cfg.DefaultLocale)
	require.Equal(t, "http://localhost:8080", cfg.SiteURL)
	require.Equal(t, "https://www.google.com/maps/embed/v1/search", cfg.MapEmbedURL)
	require.Empty(t, cfg.MapAPIKey)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	unsetAll(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://grapegeek.example.com, https://admin.example.com")
	t.Setenv("DATASET_DRIVER", "sqlite")
	t.Setenv("DATASET_DSN", "/data/grapegeek.db")
	t.Setenv("DEFAULT_LOCALE", "fr")
	t.Setenv("SITE_URL", "https://grapegeek.example.com")
	t.Setenv("MAP_API_KEY", "secret")
	t.Setenv("MAX_BODY_BYTES", "4096")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://grapegeek.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, config.DriverSQLite, cfg.DatasetDriver)
	require.Equal(t, "/data/grapegeek.db", cfg.DatasetDSN)
	require.Equal(t, "fr", cfg.DefaultLocale)
	require.Equal(t, "secret", cfg.MapAPIKey)
	require.Equal(t, int64(4096), cfg.MaxBodyBytes)
}

// TestLoad_missingDSN verifies that SQL drivers require DATASET_DSN and that
// the error names the variable.
func TestLoad_missingDSN(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverPostgres} {
		t.Run(driver, func(t *testing.T) {
			unsetAll(t)
			t.Setenv("DATASET_DRIVER", driver)

			_, err := config.Load()

			require.Error(t, err)
			require.ErrorContains(t, err, "DATASET_DSN")
		})
	}
}

// TestLoad_reportsEveryInvalidVariable verifies that one error names all
// offending variables.
func TestLoad_reportsEveryInvalidVariable(t *testing.T) {
	unsetAll(t)
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("DATASET_DRIVER", "mysql")
	t.Setenv("PORT", "70000")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "LOG_LEVEL")
	require.ErrorContains(t, err, "DATASET_DRIVER")
	require.ErrorContains(t, err, "PORT")
}

// TestLoad_malformedNumber verifies that a non-numeric PORT is rejected.
func TestLoad_malformedNumber(t *testing.T) {
	unsetAll(t)
	t.Setenv("PORT", "eighty")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "eighty")
}

// TestLoad_parseAndValidationErrorsTogether verifies that a value env cannot
// parse does not hide a missing variable.
func TestLoad_parseAndValidationErrorsTogether(t *testing.T) {
	unsetAll(t)
	t.Setenv("PORT", "abc")
	t.Setenv("DATASET_DRIVER", "postgres")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "abc")
	require.ErrorContains(t, err, "DATASET_DSN")
}
