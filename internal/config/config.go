// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Dataset drivers accepted in DATASET_DRIVER.
const (
	DriverSeed     = "seed"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration values for the site.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8080" validate:"gte=1,lte=65535"`

	// LogLevel controls the minimum log level.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// CORSOrigins is the list of origins allowed to call /api.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// DatasetDriver selects where varieties and winegrowers are read from:
	// the embedded seed, a pre-built SQLite file or Postgres.
	DatasetDriver string `env:"DATASET_DRIVER" envDefault:"seed" validate:"oneof=seed sqlite postgres"`

	// DatasetDSN is the SQLite file path or the Postgres connection string.
	// Required unless DatasetDriver is "seed".
	DatasetDSN string `env:"DATASET_DSN" validate:"required_unless=DatasetDriver seed"`

	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en" validate:"required"`
	SiteURL       string `env:"SITE_URL" envDefault:"http://localhost:8080" validate:"url"`

	MapEmbedURL string `env:"MAP_EMBED_URL" envDefault:"https://www.google.com/maps/embed/v1/search" validate:"url"`
	MapAPIKey   string `env:"MAP_API_KEY"`

	// MaxBodyBytes caps request bodies; larger requests get 413.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576" validate:"gt=0"`
}

// Addr is the listen address for Port.
func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

var validate = newValidator()

// newValidator reports fields by their environment variable name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
		return name
	})
	return v
}

// Load reads a .env file from the working directory when one exists, then
// parses environment variables into a Config. Variables already set in the
// environment win over the file. The returned error names every variable
// that is missing or invalid.
func Load() (Config, error) {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	// Parse errors do not stop validation: the fields that did parse are
	// still checked so one error reports every offending variable.
	var cfg Config
	parseErr := env.Parse(&cfg)
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	var problems []string
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Config{}, fmt.Errorf("config.Load: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
	}

	switch {
	case parseErr != nil && len(problems) > 0:
		return Config{}, fmt.Errorf("config.Load: invalid environment variables: %s: %w",
			strings.Join(problems, ", "), parseErr)
	case parseErr != nil:
		return Config{}, fmt.Errorf("config.Load: %w", parseErr)
	case len(problems) > 0:
		return Config{}, fmt.Errorf("config.Load: invalid environment variables: %s", strings.Join(problems, ", "))
	}
	return cfg, nil
}

// trimAll trims every entry and drops the empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
