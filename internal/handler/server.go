// Package handler implements the HTTP surface of the GrapeGeek site: the
// localized HTML pages and the small JSON API behind the family tree.
// All handlers are methods on Server. Methods are split into domain-specific
// files (pages.go, variety.go, api.go, etc.) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/service"
)

// CatalogServicer defines the read operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the dataset or service layer.
type CatalogServicer interface {
	AllVarieties(ctx context.Context, f domain.VarietyFilter) ([]domain.Variety, error)
	Variety(ctx context.Context, slug string) (domain.VarietyDetail, error)
	Letters(ctx context.Context) ([]string, error)
	AllWinegrowers(ctx context.Context, f domain.WinegrowerFilter) ([]domain.Winegrower, error)
	Winegrower(ctx context.Context, slug string) (domain.WinegrowerDetail, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Facets(ctx context.Context) (domain.Facets, error)
	TreeData(ctx context.Context) (domain.TreeData, error)
	MapView(ctx context.Context, f domain.WinegrowerFilter) (service.MapView, error)
	Charts(ctx context.Context, t service.Translate) ([]service.Chart, error)
	ExportRows(ctx context.Context) ([]domain.ExportRow, error)
}

// Translator is the part of i18n.Translator the handlers use.
type Translator interface {
	T(locale, key string, args ...any) string
	Locales() []string
	Supported(locale string) bool
	Negotiate(acceptLanguage string) string
}

// Server holds the dependencies of every handler.
type Server struct {
	catalog CatalogServicer
	tr      Translator
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogServicer, tr Translator, log *slog.Logger) *Server {
	return &Server{catalog: catalog, tr: tr, log: log}
}
