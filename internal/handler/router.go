package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/p-gag/grapegeek-sub001/internal/middleware"
)

// TreeDataPath is where the family-tree graph is served. The static export
// writes the same document to this path.
const TreeDataPath = "/api/tree-data.json"

// RouterOptions configures the middleware of the router.
type RouterOptions struct {
	CORSOrigins  []string
	MaxBodyBytes int64
}

// NewRouter wires every route of the site.
//
// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
// RequestID generates a unique trace ID per request.
// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
// SlogLogger writes one structured JSON log line per request.
// Recoverer catches panics and returns HTTP 500 instead of crashing.
func NewRouter(s *Server, opts RouterOptions, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewMaxBodySizeHandler(opts.MaxBodyBytes))

	// Set before any Route call so sub-routers inherit it.
	r.NotFound(s.NotFound)

	r.Get("/", s.RedirectToLocale)
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NewCORSHandler(opts.CORSOrigins))
		r.Get("/tree-data", s.GetTreeData)
		r.Get("/tree-data.json", s.GetTreeData)
		r.Get("/export", s.GetExport)
	})

	r.Route("/{locale}", func(r chi.Router) {
		r.Use(middleware.NewLocaleHandler(s.tr, http.HandlerFunc(s.NotFound)))
		r.Get("/", s.Home)
		r.Get("/varieties", s.VarietyIndex)
		r.Get("/varieties/{slug}", s.VarietyDetail)
		r.Get("/winegrowers", s.WinegrowerIndex)
		r.Get("/winegrowers/{slug}", s.WinegrowerDetail)
		r.Get("/family-tree", s.FamilyTree)
		r.Get("/map", s.Map)
		r.Get("/stats", s.Stats)
	})

	return r
}
