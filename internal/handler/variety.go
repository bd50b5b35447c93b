package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/view"
)

// VarietyIndex handles GET /{locale}/varieties.
// Supports ?species=, ?color=, ?letter=, ?q=, ?page= and ?limit=
// (defaults: page=1, limit=20, max=100).
func (s *Server) VarietyIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, params, err := bindVarietyQuery(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.page(ctx, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	varieties, err := s.catalog.AllVarieties(ctx, filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	facets, err := s.catalog.Facets(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	letters, err := s.catalog.Letters(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, view.VarietyIndex(p, view.VarietyIndexData{
		Page:    domain.Paginate(varieties, params),
		Filter:  filter,
		Facets:  facets,
		Letters: letters,
	}))
}

// VarietyDetail handles GET /{locale}/varieties/{slug}.
func (s *Server) VarietyDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	d, err := s.catalog.Variety(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.page(ctx, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, view.VarietyDetail(p, d))
}
