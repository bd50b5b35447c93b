package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/view"
)

// WinegrowerIndex handles GET /{locale}/winegrowers.
// Supports ?country=, ?state_province=, ?variety=, ?wine_type=, ?q=,
// ?page= and ?limit=.
func (s *Server) WinegrowerIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, params, err := bindWinegrowerQuery(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.page(ctx, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	growers, err := s.catalog.AllWinegrowers(ctx, filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	facets, err := s.catalog.Facets(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, view.WinegrowerIndex(p, view.WinegrowerIndexData{
		Page:   domain.Paginate(growers, params),
		Filter: filter,
		Facets: facets,
	}))
}

// WinegrowerDetail handles GET /{locale}/winegrowers/{slug}.
func (s *Server) WinegrowerDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	d, err := s.catalog.Winegrower(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.page(ctx, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, view.WinegrowerDetail(p, d))
}
