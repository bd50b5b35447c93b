package handler

import (
	"net/http"

	"github.com/p-gag/grapegeek-sub001/internal/view"
)

// FamilyTree handles GET /{locale}/family-tree. ?focus= names the slug of
// the variety to centre the graph on.
func (s *Server) FamilyTree(w http.ResponseWriter, r *http.Request) {
	focus, err := bindString(r.URL.Query(), "focus")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.page(r.Context(), r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, view.FamilyTree(p, TreeDataPath, focus))
}

// Map handles GET /{locale}/map. It takes the winegrower index filters.
func (s *Server) Map(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, _, err := bindWinegrowerQuery(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.page(ctx, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	mv, err := s.catalog.MapView(ctx, filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	facets, err := s.catalog.Facets(ctx)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, view.Map(p, view.MapData{View: mv, Filter: filter, Facets: facets}))
}

// Stats handles GET /{locale}/stats.
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := s.page(ctx, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	charts, err := s.catalog.Charts(ctx, func(key string) string { return p.T(key) })
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, view.Stats(p, charts))
}
