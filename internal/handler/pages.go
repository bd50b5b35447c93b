package handler

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/i18n"
	"github.com/p-gag/grapegeek-sub001/internal/view"
)

// featuredCount is how many varieties the home page shows.
const featuredCount = 6

// locale returns the locale set by the locale middleware, or the best match
// for the Accept-Language header outside /{locale} routes.
func (s *Server) locale(r *http.Request) string {
	if l := i18n.LocaleFrom(r.Context()); l != "" {
		return l
	}
	if seg, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/"); s.tr.Supported(seg) {
		return seg
	}
	return s.tr.Negotiate(r.Header.Get("Accept-Language"))
}

// page builds the chrome shared by every page of the request.
func (s *Server) page(ctx context.Context, r *http.Request) (view.Page, error) {
	locale := s.locale(r)
	stats, err := s.catalog.Stats(ctx)
	if err != nil {
		return view.Page{}, err
	}

	langs := make([]view.Language, 0, len(s.tr.Locales()))
	for _, l := range s.tr.Locales() {
		langs = append(langs, view.Language{Code: l, Name: s.tr.T(l, "lang.name")})
	}

	path := "/"
	if rest, ok := strings.CutPrefix(r.URL.Path, "/"+locale); ok && strings.HasPrefix(rest, "/") {
		path = rest
	}

	return view.Page{
		Locale:    locale,
		Languages: langs,
		Path:      path,
		Stats:     stats,
		T:         s.translate(locale),
	}, nil
}

func (s *Server) translate(locale string) func(key string, args ...any) string {
	return func(key string, args ...any) string { return s.tr.T(locale, key, args...) }
}

// render writes c with status. The component is rendered into a buffer first
// so a rendering failure can still produce a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		s.log.ErrorContext(r.Context(), "render page", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// fail renders the HTML page matching err: not-found for domain.ErrNotFound,
// bad-request for domain.ErrValidation, and a logged 500 otherwise.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}

	p, perr := s.page(r.Context(), r)
	if perr != nil {
		s.log.ErrorContext(r.Context(), "build error page", "error", perr)
		http.Error(w, http.StatusText(status), status)
		return
	}
	if status == http.StatusNotFound {
		s.render(w, r, status, view.NotFound(p))
		return
	}
	s.render(w, r, status, view.Error(p, status))
}

// NotFound handles unknown routes, unsupported locales and unknown slugs.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	p, err := s.page(r.Context(), r)
	if err != nil {
		s.log.ErrorContext(r.Context(), "build not-found page", "error", err)
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	s.render(w, r, http.StatusNotFound, view.NotFound(p))
}

// RedirectToLocale handles GET / by sending the reader to the home page in
// the language their browser prefers.
func (s *Server) RedirectToLocale(w http.ResponseWriter, r *http.Request) {
	locale := s.tr.Negotiate(r.Header.Get("Accept-Language"))
	w.Header().Add("Vary", "Accept-Language")
	http.Redirect(w, r, "/"+locale+"/", http.StatusFound)
}

// Home handles GET /{locale}/.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := s.page(ctx, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	varieties, err := s.catalog.AllVarieties(ctx, domain.VarietyFilter{})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	featured := varieties[:min(featuredCount, len(varieties))]
	s.render(w, r, http.StatusOK, view.Home(p, featured))
}
