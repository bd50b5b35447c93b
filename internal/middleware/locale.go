package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/p-gag/grapegeek-sub001/internal/i18n"
)

// LocaleSet is the part of i18n.Translator the locale middleware needs.
type LocaleSet interface {
	Supported(locale string) bool
}

// NewLocaleHandler returns a middleware for routes mounted under /{locale}.
// It stores a supported locale in the request context and hands requests for
// any other locale to notFound.
func NewLocaleHandler(locales LocaleSet, notFound http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := chi.URLParam(r, "locale")
			if !locales.Supported(locale) {
				notFound.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), locale)))
		})
	}
}
