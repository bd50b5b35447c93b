package view

import (
	"net/http"

	"github.com/a-h/templ"
)

// NotFound is shown for unknown locales, slugs and routes.
func NotFound(p Page) templ.Component {
	body := component(func(h *htmlWriter) {
		h.el("h1", p.T("notfound.title"))
		h.el("p", p.T("notfound.message"))
		h.raw("<p>")
		h.link(p.Href("/"), p.T("notfound.back"))
		h.raw("</p>")
	})
	return Layout(p, p.T("notfound.title"), body)
}

// Error is shown for malformed requests (400) and server failures (any
// other status).
func Error(p Page, status int) templ.Component {
	key := "error.internal"
	if status == http.StatusBadRequest {
		key = "error.bad_request"
	}
	body := component(func(h *htmlWriter) {
		h.el("h1", p.T(key+".title"))
		h.el("p", p.T(key+".message"))
		h.raw("<p>")
		h.link(p.Href("/"), p.T("notfound.back"))
		h.raw("</p>")
	})
	return Layout(p, p.T(key+".title"), body)
}
