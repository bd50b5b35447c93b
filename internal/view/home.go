package view

import (
	"github.com/a-h/templ"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// Home is the landing page: an introduction, the dataset totals and a few
// varieties to start from.
func Home(p Page, featured []domain.Variety) templ.Component {
	body := component(func(h *htmlWriter) {
		h.el("h1", p.T("home.heading"))
		h.el("p", p.T("home.intro"))
		h.raw("<p>")
		h.link(p.Href("/varieties"), p.T("home.cta_varieties"))
		h.raw(" · ")
		h.link(p.Href("/winegrowers"), p.T("home.cta_winegrowers"))
		h.raw("</p>")
		h.render(totals(p, p.Stats))
		if len(featured) > 0 {
			h.el("h2", p.T("home.featured"))
			h.render(varietyCards(p, featured))
		}
	})
	return Layout(p, p.T("nav.home"), body)
}
