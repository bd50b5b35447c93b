package view

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/service"
)

// MapData is what the map page renders.
type MapData struct {
	View   service.MapView
	Filter domain.WinegrowerFilter
	Facets domain.Facets
}

// Map embeds the third-party map for the selected winegrowers, with a legend
// of growers per country and the list of growers the map cannot place.
func Map(p Page, d MapData) templ.Component {
	body := component(func(h *htmlWriter) {
		h.el("h1", p.T("map.title"))
		h.el("p", p.T("map.intro"))
		winegrowerFilterForm(h, p, p.Href("/map"), d.Filter, d.Facets, false)

		h.raw(`<iframe class="map" loading="lazy" referrerpolicy="no-referrer-when-downgrade" allowfullscreen`)
		h.attr("title", p.T("map.iframe_title"))
		h.attr("src", d.View.EmbedURL)
		h.raw("></iframe>")

		h.el("h2", p.T("map.legend"))
		h.raw("<ul>")
		for _, c := range d.View.Legend {
			h.raw("<li>")
			h.text(c.Label + ": " + strconv.Itoa(c.Value))
			h.raw("</li>")
		}
		h.raw("</ul>")

		if len(d.View.Markers) > 0 {
			h.el("h2", p.T("nav.winegrowers"))
			h.raw(`<ul class="markers">`)
			for _, m := range d.View.Markers {
				h.raw("<li")
				h.attr("data-lat", strconv.FormatFloat(m.Latitude, 'f', -1, 64))
				h.attr("data-lng", strconv.FormatFloat(m.Longitude, 'f', -1, 64))
				h.raw(">")
				h.link(slugPath(p.Href("/winegrowers"), m.Slug), m.Name)
				h.raw(` <span class="muted">`)
				h.text(m.StateProvince + ", " + m.Country)
				h.raw("</span></li>")
			}
			h.raw("</ul>")
		}

		if len(d.View.Unlocated) > 0 {
			h.el("h2", p.T("map.unlocated"))
			h.raw("<ul>")
			for _, w := range d.View.Unlocated {
				h.raw("<li>")
				h.link(slugPath(p.Href("/winegrowers"), w.Slug), w.BusinessName)
				h.raw("</li>")
			}
			h.raw("</ul>")
		}
	})
	return Layout(p, p.T("map.title"), body)
}
