package view

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// wineTypeOrder is the order wine lists are grouped in.
var wineTypeOrder = []string{"red", "white", "rose", "orange", "sparkling", "dessert", "ice", "fortified"}

// WinegrowerIndexData is what the winegrower index renders.
type WinegrowerIndexData struct {
	Page   domain.Page[domain.Winegrower]
	Filter domain.WinegrowerFilter
	Facets domain.Facets
}

func winegrowerQuery(f domain.WinegrowerFilter) url.Values {
	return url.Values{
		"country":        {f.Country},
		"state_province": {f.StateProvince},
		"variety":        {f.Variety},
		"wine_type":      {f.WineType},
		"q":              {f.Query},
	}
}

// WinegrowerIndex lists winegrowers with a filter form and pagination.
func WinegrowerIndex(p Page, d WinegrowerIndexData) templ.Component {
	body := component(func(h *htmlWriter) {
		base := p.Href("/winegrowers")
		h.el("h1", p.T("winegrowers.title"))
		winegrowerFilterForm(h, p, base, d.Filter, d.Facets, true)

		h.el("p", p.T("winegrowers.count", "n", strconv.Itoa(d.Page.Total)))
		if len(d.Page.Items) == 0 {
			h.raw(`<p class="muted">`)
			h.text(p.T("winegrowers.empty"))
			h.raw("</p>")
			return
		}
		h.raw(`<ul class="cards">`)
		for _, w := range d.Page.Items {
			h.raw("<li><h3>")
			h.link(slugPath(p.Href("/winegrowers"), w.Slug), w.BusinessName)
			h.raw(`</h3><p class="muted">`)
			h.text(place(w))
			h.raw("</p></li>")
		}
		h.raw("</ul>")
		pagination(h, p, base, winegrowerQuery(d.Filter), d.Page.Params, d.Page.TotalPages(), d.Page.HasPrev(), d.Page.HasNext())
	})
	return Layout(p, p.T("winegrowers.title"), body)
}

// winegrowerFilterForm is shared by the winegrower index and the map.
func winegrowerFilterForm(h *htmlWriter, p Page, action string, f domain.WinegrowerFilter, facets domain.Facets, full bool) {
	h.raw(`<form class="filters" method="get"`)
	h.attr("action", action)
	h.raw(">")
	selectField(h, p, "country", p.T("filter.country"), f.Country, facets.Countries, nil)
	selectField(h, p, "state_province", p.T("filter.state"), f.StateProvince, facets.StateProvinces, nil)
	if full {
		textField(h, "variety", p.T("filter.variety"), f.Variety)
		selectField(h, p, "wine_type", p.T("filter.wine_type"), f.WineType, facets.WineTypes,
			func(t string) string { return p.label("wine_type", t) })
	}
	textField(h, "q", p.T("filter.query"), f.Query)
	h.raw(`<button type="submit">`)
	h.text(p.T("filter.apply"))
	h.raw("</button> ")
	h.link(action, p.T("filter.reset"))
	h.raw("</form>")
}

// WinegrowerDetail shows one winegrower: location, website, the varieties
// grown and the wine list grouped by type.
func WinegrowerDetail(p Page, d domain.WinegrowerDetail) templ.Component {
	body := component(func(h *htmlWriter) {
		h.el("h1", d.BusinessName)

		h.raw(`<dl class="facts">`)
		fact(h, p.T("winegrower.location"), place(d.Winegrower))
		if d.Website != "" {
			h.el("dt", p.T("winegrower.website"))
			h.raw("<dd><a")
			h.attr("href", d.Website)
			h.raw(` rel="noopener" target="_blank">`)
			h.text(d.Website)
			h.raw("</a></dd>")
		}
		h.raw("</dl>")
		if d.HasLocation() {
			h.raw("<p>")
			h.link(withQuery(p.Href("/map"), url.Values{
				"country":        {d.Country},
				"state_province": {d.StateProvince},
				"q":              {d.BusinessName},
			}), p.T("winegrower.view_on_map"))
			h.raw("</p>")
		}

		h.el("h2", p.T("winegrower.varieties"))
		linkedList(h, p, d.Varieties, d.UnlinkedVarieties, "")

		h.el("h2", p.T("winegrower.wines"))
		if len(d.Wines) == 0 {
			h.raw(`<p class="muted">`)
			h.text(p.T("winegrower.no_wines"))
			h.raw("</p>")
			return
		}
		for _, group := range groupWines(d.Wines) {
			h.el("h3", p.label("wine_type", group.kind))
			h.raw("<ul>")
			for _, wine := range group.wines {
				h.raw("<li><strong>")
				h.text(wine.Name)
				h.raw("</strong> ")
				vintage := p.T("winegrower.non_vintage")
				if wine.Vintage > 0 {
					vintage = strconv.Itoa(wine.Vintage)
				}
				h.text(vintage)
				if len(wine.Varieties) > 0 {
					h.raw(` <span class="muted">`)
					h.text(strings.Join(wine.Varieties, ", "))
					h.raw("</span>")
				}
				h.raw("</li>")
			}
			h.raw("</ul>")
		}
	})
	return Layout(p, d.BusinessName, body)
}

type wineGroup struct {
	kind  string
	wines []domain.Wine
}

// groupWines buckets wines by type in wineTypeOrder, then any unknown types
// in order of appearance.
func groupWines(wines []domain.Wine) []wineGroup {
	byType := make(map[string][]domain.Wine)
	var extra []string
	for _, w := range wines {
		if _, ok := byType[w.Type]; !ok && !slices.Contains(wineTypeOrder, w.Type) {
			extra = append(extra, w.Type)
		}
		byType[w.Type] = append(byType[w.Type], w)
	}
	var groups []wineGroup
	for _, t := range append(append([]string{}, wineTypeOrder...), extra...) {
		if ws := byType[t]; len(ws) > 0 {
			groups = append(groups, wineGroup{kind: t, wines: ws})
		}
	}
	return groups
}

func place(w domain.Winegrower) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{w.City, w.StateProvince, w.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
