package view

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// VarietyIndexData is what the variety index renders.
type VarietyIndexData struct {
	Page    domain.Page[domain.Variety]
	Filter  domain.VarietyFilter
	Facets  domain.Facets
	Letters []string
}

func (d VarietyIndexData) query() url.Values {
	return url.Values{
		"species": {d.Filter.Species},
		"color":   {d.Filter.Color},
		"letter":  {d.Filter.Letter},
		"q":       {d.Filter.Query},
	}
}

// VarietyIndex lists varieties with a filter form, letter navigation and
// pagination. Filter values survive in every generated link.
func VarietyIndex(p Page, d VarietyIndexData) templ.Component {
	body := component(func(h *htmlWriter) {
		base := p.Href("/varieties")
		h.el("h1", p.T("varieties.title"))

		h.raw(`<form class="filters" method="get"`)
		h.attr("action", base)
		h.raw(">")
		selectField(h, p, "species", p.T("filter.species"), d.Filter.Species, d.Facets.Species, nil)
		selectField(h, p, "color", p.T("filter.color"), d.Filter.Color, d.Facets.Colors,
			func(c string) string { return p.label("color", c) })
		textField(h, "q", p.T("filter.query"), d.Filter.Query)
		if d.Filter.Letter != "" {
			h.raw(`<input type="hidden" name="letter"`)
			h.attr("value", d.Filter.Letter)
			h.raw(">")
		}
		h.raw(`<button type="submit">`)
		h.text(p.T("filter.apply"))
		h.raw("</button> ")
		h.link(base, p.T("filter.reset"))
		h.raw("</form>")

		h.raw(`<nav class="letters">`)
		q := d.query()
		q.Del("letter")
		letterLink(h, withQuery(base, q), p.T("filter.all_letters"), d.Filter.Letter == "")
		for _, l := range d.Letters {
			q.Set("letter", l)
			letterLink(h, withQuery(base, q), l, strings.EqualFold(d.Filter.Letter, l))
		}
		h.raw("</nav>")

		h.el("p", p.T("varieties.count", "n", strconv.Itoa(d.Page.Total)))
		if len(d.Page.Items) == 0 {
			h.raw(`<p class="muted">`)
			h.text(p.T("varieties.empty"))
			h.raw("</p>")
			return
		}
		h.render(varietyCards(p, d.Page.Items))
		pagination(h, p, base, d.query(), d.Page.Params, d.Page.TotalPages(), d.Page.HasPrev(), d.Page.HasNext())
	})
	return Layout(p, p.T("varieties.title"), body)
}

func letterLink(h *htmlWriter, href, text string, current bool) {
	h.raw("<a")
	h.attr("href", href)
	if current {
		h.raw(` aria-current="page"`)
	}
	h.raw(">")
	h.text(text)
	h.raw("</a>")
}

func varietyCards(p Page, vs []domain.Variety) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<ul class="cards">`)
		for _, v := range vs {
			h.raw("<li><h3>")
			h.link(slugPath(p.Href("/varieties"), v.Slug), v.Name)
			h.raw("</h3>")
			var meta []string
			if v.Color != "" {
				meta = append(meta, p.label("color", v.Color))
			}
			if v.CountryOfOrigin != "" {
				meta = append(meta, v.CountryOfOrigin)
			}
			if v.YearOfCrossing > 0 {
				meta = append(meta, strconv.Itoa(v.YearOfCrossing))
			}
			if len(meta) > 0 {
				h.raw(`<p class="muted">`)
				h.text(strings.Join(meta, " · "))
				h.raw("</p>")
			}
			h.raw("</li>")
		}
		h.raw("</ul>")
	})
}

// VarietyDetail shows one variety: facts, characteristics, lineage, similar
// varieties and the winegrowers growing it, as collapsible sections.
func VarietyDetail(p Page, d domain.VarietyDetail) templ.Component {
	body := component(func(h *htmlWriter) {
		h.el("h1", d.Name)
		if d.Description != "" {
			h.el("p", d.Description)
		}

		h.raw(`<dl class="facts">`)
		fact(h, p.T("variety.species"), strings.Join(d.Species, ", "))
		if d.Color != "" {
			fact(h, p.T("variety.color"), p.label("color", d.Color))
		}
		fact(h, p.T("variety.origin"), d.CountryOfOrigin)
		fact(h, p.T("variety.breeder"), d.Breeder)
		if d.YearOfCrossing > 0 {
			fact(h, p.T("variety.year"), strconv.Itoa(d.YearOfCrossing))
		}
		fact(h, p.T("variety.hardiness"), d.Hardiness)
		if d.Ripening != "" {
			fact(h, p.T("variety.ripening"), p.label("ripening", d.Ripening))
		}
		h.raw("</dl>")

		if len(d.Characteristics) > 0 {
			h.el("h2", p.T("variety.characteristics"))
			h.raw(`<dl class="facts">`)
			keys := make([]string, 0, len(d.Characteristics))
			for k := range d.Characteristics {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				fact(h, p.label("characteristic", k), d.Characteristics[k])
			}
			h.raw("</dl>")
		}

		h.raw(`<details open><summary>`)
		h.text(p.T("variety.lineage"))
		h.raw("</summary><p>")
		h.text(lineage(p, d.Variety))
		h.raw("</p>")
		h.el("h3", p.T("variety.parents"))
		linkedList(h, p, d.Parents, d.UnlinkedParents, "")
		h.el("h3", p.T("variety.children"))
		linkedList(h, p, d.Children, nil, p.T("variety.no_children"))
		h.raw("<p>")
		h.link(withQuery(p.Href("/family-tree"), url.Values{"focus": {d.Slug}}), p.T("variety.see_tree"))
		h.raw("</p></details>")

		h.raw(`<details open><summary>`)
		h.text(p.T("variety.similar"))
		h.raw("</summary>")
		linkedList(h, p, d.Similar, d.UnlinkedSimilar, p.T("variety.no_similar"))
		h.raw("</details>")

		h.raw(`<details open><summary>`)
		h.text(p.T("variety.growers"))
		h.raw("</summary>")
		if len(d.Growers) == 0 {
			h.raw(`<p class="muted">`)
			h.text(p.T("variety.no_growers"))
			h.raw("</p>")
		} else {
			h.raw("<ul>")
			for _, w := range d.Growers {
				h.raw("<li>")
				h.link(slugPath(p.Href("/winegrowers"), w.Slug), w.BusinessName)
				h.raw(` <span class="muted">`)
				h.text(w.StateProvince + ", " + w.Country)
				h.raw("</span></li>")
			}
			h.raw("</ul>")
		}
		h.raw("</details>")
	})
	return Layout(p, d.Name, body)
}

// lineage summarises the parentage in one sentence.
func lineage(p Page, v domain.Variety) string {
	switch len(v.ParentCrosses) {
	case 1:
		return p.T("variety.mutation_of", "parent", v.ParentCrosses[0])
	case 2:
		return p.T("variety.cross_of", "first", v.ParentCrosses[0], "second", v.ParentCrosses[1])
	default:
		return p.T("variety.unknown_parents")
	}
}

// linkedList renders dataset varieties as links and other names as plain
// text marked as absent from the database.
func linkedList(h *htmlWriter, p Page, linked []domain.Variety, unlinked []string, empty string) {
	if len(linked) == 0 && len(unlinked) == 0 {
		if empty != "" {
			h.raw(`<p class="muted">`)
			h.text(empty)
			h.raw("</p>")
		}
		return
	}
	h.raw("<ul>")
	for _, v := range linked {
		h.raw("<li>")
		h.link(slugPath(p.Href("/varieties"), v.Slug), v.Name)
		h.raw("</li>")
	}
	for _, name := range unlinked {
		h.raw("<li>")
		h.text(name)
		h.raw(` <span class="muted">(`)
		h.text(p.T("variety.not_in_dataset"))
		h.raw(")</span></li>")
	}
	h.raw("</ul>")
}

func fact(h *htmlWriter, term, value string) {
	if value == "" {
		return
	}
	h.el("dt", term)
	h.el("dd", value)
}
