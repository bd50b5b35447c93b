package view

import (
	"strconv"

	"github.com/a-h/templ"
)

const stylesheet = `
body{font-family:system-ui,sans-serif;margin:0;color:#222;line-height:1.5}
header,main,footer{max-width:60rem;margin:0 auto;padding:0 1rem}
header nav a{margin-right:1rem}
.lang a[aria-current]{font-weight:bold}
.cards{display:grid;grid-template-columns:repeat(auto-fill,minmax(14rem,1fr));gap:1rem;list-style:none;padding:0}
.cards li{border:1px solid #ddd;border-radius:.5rem;padding:.75rem}
.letters a,.pagination a{margin-right:.5rem}
.letters a[aria-current]{font-weight:bold}
form.filters{display:flex;flex-wrap:wrap;gap:.5rem;align-items:end}
dl.facts{display:grid;grid-template-columns:max-content 1fr;gap:.25rem 1rem}
dl.facts dt{font-weight:600}
.muted{color:#777}
.totals{display:flex;gap:2rem;list-style:none;padding:0}
.totals strong{display:block;font-size:2rem}
#tree{height:70vh;border:1px solid #ddd}
iframe.map{width:100%;height:60vh;border:0}
footer{margin-top:3rem;border-top:1px solid #ddd;font-size:.9rem}
`

// Layout wraps body in the site chrome: head, navigation, language switcher
// and a footer with the dataset totals.
func Layout(p Page, title string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", p.Locale)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(title + " · " + p.T("site.title"))
		h.raw("</title>")
		h.raw(`<meta name="description"`)
		h.attr("content", p.T("site.tagline"))
		h.raw(">")
		for _, l := range p.Languages {
			h.raw(`<link rel="alternate"`)
			h.attr("hreflang", l.Code)
			h.attr("href", "/"+l.Code+p.Path)
			h.raw(">")
		}
		h.raw("<style>", stylesheet, "</style></head><body>")

		h.raw("<header><p><strong>")
		h.link(p.Href("/"), p.T("site.title"))
		h.raw("</strong> ")
		h.raw(`<span class="muted">`)
		h.text(p.T("site.tagline"))
		h.raw("</span></p><nav>")
		for _, item := range []struct{ path, key string }{
			{"/", "nav.home"},
			{"/varieties", "nav.varieties"},
			{"/winegrowers", "nav.winegrowers"},
			{"/family-tree", "nav.family_tree"},
			{"/map", "nav.map"},
			{"/stats", "nav.stats"},
		} {
			h.link(p.Href(item.path), p.T(item.key))
		}
		h.raw(`</nav><p class="lang"`)
		h.attr("aria-label", p.T("lang.switch"))
		h.raw(">")
		for _, l := range p.Languages {
			h.raw("<a")
			h.attr("href", "/"+l.Code+p.Path)
			h.attr("hreflang", l.Code)
			if l.Code == p.Locale {
				h.raw(` aria-current="true"`)
			}
			h.raw(">")
			h.text(l.Name)
			h.raw("</a> ")
		}
		h.raw("</p></header>\n<main>")
		h.render(body)
		h.raw("</main>\n<footer><p>")
		h.text(p.T("footer.stats",
			"varieties", strconv.Itoa(p.Stats.TotalVarieties),
			"winegrowers", strconv.Itoa(p.Stats.TotalWinegrowers),
			"countries", strconv.Itoa(p.Stats.TotalCountries)))
		h.raw("</p><p class=\"muted\">")
		h.text(p.T("footer.data"))
		h.raw("</p></footer></body></html>\n")
	})
}
