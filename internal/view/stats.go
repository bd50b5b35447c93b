package view

import (
	"encoding/json"
	"strconv"

	"github.com/a-h/templ"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/service"
)

const chartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.4/dist/chart.umd.min.js"

// chartScript instantiates one Chart.js chart per canvas carrying a config.
const chartScript = `
document.querySelectorAll('canvas[data-chart]').forEach(function(c){
  new Chart(c, JSON.parse(c.dataset.chart));
});
`

// Stats is the statistics dashboard: dataset totals and one canvas per
// chart. Charts are configured server side and drawn by Chart.js.
func Stats(p Page, charts []service.Chart) templ.Component {
	body := component(func(h *htmlWriter) {
		h.el("h1", p.T("stats.title"))
		h.render(totals(p, p.Stats))
		for _, c := range charts {
			cfg, err := json.Marshal(c.Config)
			if err != nil {
				h.err = err
				return
			}
			h.raw("<figure><figcaption>")
			h.text(c.Title)
			h.raw("</figcaption><canvas")
			h.attr("id", "chart-"+c.ID)
			h.attr("aria-label", c.Title)
			h.attr("data-chart", string(cfg))
			h.raw("></canvas></figure>")
		}
		h.raw(`<script src="`, chartJSURL, `"></script>`)
		h.raw("<script>", chartScript, "</script>")
	})
	return Layout(p, p.T("stats.title"), body)
}

func totals(p Page, s domain.Stats) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<ul class="totals">`)
		for _, t := range []struct {
			n   int
			key string
		}{
			{s.TotalVarieties, "stats.total_varieties"},
			{s.TotalWinegrowers, "stats.total_winegrowers"},
			{s.TotalWines, "stats.total_wines"},
			{s.TotalCountries, "stats.total_countries"},
		} {
			h.raw("<li><strong>")
			h.text(strconv.Itoa(t.n))
			h.raw("</strong>")
			h.text(p.T(t.key))
			h.raw("</li>")
		}
		h.raw("</ul>")
	})
}
