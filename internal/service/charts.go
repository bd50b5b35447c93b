package service

import (
	"context"
	"fmt"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/slug"
)

// Chart is one dashboard chart: a DOM id, a translated title and the
// declarative configuration handed to Chart.js in the browser.
type Chart struct {
	ID     string
	Title  string
	Config ChartConfig
}

// ChartConfig mirrors the Chart.js configuration object.
type ChartConfig struct {
	Type    string         `json:"type"`
	Data    ChartData      `json:"data"`
	Options map[string]any `json:"options,omitempty"`
}

// ChartData holds the labels and series of a chart.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is one series.
type ChartDataset struct {
	Label           string   `json:"label"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor,omitempty"`
}

// palette cycles through the site's chart colours.
var palette = []string{
	"#7b1e3a", "#c2a14d", "#4f6d3a", "#8e6c8a", "#d97b4f",
	"#3b5b7a", "#a33b3b", "#6e8f6a", "#b58db6", "#e0c27a",
}

// Translate resolves a message key to text in the caller's locale.
type Translate func(key string) string

// Charts builds the statistics dashboard: varieties per species, the ten
// most grown varieties, growers per country, growers per state or province,
// and the wine types produced.
func (c *Catalog) Charts(ctx context.Context, t Translate) ([]Chart, error) {
	varieties, err := c.varieties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Catalog.Charts: %w", err)
	}
	growers, err := c.growers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Catalog.Charts: %w", err)
	}

	var species, grown, countries, states, types tally
	for _, v := range varieties {
		for _, s := range v.Species {
			species.add(s)
		}
	}
	canonical := indexVarieties(varieties)
	for _, w := range growers {
		countries.add(w.Country)
		states.add(w.StateProvince)
		for _, g := range w.GrapeVarieties {
			if v, ok := canonical[slug.Fold(g)]; ok {
				g = v.Name
			}
			grown.add(g)
		}
		for _, wt := range w.WineTypes {
			types.add(wt)
		}
	}

	wineTypes := types.top(0)
	for i := range wineTypes {
		wineTypes[i].Label = t("wine_type." + wineTypes[i].Label)
	}

	return []Chart{
		barChart("species", t("stats.chart.species"), t("stats.series.varieties"), species.top(0), false),
		barChart("top-varieties", t("stats.chart.top_varieties"), t("stats.series.winegrowers"), grown.top(10), true),
		pieChart("countries", t("stats.chart.countries"), t("stats.series.winegrowers"), countries.top(0)),
		barChart("states", t("stats.chart.states"), t("stats.series.winegrowers"), states.top(0), false),
		pieChart("wine-types", t("stats.chart.wine_types"), t("stats.series.winegrowers"), wineTypes),
	}, nil
}

func barChart(id, title, series string, counts []domain.Count, horizontal bool) Chart {
	opts := map[string]any{
		"responsive": true,
		"plugins":    map[string]any{"legend": map[string]any{"display": false}},
	}
	if horizontal {
		opts["indexAxis"] = "y"
	}
	labels, data := split(counts)
	return Chart{
		ID:    id,
		Title: title,
		Config: ChartConfig{
			Type: "bar",
			Data: ChartData{
				Labels:   labels,
				Datasets: []ChartDataset{{Label: series, Data: data, BackgroundColor: []string{palette[0]}}},
			},
			Options: opts,
		},
	}
}

func pieChart(id, title, series string, counts []domain.Count) Chart {
	labels, data := split(counts)
	colors := make([]string, len(data))
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return Chart{
		ID:    id,
		Title: title,
		Config: ChartConfig{
			Type: "doughnut",
			Data: ChartData{
				Labels:   labels,
				Datasets: []ChartDataset{{Label: series, Data: data, BackgroundColor: colors}},
			},
			Options: map[string]any{"responsive": true},
		},
	}
}

func split(counts []domain.Count) ([]string, []int) {
	labels := make([]string, len(counts))
	data := make([]int, len(counts))
	for i, c := range counts {
		labels[i], data[i] = c.Label, c.Value
	}
	return labels, data
}
