package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// MapConfig points the producer map at a third-party embed endpoint.
// APIKey is optional; it is omitted from the URL when empty.
type MapConfig struct {
	EmbedURL string
	APIKey   string
}

// MapMarker is one located winegrower on the producer map.
type MapMarker struct {
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	City          string  `json:"city,omitempty"`
	StateProvince string  `json:"state_province"`
	Country       string  `json:"country"`
	Latitude      float64 `json:"lat"`
	Longitude     float64 `json:"lng"`
}

// MapView is everything the map page renders: the iframe URL, the markers
// for the located growers, the growers without coordinates, and a legend of
// grower counts per country.
type MapView struct {
	EmbedURL  string
	Markers   []MapMarker
	Unlocated []domain.Winegrower
	Legend    []domain.Count
}

// MapView selects the winegrowers matching f and builds the embed URL for them.
func (c *Catalog) MapView(ctx context.Context, f domain.WinegrowerFilter) (MapView, error) {
	growers, err := c.AllWinegrowers(ctx, f)
	if err != nil {
		return MapView{}, fmt.Errorf("service.Catalog.MapView: %w", err)
	}

	mv := MapView{Markers: []MapMarker{}, Unlocated: []domain.Winegrower{}}
	var legend tally
	for _, w := range growers {
		legend.add(w.Country)
		if !w.HasLocation() {
			mv.Unlocated = append(mv.Unlocated, w)
			continue
		}
		mv.Markers = append(mv.Markers, MapMarker{
			Name:          w.BusinessName,
			Slug:          w.Slug,
			City:          w.City,
			StateProvince: w.StateProvince,
			Country:       w.Country,
			Latitude:      w.Latitude,
			Longitude:     w.Longitude,
		})
	}
	mv.Legend = legend.top(0)
	mv.EmbedURL = c.maps.embedURL(f, growers, mv.Markers)
	return mv, nil
}

// embedURL builds the iframe src. A single match is searched by its address;
// otherwise the search covers the filtered region, centred on the markers.
func (m MapConfig) embedURL(f domain.WinegrowerFilter, growers []domain.Winegrower, markers []MapMarker) string {
	q := url.Values{}
	if m.APIKey != "" {
		q.Set("key", m.APIKey)
	}

	if len(growers) == 1 {
		w := growers[0]
		q.Set("q", joinNonEmpty(", ", w.BusinessName, w.City, w.StateProvince, w.Country))
	} else {
		q.Set("q", "winery "+joinNonEmpty(", ", f.StateProvince, f.Country))
	}

	if len(markers) > 0 {
		var lat, lng float64
		for _, mk := range markers {
			lat += mk.Latitude
			lng += mk.Longitude
		}
		n := float64(len(markers))
		q.Set("center", strconv.FormatFloat(lat/n, 'f', 4, 64)+","+strconv.FormatFloat(lng/n, 'f', 4, 64))
		q.Set("zoom", strconv.Itoa(zoomFor(f, len(growers))))
	}

	return m.EmbedURL + "?" + q.Encode()
}

// zoomFor picks a zoom level from how narrow the selection is.
func zoomFor(f domain.WinegrowerFilter, n int) int {
	switch {
	case n == 1:
		return 12
	case f.StateProvince != "":
		return 7
	case f.Country != "":
		return 5
	default:
		return 3
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.TrimSpace(strings.Join(out, sep))
}
