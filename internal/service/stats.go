package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/slug"
)

// Stats returns the aggregate counts of the full dataset. TotalVarieties and
// TotalWinegrowers always equal the lengths of the unfiltered listings.
func (c *Catalog) Stats(ctx context.Context) (domain.Stats, error) {
	varieties, err := c.varieties.List(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.Catalog.Stats: %w", err)
	}
	growers, err := c.growers.List(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.Catalog.Stats: %w", err)
	}

	s := domain.Stats{
		TotalVarieties:   len(varieties),
		TotalWinegrowers: len(growers),
	}
	countries := make(map[string]struct{})
	for _, w := range growers {
		s.TotalWines += len(w.Wines)
		countries[slug.Fold(w.Country)] = struct{}{}
	}
	s.TotalCountries = len(countries)
	return s, nil
}

// Facets returns the distinct values each index filter can take, sorted.
func (c *Catalog) Facets(ctx context.Context) (domain.Facets, error) {
	varieties, err := c.varieties.List(ctx)
	if err != nil {
		return domain.Facets{}, fmt.Errorf("service.Catalog.Facets: %w", err)
	}
	growers, err := c.growers.List(ctx)
	if err != nil {
		return domain.Facets{}, fmt.Errorf("service.Catalog.Facets: %w", err)
	}

	var species, colors, countries, states, types distinct
	for _, v := range varieties {
		species.add(v.Species...)
		colors.add(v.Color)
	}
	for _, w := range growers {
		countries.add(w.Country)
		states.add(w.StateProvince)
		types.add(w.WineTypes...)
	}
	return domain.Facets{
		Species:        species.sorted(),
		Colors:         colors.sorted(),
		Countries:      countries.sorted(),
		StateProvinces: states.sorted(),
		WineTypes:      types.sorted(),
	}, nil
}

// distinct collects values once per folded form, keeping the first spelling seen.
type distinct struct {
	seen   map[string]struct{}
	values []string
}

func (d *distinct) add(values ...string) {
	if d.seen == nil {
		d.seen = make(map[string]struct{})
	}
	for _, v := range values {
		if v == "" {
			continue
		}
		k := slug.Fold(v)
		if _, ok := d.seen[k]; ok {
			continue
		}
		d.seen[k] = struct{}{}
		d.values = append(d.values, v)
	}
}

func (d *distinct) sorted() []string {
	out := slices.Clone(d.values)
	slices.SortFunc(out, func(a, b string) int { return cmp.Compare(slug.Fold(a), slug.Fold(b)) })
	if out == nil {
		out = []string{}
	}
	return out
}

// tally counts occurrences per folded label, keeping the first spelling seen.
type tally struct {
	index  map[string]int
	counts []domain.Count
}

func (t *tally) add(label string) {
	if label == "" {
		return
	}
	if t.index == nil {
		t.index = make(map[string]int)
	}
	k := slug.Fold(label)
	if i, ok := t.index[k]; ok {
		t.counts[i].Value++
		return
	}
	t.index[k] = len(t.counts)
	t.counts = append(t.counts, domain.Count{Label: label, Value: 1})
}

// top returns the counts ordered by value descending then label, cut to n
// entries when n > 0.
func (t *tally) top(n int) []domain.Count {
	out := slices.Clone(t.counts)
	slices.SortStableFunc(out, func(a, b domain.Count) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(slug.Fold(a.Label), slug.Fold(b.Label))
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	if out == nil {
		out = []domain.Count{}
	}
	return out
}
