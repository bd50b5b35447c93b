// Package service contains the read-side business logic of the GrapeGeek site.
// Services filter, sort, link and aggregate what the repos return.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/p-gag/grapegeek-sub001/internal/domain"
	"github.com/p-gag/grapegeek-sub001/internal/repo"
	"github.com/p-gag/grapegeek-sub001/internal/slug"
)

// Catalog answers every query the pages and the JSON API make.
type Catalog struct {
	varieties repo.VarietyRepo
	growers   repo.WinegrowerRepo
	maps      MapConfig
}

// NewCatalog constructs a Catalog backed by the provided repos.
func NewCatalog(varieties repo.VarietyRepo, growers repo.WinegrowerRepo, maps MapConfig) *Catalog {
	return &Catalog{varieties: varieties, growers: growers, maps: maps}
}

// AllVarieties returns the varieties matching f, ordered by name.
func (c *Catalog) AllVarieties(ctx context.Context, f domain.VarietyFilter) ([]domain.Variety, error) {
	all, err := c.varieties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Catalog.AllVarieties: %w", err)
	}
	if f == (domain.VarietyFilter{}) {
		return all, nil
	}

	out := make([]domain.Variety, 0, len(all))
	for _, v := range all {
		if matchVariety(v, f) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Letters returns the distinct initials of every variety name, sorted. The
// variety index links each of them.
func (c *Catalog) Letters(ctx context.Context) ([]string, error) {
	all, err := c.varieties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Catalog.Letters: %w", err)
	}
	seen := make(map[string]bool)
	letters := []string{}
	for _, v := range all {
		if l := slug.Initial(v.Name); !seen[l] {
			seen[l] = true
			letters = append(letters, l)
		}
	}
	slices.Sort(letters)
	return letters, nil
}

// Variety returns the variety with the given slug and everything its page
// links to. Returns domain.ErrNotFound for an unknown slug.
func (c *Catalog) Variety(ctx context.Context, s string) (domain.VarietyDetail, error) {
	v, err := c.varieties.GetBySlug(ctx, s)
	if err != nil {
		return domain.VarietyDetail{}, fmt.Errorf("service.Catalog.Variety: %w", err)
	}
	all, err := c.varieties.List(ctx)
	if err != nil {
		return domain.VarietyDetail{}, fmt.Errorf("service.Catalog.Variety: %w", err)
	}
	growers, err := c.growers.List(ctx)
	if err != nil {
		return domain.VarietyDetail{}, fmt.Errorf("service.Catalog.Variety: %w", err)
	}

	byName := indexVarieties(all)
	d := domain.VarietyDetail{
		Variety:  v,
		Children: []domain.Variety{},
		Growers:  []domain.Winegrower{},
	}
	d.Parents, d.UnlinkedParents = resolve(byName, v.ParentCrosses)
	d.Similar, d.UnlinkedSimilar = resolve(byName, v.SimilarVarieties)

	key := slug.Fold(v.Name)
	for _, other := range all {
		if containsFolded(other.ParentCrosses, key) {
			d.Children = append(d.Children, other)
		}
	}
	for _, w := range growers {
		if containsFolded(w.GrapeVarieties, key) {
			d.Growers = append(d.Growers, w)
		}
	}
	return d, nil
}

// AllWinegrowers returns the winegrowers matching f, ordered by name.
func (c *Catalog) AllWinegrowers(ctx context.Context, f domain.WinegrowerFilter) ([]domain.Winegrower, error) {
	all, err := c.growers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Catalog.AllWinegrowers: %w", err)
	}
	if f.IsZero() {
		return all, nil
	}

	out := make([]domain.Winegrower, 0, len(all))
	for _, w := range all {
		if matchWinegrower(w, f) {
			out = append(out, w)
		}
	}
	return out, nil
}

// Winegrower returns the winegrower with the given slug and the dataset
// varieties it grows. Returns domain.ErrNotFound for an unknown slug.
func (c *Catalog) Winegrower(ctx context.Context, s string) (domain.WinegrowerDetail, error) {
	w, err := c.growers.GetBySlug(ctx, s)
	if err != nil {
		return domain.WinegrowerDetail{}, fmt.Errorf("service.Catalog.Winegrower: %w", err)
	}
	all, err := c.varieties.List(ctx)
	if err != nil {
		return domain.WinegrowerDetail{}, fmt.Errorf("service.Catalog.Winegrower: %w", err)
	}

	d := domain.WinegrowerDetail{Winegrower: w}
	d.Varieties, d.UnlinkedVarieties = resolve(indexVarieties(all), w.GrapeVarieties)
	return d, nil
}

// indexVarieties maps folded names to varieties.
func indexVarieties(vs []domain.Variety) map[string]domain.Variety {
	m := make(map[string]domain.Variety, len(vs))
	for _, v := range vs {
		m[slug.Fold(v.Name)] = v
	}
	return m
}

// resolve splits names into the varieties found in byName and the names that
// are not in the dataset, preserving order.
func resolve(byName map[string]domain.Variety, names []string) ([]domain.Variety, []string) {
	found := []domain.Variety{}
	var missing []string
	for _, n := range names {
		if v, ok := byName[slug.Fold(n)]; ok {
			found = append(found, v)
			continue
		}
		missing = append(missing, n)
	}
	return found, missing
}
