package repo

import (
	"context"
	"fmt"
	"slices"

	"github.com/p-gag/grapegeek-sub001/internal/dataset"
	"github.com/p-gag/grapegeek-sub001/internal/domain"
)

// memVarietyRepo serves varieties straight from a loaded dataset.
type memVarietyRepo struct {
	varieties []domain.Variety
	bySlug    map[string]int
}

// NewMemoryVarietyRepo constructs a VarietyRepo over ds.Varieties.
// The dataset is read-only; callers receive copies of the slice.
func NewMemoryVarietyRepo(ds dataset.Dataset) VarietyRepo {
	r := &memVarietyRepo{
		varieties: ds.Varieties,
		bySlug:    make(map[string]int, len(ds.Varieties)),
	}
	for i, v := range ds.Varieties {
		r.bySlug[v.Slug] = i
	}
	return r
}

// List returns every variety.
func (r *memVarietyRepo) List(ctx context.Context) ([]domain.Variety, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.VarietyRepo.List: %w", err)
	}
	return slices.Clone(r.varieties), nil
}

// GetBySlug retrieves a variety by slug.
func (r *memVarietyRepo) GetBySlug(ctx context.Context, slug string) (domain.Variety, error) {
	if err := ctx.Err(); err != nil {
		return domain.Variety{}, fmt.Errorf("repo.VarietyRepo.GetBySlug: %w", err)
	}
	i, ok := r.bySlug[slug]
	if !ok {
		return domain.Variety{}, fmt.Errorf("repo.VarietyRepo.GetBySlug: %w", domain.ErrNotFound)
	}
	return r.varieties[i], nil
}

// memWinegrowerRepo serves winegrowers straight from a loaded dataset.
type memWinegrowerRepo struct {
	growers []domain.Winegrower
	bySlug  map[string]int
}

// NewMemoryWinegrowerRepo constructs a WinegrowerRepo over ds.Winegrowers.
func NewMemoryWinegrowerRepo(ds dataset.Dataset) WinegrowerRepo {
	r := &memWinegrowerRepo{
		growers: ds.Winegrowers,
		bySlug:  make(map[string]int, len(ds.Winegrowers)),
	}
	for i, w := range ds.Winegrowers {
		r.bySlug[w.Slug] = i
	}
	return r
}

// List returns every winegrower.
func (r *memWinegrowerRepo) List(ctx context.Context) ([]domain.Winegrower, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.WinegrowerRepo.List: %w", err)
	}
	return slices.Clone(r.growers), nil
}

// GetBySlug retrieves a winegrower by slug.
func (r *memWinegrowerRepo) GetBySlug(ctx context.Context, slug string) (domain.Winegrower, error) {
	if err := ctx.Err(); err != nil {
		return domain.Winegrower{}, fmt.Errorf("repo.WinegrowerRepo.GetBySlug: %w", err)
	}
	i, ok := r.bySlug[slug]
	if !ok {
		return domain.Winegrower{}, fmt.Errorf("repo.WinegrowerRepo.GetBySlug: %w", domain.ErrNotFound)
	}
	return r.growers[i], nil
}
