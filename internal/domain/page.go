package domain

import "math"

// PaginationParams carries page/limit values from the HTTP layer to the service layer.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
// A page too far out to index saturates at math.MaxInt.
func (p PaginationParams) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Page is one page of a longer list.
type Page[T any] struct {
	Items  []T
	Params PaginationParams
	Total  int
}

// Paginate cuts the page described by p out of items.
// A page past the end yields an empty Items slice, never nil.
func Paginate[T any](items []T, p PaginationParams) Page[T] {
	start := min(p.Offset(), len(items))
	end := start + min(max(p.Limit, 0), len(items)-start)
	out := make([]T, end-start)
	copy(out, items[start:end])
	return Page[T]{Items: out, Params: p, Total: len(items)}
}

// TotalPages returns the number of pages, at least 1.
func (p Page[T]) TotalPages() int {
	if p.Params.Limit <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.Params.Limit - 1) / p.Params.Limit
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Params.Page > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Params.Page < p.TotalPages() }
