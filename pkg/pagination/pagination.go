package pagination

import (
	"math"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params carries the list-query state every screen sends:
// page, page size, free-text search and a sort column/direction.
type Params struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Normalize applies defaults and bounds so downstream code never
// sees page < 1, limit < 1 or an order other than asc/desc.
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	p.Search = strings.TrimSpace(p.Search)
	if strings.EqualFold(p.SortOrder, "desc") {
		p.SortOrder = "desc"
	} else {
		p.SortOrder = "asc"
	}
}

// Offset returns the SQL offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageCount computes the number of pages for a result set.
// An empty result set still has one (empty) page.
func PageCount(total int64, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Clamp pulls a requested page back into [1, pageCount]. Used when a
// filter change shrinks the result set below the page the caller was on.
func Clamp(page, pageCount int) int {
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

// Slice implements the in-memory pagination mode used by listings whose
// source has no native pagination: the full row set is fetched once and
// cut down to the requested page. The page is clamped first so shrinking
// data never yields an empty page when rows remain.
func Slice[T any](items []T, page, limit int) ([]T, int) {
	if limit < 1 {
		limit = DefaultLimit
	}
	pageCount := PageCount(int64(len(items)), limit)
	page = Clamp(page, pageCount)
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}, page
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page
}
