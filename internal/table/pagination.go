package table

import "slices"

// PageSizeOptions are the selectable page sizes.
var PageSizeOptions = []int{5, 10, 25, 50}

const (
	DefaultPageSize = 10
	MinPage         = 1
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// Pagination is the pagination metadata shown under the table
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ValidPageSize reports whether size is one of PageSizeOptions.
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizeOptions, size)
}

// TotalPages is ceil(total/limit); an empty result has zero pages.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// GetPaginationParams clamps page into [1, totalPages] and falls back to the
// default page size for sizes that are not offered.
func GetPaginationParams(page, limit, total int) PaginationParams {
	if !ValidPageSize(limit) {
		limit = DefaultPageSize
	}
	if last := max(TotalPages(total, limit), MinPage); page > last {
		page = last
	}
	if page < MinPage {
		page = MinPage
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// pageOf slices items to the window described by params.
func pageOf[T any](items []T, params PaginationParams) []T {
	if params.Offset >= len(items) {
		return []T{}
	}
	end := min(params.Offset+params.Limit, len(items))
	return items[params.Offset:end]
}
