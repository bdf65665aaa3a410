package utils

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination holds the effective page window after fallback.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// GetPagination parses page/limit query strings. Non-numeric, missing,
// zero, or negative values fall back to page=1, limit=10.
func GetPagination(pageStr, limitStr string) Pagination {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// GetPaginatedData builds the response envelope. total_pages is the
// ceiling of totalItems/limit.
func GetPaginatedData(items interface{}, totalItems int64, p Pagination, sortField, sortOrder string) *PaginatedResponse {
	totalPages := (totalItems + int64(p.Limit) - 1) / int64(p.Limit)

	return &PaginatedResponse{
		TotalItems: totalItems,
		TotalPages: totalPages,
		Page:       p.Page,
		Limit:      p.Limit,
		SortField:  sortField,
		SortOrder:  sortOrder,
		Items:      items,
	}
}
