package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// DefaultPageSize is the number of games shown per catalog page.
const DefaultPageSize = 15

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	NumPages int
	Offset   int
}

// Paginate computes the page arithmetic for a listing of total items.
// A non-numeric, zero or negative page request resolves to page 1; the
// caller redirects when the requested page exceeds NumPages.
func Paginate(pageParam string, total, pageSize int) PaginationParams {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 1 {
		page = 1
	}

	numPages := total / pageSize
	if total%pageSize > 0 {
		numPages++
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		NumPages: numPages,
		Offset:   (page - 1) * pageSize,
	}
}

// GetPaginationParams extracts pagination parameters from the request.
func GetPaginationParams(c echo.Context, total int) PaginationParams {
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = DefaultPageSize
	}
	return Paginate(c.QueryParam("page"), total, pageSize)
}

// PageSlice returns the half-open index range [start, end) of the items
// belonging to the given page.
func (p PaginationParams) PageSlice(total int) (int, int) {
	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}
	return start, end
}
