package constants

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination query parameters
const (
	QueryParamPage    = "page"
	QueryParamPerPage = "per_page"
)

// Default pagination values (as strings for query parsing)
const (
	DefaultPage    = "1"
	DefaultPerPage = "20"
)

// Pagination limits
const (
	MinPage    = 1
	MinPerPage = 1
	MaxPerPage = 100
)

// PaginationParams holds the parsed page window for list queries
type PaginationParams struct {
	Page    int // 1-indexed page number from the request (default 1)
	PerPage int // page size from the request (default 20, capped at 100)
	Offset  int // calculated offset (page - 1) * per_page
}

// ParsePaginationParams parses and clamps page/per_page query parameters.
// Malformed values fall back to the defaults rather than erroring.
func ParsePaginationParams(c *gin.Context) PaginationParams {
	pageStr := c.DefaultQuery(QueryParamPage, DefaultPage)
	perPageStr := c.DefaultQuery(QueryParamPerPage, DefaultPerPage)

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = MinPage
	}
	perPage, err := strconv.Atoi(perPageStr)
	if err != nil {
		perPage, _ = strconv.Atoi(DefaultPerPage)
	}

	if page < MinPage {
		page = MinPage
	}
	if perPage < MinPerPage {
		perPage = MinPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return PaginationParams{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
	}
}
