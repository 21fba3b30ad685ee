package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"raffle/internal/shared/db"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size from the query string,
// clamped to db.MaxPageSize.
func ParsePagination(c *gin.Context) Pagination {
	page, pageSize := db.NormalizePage(
		parseQueryInt(c, "page", 1),
		parseQueryInt(c, "page_size", db.DefaultPageSize),
	)
	return Pagination{Page: page, PageSize: pageSize}
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
