package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaginationParams holds the raw page/pageSize query values. Zero means the
// caller omitted the value.
type PaginationParams struct {
	Page     int
	PageSize int
}

// GetPaginationParams reads page and pageSize from the query string. Values
// that are present must be positive integers. A positive value too large for
// int saturates to math.MaxInt so the caller's range checks reject it.
func GetPaginationParams(c *gin.Context) (PaginationParams, error) {
	page, err := positiveQueryInt(c, "page")
	if err != nil {
		return PaginationParams{}, ValidationError("Page must be a positive integer")
	}

	pageSize, err := positiveQueryInt(c, "pageSize")
	if err != nil {
		return PaginationParams{}, ValidationError("Page size must be a positive integer")
	}

	return PaginationParams{Page: page, PageSize: pageSize}, nil
}

func positiveQueryInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return math.MaxInt, nil
		}
		return 0, err
	}
	if value < 1 {
		return 0, strconv.ErrRange
	}
	return value, nil
}

// TotalPages is ceil(total / pageSize).
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// OffsetOverflows reports whether Offset(page, pageSize) does not fit in int.
func OffsetOverflows(page, pageSize int) bool {
	if page < 1 || pageSize < 1 {
		return false
	}
	return page-1 > math.MaxInt/pageSize
}
