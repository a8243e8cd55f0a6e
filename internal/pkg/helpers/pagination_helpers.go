package helpers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 0 // Pages are 0-based
)

var (
	pageRange = validation.IntRange{Field: "page", Min: DefaultPage, Max: math.MaxInt32}
	sizeRange = validation.IntRange{Field: "size", Min: 1, Max: MaxPageSize}
)

// TotalPages returns ceil(totalItems/size), or 0 when there are no items.
func TotalPages(totalItems, size int) int {
	if totalItems <= 0 {
		return 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return int(math.Ceil(float64(totalItems) / float64(size)))
}

// CalculateSliceIndices calculates the start and end indices for slicing an array for pagination.
// Both indices are clamped to totalItems.
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 0 {
		page = DefaultPage
	}

	// guard against overflow on absurd page numbers
	if page > totalItems/size+1 {
		return totalItems, totalItems
	}

	start = page * size
	end = start + size

	if start >= totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return start, end
}

// ParsePaginationParams extracts page and size from the query string.
// Missing values use the defaults; malformed or out-of-range values are rejected.
func ParsePaginationParams(c *gin.Context) (page, size int, err error) {
	page, err = queryInt(c, "page", DefaultPage)
	if err != nil {
		return 0, 0, err
	}
	if err := pageRange.Check(page); err != nil {
		return 0, 0, err
	}

	size, err = queryInt(c, "size", DefaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if err := sizeRange.Check(size); err != nil {
		return 0, 0, err
	}

	return page, size, nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(name, name+" must be an integer")
	}
	return v, nil
}
