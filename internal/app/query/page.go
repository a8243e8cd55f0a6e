package query

import "github.com/yigit/coursehub/internal/pkg/helpers"

// DefaultPageSize is used when no positive size is supplied
const DefaultPageSize = helpers.DefaultPageSize

// Page is a bounded slice of an ordered result set plus position metadata.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements" example:"42"`
	TotalPages    int `json:"totalPages" example:"5"`
	CurrentPage   int `json:"currentPage" example:"0"`
	PageSize      int `json:"pageSize" example:"10"`
}

// Paginate slices items to the zero-based page [page*size, page*size+size),
// clamped to the bounds. An out-of-range page yields empty content, never an error.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	start, end := helpers.CalculateSliceIndices(page, size, len(items))
	content := make([]T, end-start)
	copy(content, items[start:end])

	return Page[T]{
		Content:       content,
		TotalElements: len(items),
		TotalPages:    helpers.TotalPages(len(items), size),
		CurrentPage:   page,
		PageSize:      size,
	}
}
