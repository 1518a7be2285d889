package services

import "lessonhub/pkg/utils"

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// NormalizePagination applies the 1-indexed page / size-10 defaults and
// rejects out-of-range values.
func NormalizePagination(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		return 0, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, utils.ErrInvalidPageSize
	}
	return page, pageSize, nil
}
