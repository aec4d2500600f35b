package dto

// PageResponse wraps one page of results together with the pagination
// metadata the client needs to walk the collection.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNo        int   `json:"pageNo"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// NewPageResponse derives TotalPages and Last from the totals so the
// metadata stays self-consistent.
func NewPageResponse[T any](content []T, pageNo, pageSize int, totalElements int64) *PageResponse[T] {
	totalPages := int((totalElements + int64(pageSize) - 1) / int64(pageSize))
	return &PageResponse[T]{
		Content:       content,
		PageNo:        pageNo,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		Last:          pageNo >= totalPages-1,
	}
}
