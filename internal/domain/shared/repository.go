package shared

// Filter holds common list query options shared by all repositories.
type Filter struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize applies the default page and page size when unset.
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 10
	}
}

// Offset returns the row offset for the current page.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// Pagination describes a page of results.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination computes the pagination envelope for a filter and total count.
func NewPagination(f Filter, total int64) Pagination {
	totalPages := int(total) / f.PageSize
	if int(total)%f.PageSize > 0 {
		totalPages++
	}
	return Pagination{
		Page:       f.Page,
		Limit:      f.PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    f.Page < totalPages,
		HasPrev:    f.Page > 1,
	}
}
