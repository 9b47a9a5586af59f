package domain

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PaginationParams carries the page/limit pair from the HTTP layer down to
// the repo for template listing. Page is 1-indexed.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams resolves optional query values against the defaults
// (page 1, limit 20) and caps the limit at 100.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: defaultPageSize}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, maxPageSize)
	}
	return p
}

// Offset is the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
