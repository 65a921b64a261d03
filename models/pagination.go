package models

type SortingOrder string

const (
	SortingOrderAsc  SortingOrder = "ASC"
	SortingOrderDesc SortingOrder = "DESC"
)

type Pagination struct {
	Page     int
	PageSize int
	Order    SortingOrder
}

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

func (p Pagination) WithDefaults() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.Order == "" {
		p.Order = SortingOrderDesc
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paged wraps one page of results together with the total row count, so the
// transport layer always returns a single envelope shape.
type Paged[T any] struct {
	Items []T
	Total int
}
