package domain

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords int, pagination Pagination) *Metadata {
	return &Metadata{
		CurrentPage:  pagination.Page,
		FirstPage:    1,
		LastPage:     (totalRecords + pagination.PageSize - 1) / pagination.PageSize,
		PageSize:     pagination.PageSize,
		TotalRecords: totalRecords,
	}
}
