package kernel

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationOptions carries the requested page window.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps the options to sane bounds.
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p PaginationOptions) Limit() int  { return p.Normalize().PageSize }
func (p PaginationOptions) Offset() int { n := p.Normalize(); return (n.Page - 1) * n.PageSize }

// PageInfo describes the page a result set belongs to.
type PageInfo struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Paginated wraps a page of items with its metadata.
type Paginated[T any] struct {
	Items []T      `json:"items"`
	Page  PageInfo `json:"page"`
	Empty bool     `json:"empty"`
}

// NewPaginated builds a page from items and the total row count.
func NewPaginated[T any](items []T, opts PaginationOptions, total int64) *Paginated[T] {
	opts = opts.Normalize()
	totalPages := int((total + int64(opts.PageSize) - 1) / int64(opts.PageSize))
	return &Paginated[T]{
		Items: items,
		Page: PageInfo{
			Number:     opts.Page,
			Size:       opts.PageSize,
			Total:      total,
			TotalPages: totalPages,
		},
		Empty: len(items) == 0,
	}
}
