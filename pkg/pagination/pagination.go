// Package pagination is the shared paging contract for every list operation.
// Pages are 1-indexed; limits are clamped server-side so no endpoint can be
// asked for an unbounded result set. Out-of-range pages are not an error:
// they yield an empty page with the correct total.
package pagination

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a normalized page/limit pair.
type Params struct {
	Page  int
	Limit int
}

// Normalize clamps page and limit into the supported range.
func Normalize(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes a page of results relative to the full matching count.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta builds response metadata for params over total matching rows.
func NewMeta(p Params, total int) Meta {
	pages := 0
	if total > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Meta{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages}
}
