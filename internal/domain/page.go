package domain

// PageParams selects one page of an ordered list.
// Page is 1-indexed. Limit is capped at MaxPageLimit by NewPageParams.
type PageParams struct {
	Page  int
	Limit int
}

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// NewPageParams builds PageParams from optional query values.
// Nil or non-positive values fall back to page=1, limit=DefaultPageLimit.
func NewPageParams(page, limit *int) PageParams {
	p := PageParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Bounds returns the half-open [start, end) slice bounds of this page in a
// list of total items. A page past the end yields start == end == total.
func (p PageParams) Bounds(total int) (start, end int) {
	start = min((p.Page-1)*p.Limit, total)
	end = min(start+p.Limit, total)
	return start, end
}

// Pagination describes the page returned alongside a slice of items.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}
