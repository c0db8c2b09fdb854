package domain

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// PageRequest is 1-indexed offset pagination.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize applies defaults and clamps values: page >= 1, limit in
// [1, maxPageLimit], defaulting to 10.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	return p
}

// Offset returns the number of rows to skip: (page-1)*limit.
func (p PageRequest) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// PageMeta describes a page of a filtered listing. Total reflects the
// filtered count before pagination.
type PageMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPageMeta builds listing metadata from a total row count and the
// normalized page request. Pages is ceil(total/limit).
func NewPageMeta(total int, req PageRequest) PageMeta {
	n := req.Normalize()
	pages := (total + n.Limit - 1) / n.Limit
	return PageMeta{
		Total: total,
		Page:  n.Page,
		Limit: n.Limit,
		Pages: pages,
	}
}
