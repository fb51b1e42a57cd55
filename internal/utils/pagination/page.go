package pagination

import "math"

const (
	// DefaultPerPage is used when the client does not send per_page.
	DefaultPerPage = 100
	// MaxPerPage caps per_page; selectors ask for up to 800 rows.
	MaxPerPage = 1000
	// MaxPage keeps the OFFSET of any page within int32.
	MaxPage = math.MaxInt32 / MaxPerPage
)

// Params is a normalized page request.
type Params struct {
	Page    int
	PerPage int
}

// Normalize clamps page into [1, MaxPage] and per_page into [1, MaxPerPage].
func Normalize(page, perPage int) Params {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

// Limit is the SQL LIMIT for the page.
func (p Params) Limit() int {
	return p.PerPage
}

// Offset is the SQL OFFSET for the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta is the pagination block of list responses.
type Meta struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// NewMeta builds the response block from the request and the result sizes.
func NewMeta(p Params, total, count int) Meta {
	pages := 0
	if total > 0 {
		pages = (total + p.PerPage - 1) / p.PerPage
	}
	return Meta{
		Total:       total,
		Count:       count,
		PerPage:     p.PerPage,
		CurrentPage: p.Page,
		TotalPages:  pages,
	}
}
