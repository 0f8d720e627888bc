package request

import "strings"

type PaginatedRequest struct {
	Filter  string `json:"filter"`
	Order   string `json:"order" validate:"omitempty,oneof=asc desc ASC DESC"`
	Page    int    `json:"page" validate:"min=1"`
	PerPage int    `json:"per_page" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return 15
	}
	if p.PerPage > 100 {
		return 100
	}
	return p.PerPage
}

// Direction defaults to newest-first listings, like the rest of the API.
func (p PaginatedRequest) Direction() string {
	if strings.EqualFold(p.Order, "asc") {
		return "asc"
	}
	return "desc"
}
