package response

import "video-catalog/internal/data/repository"

type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// PaginationMeta
type PaginationMeta struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	FirstPage   int   `json:"first_page"`
	LastPage    int   `json:"last_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

func NewPaginatedResponse[E, T any](page repository.Page[E], convert func(E) T) *PaginatedResponse[T] {
	mapped := repository.Map(page, convert)

	return &PaginatedResponse[T]{
		Data: mapped.Items,
		Meta: PaginationMeta{
			Total:       mapped.Total,
			CurrentPage: mapped.CurrentPage,
			PerPage:     mapped.PerPage,
			FirstPage:   mapped.FirstPage(),
			LastPage:    mapped.LastPage(),
			From:        mapped.From(),
			To:          mapped.To(),
		},
	}
}
