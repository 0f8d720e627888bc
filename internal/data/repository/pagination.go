package repository

import (
	"strings"

	"video-catalog/pkg/utils"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items       []T
	Total       int64
	CurrentPage int
	PerPage     int
}

func NewPage[T any](items []T, total int64, page, perPage int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, CurrentPage: page, PerPage: perPage}
}

func (p Page[T]) FirstPage() int {
	return 1
}

func (p Page[T]) LastPage() int {
	if last := utils.CalculateTotalPages(p.Total, p.PerPage); last > 1 {
		return last
	}
	return 1
}

// From is the 1-based position of the first item on the page, 0 when the page is empty.
func (p Page[T]) From() int {
	if len(p.Items) == 0 {
		return 0
	}
	return utils.CalculateOffset(p.CurrentPage, p.PerPage) + 1
}

// To is the position of the last item on the page, 0 when the page is empty.
func (p Page[T]) To() int {
	if len(p.Items) == 0 {
		return 0
	}
	return p.From() + len(p.Items) - 1
}

// Map converts the items, keeping the pagination numbers.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, len(p.Items))
	for i, item := range p.Items {
		out[i] = fn(item)
	}
	return Page[R]{Items: out, Total: p.Total, CurrentPage: p.CurrentPage, PerPage: p.PerPage}
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// orderDirection only ever returns a literal, so it is safe to splice into SQL.
func orderDirection(order string) string {
	if strings.EqualFold(strings.TrimSpace(order), "asc") {
		return "ASC"
	}
	return "DESC"
}

func likePattern(filter string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.TrimSpace(filter)) + "%"
}
