package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		total    int64
		page     int
		perPage  int
		lastPage int
		from     int
		to       int
	}{
		{name: "first full page", items: []int{1, 2, 3}, total: 7, page: 1, perPage: 3, lastPage: 3, from: 1, to: 3},
		{name: "partial last page", items: []int{7}, total: 7, page: 3, perPage: 3, lastPage: 3, from: 7, to: 7},
		{name: "empty result", items: nil, total: 0, page: 1, perPage: 15, lastPage: 1, from: 0, to: 0},
		{name: "page past the end", items: nil, total: 4, page: 5, perPage: 2, lastPage: 2, from: 0, to: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.items, tt.total, tt.page, tt.perPage)

			assert.Equal(t, 1, p.FirstPage())
			assert.Equal(t, tt.lastPage, p.LastPage())
			assert.Equal(t, tt.from, p.From())
			assert.Equal(t, tt.to, p.To())
			assert.NotNil(t, p.Items)
		})
	}
}

func TestMap(t *testing.T) {
	p := NewPage([]int{1, 2}, 10, 2, 2)

	mapped := Map(p, func(i int) string { return string(rune('a' + i)) })

	assert.Equal(t, []string{"b", "c"}, mapped.Items)
	assert.Equal(t, int64(10), mapped.Total)
	assert.Equal(t, 2, mapped.CurrentPage)
	assert.Equal(t, 3, mapped.From())
}

func TestNormalizePage(t *testing.T) {
	page, perPage := normalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPerPage, perPage)

	_, perPage = normalizePage(2, 1000)
	assert.Equal(t, MaxPerPage, perPage)
}

func TestOrderDirection(t *testing.T) {
	assert.Equal(t, "ASC", orderDirection(" asc "))
	assert.Equal(t, "DESC", orderDirection("desc"))
	assert.Equal(t, "DESC", orderDirection("; DROP TABLE videos"))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%50\% off\_x%`, likePattern(" 50% off_x "))
}

func TestParseIDs(t *testing.T) {
	ids := parseIDs([]string{
		"6F1C1C7E-9B5A-4F55-9A7E-0E7C3C1B2A10",
		"6f1c1c7e-9b5a-4f55-9a7e-0e7c3c1b2a10",
		"not-a-uuid",
	})

	assert.Equal(t, []string{"6f1c1c7e-9b5a-4f55-9a7e-0e7c3c1b2a10"}, ids)
}
