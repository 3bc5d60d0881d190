package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbered(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

func TestPaginate_FiftyItemsMakeFivePages(t *testing.T) {
	p := Paginate(numbered(50), 10, 1)

	assert.Equal(t, 5, p.TotalPages)
	assert.Equal(t, 50, p.TotalItems)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, p.Items)
	assert.Equal(t, 1, p.From)
	assert.Equal(t, 10, p.To)
}

func TestPaginate_ClampsPage(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		wantPage  int
		wantFirst int
	}{
		{name: "beyond last page", requested: 6, wantPage: 5, wantFirst: 41},
		{name: "zero", requested: 0, wantPage: 1, wantFirst: 1},
		{name: "negative", requested: -3, wantPage: 1, wantFirst: 1},
		{name: "in range", requested: 3, wantPage: 3, wantFirst: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(numbered(50), 10, tt.requested)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantFirst, p.Items[0])
		})
	}
}

func TestPaginate_PartialLastPage(t *testing.T) {
	p := Paginate(numbered(23), 10, 3)

	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, []int{21, 22, 23}, p.Items)
	assert.Equal(t, 21, p.From)
	assert.Equal(t, 23, p.To)
	assert.False(t, p.HasNext())
	assert.True(t, p.HasPrev())
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]string(nil), 10, 4)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.From)
	assert.Empty(t, p.Window(5))
}

func TestPaginate_DefaultPageSize(t *testing.T) {
	p := Paginate(numbered(12), 0, 1)

	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 2, p.TotalPages)
}

func TestPage_Window(t *testing.T) {
	tests := []struct {
		name  string
		total int
		page  int
		want  []int
	}{
		{name: "fewer pages than window", total: 30, page: 2, want: []int{1, 2, 3}},
		{name: "near start", total: 100, page: 2, want: []int{1, 2, 3, 4, 5}},
		{name: "third page still anchored", total: 100, page: 3, want: []int{1, 2, 3, 4, 5}},
		{name: "centered", total: 100, page: 6, want: []int{4, 5, 6, 7, 8}},
		{name: "near end", total: 100, page: 9, want: []int{6, 7, 8, 9, 10}},
		{name: "last page", total: 100, page: 10, want: []int{6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(numbered(tt.total), 10, tt.page)
			assert.Equal(t, tt.want, p.Window(5))
		})
	}
}
