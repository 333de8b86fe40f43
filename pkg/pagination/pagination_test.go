package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		maxResults *int
		want       Window
	}{
		{name: "first page uncapped", page: 1, want: Window{Offset: 0, Limit: 10}},
		{name: "second page uncapped", page: 2, want: Window{Offset: 10, Limit: 10}},
		{name: "zero page falls back to first", page: 0, want: Window{Offset: 0, Limit: 10}},
		{name: "negative page falls back to first", page: -3, want: Window{Offset: 0, Limit: 10}},
		{name: "cap inside first page", page: 1, maxResults: intPtr(4), want: Window{Offset: 0, Limit: 4}},
		{name: "cap cuts second page", page: 2, maxResults: intPtr(15), want: Window{Offset: 10, Limit: 5}},
		{name: "cap on page boundary", page: 2, maxResults: intPtr(10), want: Window{}},
		{name: "page past cap", page: 5, maxResults: intPtr(12), want: Window{}},
		{name: "overflowing page", page: math.MaxInt, want: Window{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.page, PageSize, tt.maxResults))
		})
	}
}

// The window must select exactly what slicing the capped list would.
func TestPageWindowMatchesSlicing(t *testing.T) {
	rows := make([]int, 37)
	for i := range rows {
		rows[i] = i
	}

	for _, maxResults := range []*int{nil, intPtr(1), intPtr(9), intPtr(10), intPtr(23), intPtr(100)} {
		capped := rows
		effective := len(rows)
		if maxResults != nil {
			if *maxResults < len(capped) {
				capped = capped[:*maxResults]
			}
			effective = *maxResults
		}

		for page := 1; page <= 6; page++ {
			start := (page - 1) * PageSize
			end := min(start+PageSize, effective)
			var want []int
			if start < len(capped) && start < end {
				want = capped[start:min(end, len(capped))]
			}

			w := PageWindow(page, PageSize, maxResults)
			var got []int
			if !w.Empty() && w.Offset < len(rows) {
				got = rows[w.Offset:min(w.Offset+w.Limit, len(rows))]
			}
			assert.Equal(t, want, got, "max=%v page=%d", maxResults, page)
		}
	}
}

func TestWindowEmpty(t *testing.T) {
	assert.True(t, Window{}.Empty())
	assert.False(t, Window{Limit: 1}.Empty())
}
