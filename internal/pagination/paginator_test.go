package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name            string
		totalItems      int
		pageSize        int
		pageNumber      int
		wantItems       int
		wantNumber      int
		wantTotalPages  int
		wantHasNext     bool
		wantHasPrevious bool
	}{
		{
			name:       "first of three pages",
			totalItems: 25, pageSize: 10, pageNumber: 1,
			wantItems: 10, wantNumber: 1, wantTotalPages: 3,
			wantHasNext: true, wantHasPrevious: false,
		},
		{
			name:       "partial last page",
			totalItems: 25, pageSize: 10, pageNumber: 3,
			wantItems: 5, wantNumber: 3, wantTotalPages: 3,
			wantHasNext: false, wantHasPrevious: true,
		},
		{
			name:       "full last page when count divides evenly",
			totalItems: 20, pageSize: 10, pageNumber: 2,
			wantItems: 10, wantNumber: 2, wantTotalPages: 2,
			wantHasNext: false, wantHasPrevious: true,
		},
		{
			name:       "page zero clamps to first",
			totalItems: 25, pageSize: 10, pageNumber: 0,
			wantItems: 10, wantNumber: 1, wantTotalPages: 3,
			wantHasNext: true, wantHasPrevious: false,
		},
		{
			name:       "page beyond the end clamps to last",
			totalItems: 25, pageSize: 10, pageNumber: 99,
			wantItems: 5, wantNumber: 3, wantTotalPages: 3,
			wantHasNext: false, wantHasPrevious: true,
		},
		{
			name:       "empty snapshot renders one empty page",
			totalItems: 0, pageSize: 10, pageNumber: 1,
			wantItems: 0, wantNumber: 1, wantTotalPages: 1,
			wantHasNext: false, wantHasPrevious: false,
		},
		{
			name:       "fewer items than one page",
			totalItems: 3, pageSize: 10, pageNumber: 1,
			wantItems: 3, wantNumber: 1, wantTotalPages: 1,
			wantHasNext: false, wantHasPrevious: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(makeItems(tt.totalItems), tt.pageSize, tt.pageNumber)

			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantTotalPages, page.TotalPages)
			assert.Equal(t, tt.totalItems, page.TotalItems)
			assert.Equal(t, tt.wantHasNext, page.HasNext)
			assert.Equal(t, tt.wantHasPrevious, page.HasPrevious)
		})
	}
}

func TestPaginatePreservesOrder(t *testing.T) {
	page := Paginate(makeItems(25), 10, 2)
	assert.Equal(t, 10, page.Items[0])
	assert.Equal(t, 19, page.Items[9])
}

// ceil(N/P) pages, last page N mod P items (or P when N divides evenly).
func TestPaginatePageArithmetic(t *testing.T) {
	const pageSize = 10
	for n := 1; n <= 45; n++ {
		wantPages := (n + pageSize - 1) / pageSize
		wantLast := n % pageSize
		if wantLast == 0 {
			wantLast = pageSize
		}

		last := Paginate(makeItems(n), pageSize, wantPages)
		assert.Equal(t, wantPages, last.TotalPages, "n=%d", n)
		assert.Len(t, last.Items, wantLast, "n=%d", n)
		assert.False(t, last.HasNext, "n=%d", n)
	}
}
