package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOrderNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SortNewest, SortNewest.Normalize())
	assert.Equal(t, SortOldest, SortOldest.Normalize())
	assert.Equal(t, SortNewest, SortOrder("").Normalize())
	assert.Equal(t, SortNewest, SortOrder("bogus").Normalize())
}

func TestListQueryOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    ListQuery
		want int
	}{
		{"first page", ListQuery{Page: 1, PageSize: 10}, 0},
		{"second page", ListQuery{Page: 2, PageSize: 10}, 10},
		{"fifth page of twenty", ListQuery{Page: 5, PageSize: 20}, 80},
		{"zero page clamps to first", ListQuery{Page: 0, PageSize: 10}, 0},
		{"negative page clamps to first", ListQuery{Page: -3, PageSize: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.q.Offset())
		})
	}
}
