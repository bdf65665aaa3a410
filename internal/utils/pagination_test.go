package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       string
		limit      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"valid values", "3", "20", 3, 20, 40},
		{"first page", "1", "10", 1, 10, 0},
		{"missing both", "", "", 1, 10, 0},
		{"non-numeric page", "abc", "10", 1, 10, 0},
		{"non-numeric limit", "2", "xyz", 2, 10, 10},
		{"zero page", "0", "5", 1, 5, 0},
		{"negative page", "-4", "5", 1, 5, 0},
		{"zero limit", "2", "0", 2, 10, 10},
		{"negative limit", "2", "-1", 2, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GetPagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestGetPaginatedData(t *testing.T) {
	items := []string{"a", "b", "c"}

	t.Run("total pages is ceiling of items over limit", func(t *testing.T) {
		p := GetPagination("1", "10")

		data := GetPaginatedData(items, 25, p, "created_at", "DESC")

		assert.Equal(t, int64(25), data.TotalItems)
		assert.Equal(t, int64(3), data.TotalPages)
		assert.Equal(t, 1, data.Page)
		assert.Equal(t, 10, data.Limit)
	})

	t.Run("exact multiple", func(t *testing.T) {
		p := GetPagination("2", "5")

		data := GetPaginatedData(items, 20, p, "title", "ASC")

		assert.Equal(t, int64(4), data.TotalPages)
	})

	t.Run("empty set", func(t *testing.T) {
		p := GetPagination("1", "10")

		data := GetPaginatedData([]string{}, 0, p, "created_at", "DESC")

		assert.Equal(t, int64(0), data.TotalPages)
	})

	t.Run("echoes effective sort, not raw input", func(t *testing.T) {
		p := GetPagination("bogus", "junk")

		data := GetPaginatedData(items, 3, p, "created_at", "DESC")

		assert.Equal(t, 1, data.Page)
		assert.Equal(t, 10, data.Limit)
		assert.Equal(t, "created_at", data.SortField)
		assert.Equal(t, "DESC", data.SortOrder)
	})
}
