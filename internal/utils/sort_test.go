package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSort(t *testing.T) {
	allowed := map[string]bool{"movie_id": true, "title": true, "created_at": true}

	tests := []struct {
		name      string
		field     string
		order     string
		wantField string
		wantOrder string
	}{
		{"allowed field and order", "title", "ASC", "title", "ASC"},
		{"allowed field desc", "movie_id", "DESC", "movie_id", "DESC"},
		{"bogus field falls back", "bogus", "DESC", "created_at", "DESC"},
		{"empty field falls back", "", "ASC", "created_at", "ASC"},
		{"bogus order falls back", "title", "sideways", "title", "DESC"},
		{"lowercase asc falls back", "title", "asc", "title", "DESC"},
		{"both bogus", "vote", "", "created_at", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order := NormalizeSort(tt.field, tt.order, allowed)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}
