package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "/sessions", 1, 20},
		{"explicit values", "/sessions?page=3&page_size=50", 3, 50},
		{"page size clamped to max", "/sessions?page_size=500", 1, 100},
		{"invalid values fall back", "/sessions?page=zero&page_size=-1", 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			p := ParsePagination(req)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(2, 20, 41)
	assert.Equal(t, 3, meta.TotalPages)

	meta = NewPaginationMeta(1, 20, 0)
	assert.Equal(t, 0, meta.TotalPages)

	meta = NewPaginationMeta(1, 0, 10)
	assert.Equal(t, 0, meta.TotalPages)
}
