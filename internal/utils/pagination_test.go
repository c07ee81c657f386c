// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(query string) PaginationParams {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  PaginationParams
	}{
		{
			name:  "defaults",
			query: "",
			want:  PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"},
		},
		{
			name:  "explicit values",
			query: "page=3&limit=50&sort=price&order=asc&search=nike",
			want:  PaginationParams{Page: 3, Limit: 50, Sort: "price", Order: "asc", Search: "nike"},
		},
		{
			name:  "page below one",
			query: "page=0",
			want:  PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"},
		},
		{
			name:  "limit above cap",
			query: "limit=500",
			want:  PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"},
		},
		{
			name:  "invalid order",
			query: "order=sideways",
			want:  PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paramsForQuery(tt.query))
		})
	}
}

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 20}
	result := CreatePaginationResult([]string{"a"}, 41, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, int64(41), result.Total)
	assert.Equal(t, 3, result.TotalPages)

	empty := CreatePaginationResult(nil, 0, params)
	assert.Equal(t, 0, empty.TotalPages)
}
