package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultListParams(t *testing.T) {
	params := DefaultListParams("views")
	assert.Equal(t, DefaultPage, params.Page)
	assert.Equal(t, DefaultPerPage, params.PerPage)
	assert.Equal(t, "views", params.SortBy)
	assert.Equal(t, DefaultOrderBy, params.OrderBy)

	params = DefaultListParams("")
	assert.Equal(t, DefaultSortBy, params.SortBy)
}

func TestValidate(t *testing.T) {
	params := ListParams{Page: -3, PerPage: 500, OrderBy: "DESC"}
	params.Validate()

	assert.Equal(t, DefaultPage, params.Page)
	assert.Equal(t, DefaultPerPage, params.PerPage)
	assert.Equal(t, DefaultSortBy, params.SortBy)
	assert.Equal(t, "desc", params.OrderBy)

	params = ListParams{Page: 2, PerPage: 25, SortBy: "views", OrderBy: "bogus"}
	params.Validate()
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 25, params.PerPage)
	assert.Equal(t, DefaultOrderBy, params.OrderBy)
}

func TestCalculateOffset(t *testing.T) {
	params := ListParams{Page: 3, PerPage: 10}
	assert.Equal(t, 20, params.CalculateOffset())

	params = ListParams{}
	assert.Equal(t, 0, params.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(5, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(100, 0))
}
