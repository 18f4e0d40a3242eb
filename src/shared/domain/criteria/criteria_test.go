package criteria

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderWithPagination(t *testing.T) {
	crit := NewCriteriaBuilder().
		WithFilter("term", OpContains, "toalha").
		WithOrder("name", ASC).
		WithPagination(2, 5).
		Build()

	require.Len(t, crit.Filters.Items, 1)
	assert.Equal(t, 2, crit.Page())
	assert.Equal(t, 5, crit.Size())
	require.NotNil(t, crit.Offset)
	assert.Equal(t, 10, *crit.Offset)
}

func TestPaginationDefaults(t *testing.T) {
	crit := NewCriteriaBuilder().WithPagination(-1, 0).Build()

	assert.Equal(t, 0, crit.Page())
	assert.Equal(t, 10, crit.Size())
}

func TestFromURLValues(t *testing.T) {
	values := url.Values{}
	values.Set("term", "maria")
	values.Set("status", "PENDING")
	values.Set("page", "1")
	values.Set("size", "20")
	values.Set("sort", "deliveryDate")
	values.Set("dir", "DESC")

	crit := NewCriteriaBuilder().FromURLValues(values).Build()

	assert.Len(t, crit.Filters.Items, 2)
	assert.Equal(t, "deliveryDate", crit.Order.Field)
	assert.Equal(t, DESC, crit.Order.OrderType)
	assert.Equal(t, 1, crit.Page())
	assert.Equal(t, 20, crit.Size())
}

func TestFromURLValuesIgnoresEmpty(t *testing.T) {
	values := url.Values{}
	values.Set("term", "")

	crit := NewCriteriaBuilder().FromURLValues(values).Build()

	assert.True(t, crit.Filters.IsEmpty())
}

func TestPageWithoutPagination(t *testing.T) {
	crit := NewCriteriaBuilder().Build()

	assert.Equal(t, 0, crit.Page())
	assert.Equal(t, 10, crit.Size())
}
