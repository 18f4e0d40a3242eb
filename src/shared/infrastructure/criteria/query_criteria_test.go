package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainCriteria "pdv/src/shared/domain/criteria"
)

func TestToURLValues(t *testing.T) {
	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("term", domainCriteria.OpContains, "maria").
		WithFilter("status", domainCriteria.OpEqual, "PENDING").
		WithOrder("deliveryDate", domainCriteria.ASC).
		WithPagination(1, 20).
		Build()

	values := NewQueryCriteriaConverter().ToURLValues(crit)

	assert.Equal(t, "maria", values.Get("term"))
	assert.Equal(t, "PENDING", values.Get("status"))
	assert.Equal(t, "deliveryDate,asc", values.Get("sort"))
	assert.Equal(t, "1", values.Get("page"))
	assert.Equal(t, "20", values.Get("size"))
}

func TestNotEqualFilterGetsSuffix(t *testing.T) {
	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("status", domainCriteria.OpNotEqual, "CANCELLED").
		Build()

	values := NewQueryCriteriaConverter().ToURLValues(crit)

	assert.Equal(t, "CANCELLED", values.Get("status_ne"))
}

func TestInFilterJoinsValues(t *testing.T) {
	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("category", domainCriteria.OpIn, []string{"CAMA", "MESA"}).
		Build()

	values := NewQueryCriteriaConverter().ToURLValues(crit)

	assert.Equal(t, "CAMA,MESA", values.Get("category"))
}

func TestEmptyCriteriaProducesEmptyQuery(t *testing.T) {
	crit := domainCriteria.NewCriteriaBuilder().Build()

	query := NewQueryCriteriaConverter().ToQueryString(crit)

	assert.Empty(t, query)
}
