package criteria

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	domainCriteria "pdv/src/shared/domain/criteria"
)

// QueryCriteriaConverter convierte un objeto Criteria en query parameters
// para el API de back-office (reemplaza la generación de SQL: el terminal
// no posee base de datos, toda búsqueda viaja como query string)
type QueryCriteriaConverter struct{}

// NewQueryCriteriaConverter crea una nueva instancia del conversor
func NewQueryCriteriaConverter() *QueryCriteriaConverter {
	return &QueryCriteriaConverter{}
}

// ToURLValues convierte un criteria completo a url.Values
func (q *QueryCriteriaConverter) ToURLValues(criteria domainCriteria.Criteria) url.Values {
	values := url.Values{}

	// Filtros
	if !criteria.Filters.IsEmpty() {
		for _, filter := range criteria.Filters.Items {
			key, val := q.processFilter(filter)
			if key != "" {
				values.Set(key, val)
			}
		}
	}

	// Ordenamiento
	if !criteria.Order.IsEmpty() {
		values.Set("sort", fmt.Sprintf("%s,%s", criteria.Order.Field, strings.ToLower(string(criteria.Order.OrderType))))
	}

	// Paginación
	if criteria.Limit != nil && criteria.Offset != nil {
		values.Set("page", strconv.Itoa(criteria.Page()))
		values.Set("size", strconv.Itoa(criteria.Size()))
	}

	return values
}

// ToQueryString convierte un criteria a query string codificada
func (q *QueryCriteriaConverter) ToQueryString(criteria domainCriteria.Criteria) string {
	return q.ToURLValues(criteria).Encode()
}

// processFilter convierte un filtro en un par key/value de query string
func (q *QueryCriteriaConverter) processFilter(filter domainCriteria.Filter) (string, string) {
	switch filter.Operator {
	case domainCriteria.OpEqual, domainCriteria.OpContains:
		return filter.Field, fmt.Sprintf("%v", filter.Value)
	case domainCriteria.OpNotEqual:
		return filter.Field + "_ne", fmt.Sprintf("%v", filter.Value)
	case domainCriteria.OpIn:
		// Arrays se serializan separados por coma
		if items, ok := filter.Value.([]string); ok {
			return filter.Field, strings.Join(items, ",")
		}
		return filter.Field, fmt.Sprintf("%v", filter.Value)
	default:
		return filter.Field, fmt.Sprintf("%v", filter.Value)
	}
}
