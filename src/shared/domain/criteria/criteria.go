package criteria

import (
	"net/url"
	"strconv"
)

// FilterOperator representa el operador de un filtro
type FilterOperator string

const (
	OpEqual    FilterOperator = "="
	OpNotEqual FilterOperator = "!="
	OpContains FilterOperator = "CONTAINS"
	OpIn       FilterOperator = "IN"
)

// OrderType representa la dirección del ordenamiento
type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
)

// Filter representa un filtro individual sobre un campo
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    interface{}
}

// Filters agrupa los filtros de un criteria
type Filters struct {
	Items []Filter
}

// NewFilters crea un conjunto vacío de filtros
func NewFilters() Filters {
	return Filters{Items: []Filter{}}
}

// Add agrega un filtro al conjunto
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty indica si no hay filtros
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// Order representa el ordenamiento de un criteria
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder crea un ordenamiento
func NewOrder(field string, orderType OrderType) Order {
	return Order{Field: field, OrderType: orderType}
}

// IsEmpty indica si no hay ordenamiento
func (o Order) IsEmpty() bool {
	return o.Field == ""
}

// Criteria representa una consulta de búsqueda independiente del transporte
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria crea un criteria completo
func NewCriteria(filters Filters, order Order, limit, offset *int) Criteria {
	return Criteria{
		Filters: filters,
		Order:   order,
		Limit:   limit,
		Offset:  offset,
	}
}

// CriteriaBuilder construye criterias de forma fluida
type CriteriaBuilder struct {
	filters Filters
	order   Order
	limit   *int
	offset  *int
}

// NewCriteriaBuilder crea un builder vacío
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{filters: NewFilters()}
}

// WithFilter agrega un filtro
func (b *CriteriaBuilder) WithFilter(field string, operator FilterOperator, value interface{}) *CriteriaBuilder {
	b.filters.Add(Filter{Field: field, Operator: operator, Value: value})
	return b
}

// WithOrder define el ordenamiento
func (b *CriteriaBuilder) WithOrder(field string, orderType OrderType) *CriteriaBuilder {
	b.order = NewOrder(field, orderType)
	return b
}

// WithPagination define página y tamaño (limit/offset se derivan de page*size)
func (b *CriteriaBuilder) WithPagination(page, size int) *CriteriaBuilder {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	limit := size
	offset := page * size
	b.limit = &limit
	b.offset = &offset
	return b
}

// FromURLValues carga filtros y paginación desde query parameters
// Los parámetros reservados (page, size, sort, dir) no generan filtros
func (b *CriteriaBuilder) FromURLValues(values url.Values) *CriteriaBuilder {
	page := 0
	size := 10

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		switch key {
		case "page":
			if p, err := strconv.Atoi(vals[0]); err == nil {
				page = p
			}
		case "size":
			if s, err := strconv.Atoi(vals[0]); err == nil {
				size = s
			}
		case "sort":
			dir := ASC
			if values.Get("dir") == "DESC" || values.Get("dir") == "desc" {
				dir = DESC
			}
			b.order = NewOrder(vals[0], dir)
		case "dir":
			// Manejado junto con sort
		default:
			b.filters.Add(Filter{Field: key, Operator: OpContains, Value: vals[0]})
		}
	}

	return b.WithPagination(page, size)
}

// Build construye el criteria final
func (b *CriteriaBuilder) Build() Criteria {
	return NewCriteria(b.filters, b.order, b.limit, b.offset)
}

// Page calcula la página a partir de limit/offset
func (c Criteria) Page() int {
	if c.Limit == nil || c.Offset == nil || *c.Limit == 0 {
		return 0
	}
	return *c.Offset / *c.Limit
}

// Size retorna el tamaño de página
func (c Criteria) Size() int {
	if c.Limit == nil {
		return 10
	}
	return *c.Limit
}
