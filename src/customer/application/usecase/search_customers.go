package usecase

import (
	"fmt"
	"strings"

	"pdv/src/customer/domain/entity"
	"pdv/src/customer/domain/port"
	"pdv/src/shared/domain/criteria"
)

// minTermLength evita disparar búsquedas remotas por cada tecla
const minTermLength = 2

// SearchCustomersUseCase busca clientes para asociarlos a la venta
type SearchCustomersUseCase struct {
	gateway port.CustomerGateway
}

// NewSearchCustomersUseCase crea una nueva instancia del caso de uso
func NewSearchCustomersUseCase(gateway port.CustomerGateway) *SearchCustomersUseCase {
	return &SearchCustomersUseCase{gateway: gateway}
}

// Execute busca por nombre o teléfono. Términos de menos de dos caracteres
// retornan una página vacía sin tocar el back-office.
func (uc *SearchCustomersUseCase) Execute(authToken, term string, page, size int) (*entity.CustomerPage, error) {
	term = strings.TrimSpace(term)
	if len(term) < minTermLength {
		return &entity.CustomerPage{Content: []entity.Customer{}}, nil
	}

	crit := criteria.NewCriteriaBuilder().
		WithFilter("term", criteria.OpContains, term).
		WithFilter("active", criteria.OpEqual, "true").
		WithOrder("name", criteria.ASC).
		WithPagination(page, size).
		Build()

	result, err := uc.gateway.SearchCustomers(authToken, crit)
	if err != nil {
		return nil, fmt.Errorf("error searching customers: %w", err)
	}

	return result, nil
}
