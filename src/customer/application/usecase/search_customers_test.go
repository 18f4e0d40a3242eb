package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv/src/customer/domain/entity"
	"pdv/src/shared/domain/criteria"
)

type fakeCustomerGateway struct {
	page     *entity.CustomerPage
	lastCrit criteria.Criteria
	calls    int
}

func (g *fakeCustomerGateway) SearchCustomers(authToken string, crit criteria.Criteria) (*entity.CustomerPage, error) {
	g.calls++
	g.lastCrit = crit
	return g.page, nil
}

func (g *fakeCustomerGateway) CreateCustomer(authToken, name, phone string) (*entity.Customer, error) {
	return &entity.Customer{ID: 1, Name: name, Phone: phone, Active: true}, nil
}

func (g *fakeCustomerGateway) CustomerStats(authToken string, customerID int64) (*entity.CustomerStats, error) {
	return &entity.CustomerStats{CustomerID: customerID}, nil
}

func (g *fakeCustomerGateway) CustomerSummary(authToken string) (*entity.CustomerSummary, error) {
	return &entity.CustomerSummary{}, nil
}

func (g *fakeCustomerGateway) ListByStatus(authToken string, active bool, page, size int) (*entity.CustomerPage, error) {
	return g.page, nil
}

func TestShortTermSkipsBackoffice(t *testing.T) {
	gateway := &fakeCustomerGateway{}
	uc := NewSearchCustomersUseCase(gateway)

	result, err := uc.Execute("Bearer tok", "m", 0, 10)

	require.NoError(t, err)
	assert.Empty(t, result.Content)
	assert.Zero(t, gateway.calls)
}

func TestWhitespaceTermSkipsBackoffice(t *testing.T) {
	gateway := &fakeCustomerGateway{}
	uc := NewSearchCustomersUseCase(gateway)

	result, err := uc.Execute("Bearer tok", "   a ", 0, 10)

	require.NoError(t, err)
	assert.Empty(t, result.Content)
	assert.Zero(t, gateway.calls)
}

func TestSearchBuildsCriteria(t *testing.T) {
	gateway := &fakeCustomerGateway{
		page: &entity.CustomerPage{
			Content:       []entity.Customer{{ID: 5, Name: "Maria Silva", Active: true}},
			TotalElements: 1,
		},
	}
	uc := NewSearchCustomersUseCase(gateway)

	result, err := uc.Execute("Bearer tok", "maria", 2, 5)

	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "Maria Silva", result.Content[0].Name)

	crit := gateway.lastCrit
	require.Len(t, crit.Filters.Items, 2)
	assert.Equal(t, "term", crit.Filters.Items[0].Field)
	assert.Equal(t, "maria", crit.Filters.Items[0].Value)
	assert.Equal(t, 2, crit.Page())
	assert.Equal(t, 5, crit.Size())
	assert.Equal(t, "name", crit.Order.Field)
}
