package port

import (
	"pdv/src/customer/domain/entity"
	"pdv/src/shared/domain/criteria"
)

// CustomerGateway define el contrato contra el API de clientes del back-office
type CustomerGateway interface {
	// SearchCustomers busca clientes según el criteria dado
	SearchCustomers(authToken string, crit criteria.Criteria) (*entity.CustomerPage, error)

	// CreateCustomer registra un cliente nuevo (alta rápida desde la caja)
	CreateCustomer(authToken, name, phone string) (*entity.Customer, error)

	// CustomerStats obtiene el resumen de compras de un cliente
	CustomerStats(authToken string, customerID int64) (*entity.CustomerStats, error)

	// CustomerSummary obtiene los contadores total/activos/inactivos
	CustomerSummary(authToken string) (*entity.CustomerSummary, error)

	// ListByStatus lista clientes filtrados por estado
	ListByStatus(authToken string, active bool, page, size int) (*entity.CustomerPage, error)
}
