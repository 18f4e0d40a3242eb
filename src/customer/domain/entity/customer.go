package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrCustomerNotFound se retorna cuando el cliente no existe
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerNameRequired se retorna al registrar un cliente sin nombre
	ErrCustomerNameRequired = errors.New("customer name is required")
)

// Customer es un cliente registrado en el back-office
type Customer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

// CustomerStats resume el historial de compras de un cliente
type CustomerStats struct {
	CustomerID     int64           `json:"customerId"`
	TotalPurchases int             `json:"totalPurchases"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	LastPurchase   *time.Time      `json:"lastPurchase,omitempty"`
}

// CustomerSummary son los contadores globales de la cartera de clientes
type CustomerSummary struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// CustomerPage es una página de clientes con el total del back-office
type CustomerPage struct {
	Content       []Customer `json:"content"`
	TotalElements int64      `json:"totalElements"`
}
