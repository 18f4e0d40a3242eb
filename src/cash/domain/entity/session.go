package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSessionStatus es el estado de una sesión de caja
type CashSessionStatus string

const (
	SessionOpen   CashSessionStatus = "OPEN"
	SessionClosed CashSessionStatus = "CLOSED"
)

// TransactionType es el tipo de movimiento de caja. SUPPLEMENT y WITHDRAWAL
// (sangria) son los únicos que se registran manualmente desde el terminal;
// el resto los genera el back-office.
type TransactionType string

const (
	TransactionOpening    TransactionType = "OPENING"
	TransactionSale       TransactionType = "SALE"
	TransactionChange     TransactionType = "CHANGE"
	TransactionSupplement TransactionType = "SUPPLEMENT"
	TransactionWithdrawal TransactionType = "WITHDRAWAL"
)

// IsManual indica si el tipo puede registrarse desde el terminal
func (t TransactionType) IsManual() bool {
	return t == TransactionSupplement || t == TransactionWithdrawal
}

// CashSession es una sesión de caja del back-office
type CashSession struct {
	ID            int64             `json:"id"`
	UserID        int64             `json:"userId"`
	Status        CashSessionStatus `json:"status"`
	OpenedAt      time.Time         `json:"openedAt"`
	ClosedAt      *time.Time        `json:"closedAt,omitempty"`
	InitialValue  decimal.Decimal   `json:"initialValue"`
	TotalIncomes  decimal.Decimal   `json:"totalIncomes"`
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
	FinalBalance  decimal.Decimal   `json:"finalBalance"`
}

// IsOpen indica si la sesión sigue abierta
func (s *CashSession) IsOpen() bool {
	return s != nil && s.Status == SessionOpen
}

// CashTransaction es un movimiento registrado en una sesión
type CashTransaction struct {
	ID          int64           `json:"id"`
	SessionID   int64           `json:"sessionId"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// MethodExpected es lo que el back-office espera por método al cierre
type MethodExpected struct {
	MethodCode string          `json:"methodCode"`
	Expected   decimal.Decimal `json:"expected"`
}

// CloseSummary es la respuesta de cierre del back-office: la sesión
// cerrada más los montos esperados por método
type CloseSummary struct {
	Session  CashSession      `json:"session"`
	Expected []MethodExpected `json:"expected"`
}
