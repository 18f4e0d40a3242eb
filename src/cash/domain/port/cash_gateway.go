package port

import (
	"github.com/shopspring/decimal"

	"pdv/src/cash/domain/entity"
)

// CashGateway define el contrato contra el API de caja del back-office
type CashGateway interface {
	// OpenSession abre una sesión con el fondo inicial dado. El usuario
	// lo resuelve el backend a partir del token.
	OpenSession(authToken string, initialValue decimal.Decimal) (*entity.CashSession, error)

	// ActiveSession retorna la sesión abierta del usuario, o nil si no hay
	ActiveSession(authToken string) (*entity.CashSession, error)

	// RegisterTransaction registra un movimiento manual en la sesión
	RegisterTransaction(authToken string, sessionID int64, txType entity.TransactionType, amount decimal.Decimal, description string) (*entity.CashTransaction, error)

	// CloseSession cierra la sesión y retorna el resumen con los montos
	// esperados por método
	CloseSession(authToken string, sessionID int64) (*entity.CloseSummary, error)
}
