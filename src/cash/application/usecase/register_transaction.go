package usecase

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"pdv/src/cash/domain/entity"
	"pdv/src/cash/domain/port"
)

// RegisterTransactionUseCase registra suprimentos y sangrias en la sesión
type RegisterTransactionUseCase struct {
	gateway port.CashGateway
}

// NewRegisterTransactionUseCase crea una nueva instancia del caso de uso
func NewRegisterTransactionUseCase(gateway port.CashGateway) *RegisterTransactionUseCase {
	return &RegisterTransactionUseCase{gateway: gateway}
}

// Execute valida y registra un movimiento manual
func (uc *RegisterTransactionUseCase) Execute(
	authToken string,
	sessionID int64,
	txType entity.TransactionType,
	amount decimal.Decimal,
	description string,
) (*entity.CashTransaction, error) {
	if sessionID == 0 {
		return nil, entity.ErrNoOpenSession
	}
	if !txType.IsManual() {
		return nil, entity.ErrInvalidTransactionType
	}
	if !amount.GreaterThan(decimal.Zero) {
		return nil, entity.ErrInvalidTransactionAmount
	}

	tx, err := uc.gateway.RegisterTransaction(authToken, sessionID, txType, amount, description)
	if err != nil {
		return nil, fmt.Errorf("error registering transaction: %w", err)
	}

	log.Printf("💳 Cash transaction registered - Session: %d, Type: %s, Amount: %s", sessionID, txType, amount)
	return tx, nil
}
