package usecase

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"pdv/src/cash/domain/entity"
	"pdv/src/cash/domain/port"
)

// SessionRecorder guarda la referencia local a la sesión activa
type SessionRecorder interface {
	Remember(sessionID int64) error
	Forget() error
}

// OpenSessionUseCase abre la caja del terminal
type OpenSessionUseCase struct {
	gateway  port.CashGateway
	recorder SessionRecorder
}

// NewOpenSessionUseCase crea una nueva instancia del caso de uso
func NewOpenSessionUseCase(gateway port.CashGateway, recorder SessionRecorder) *OpenSessionUseCase {
	return &OpenSessionUseCase{gateway: gateway, recorder: recorder}
}

// Execute abre una sesión con el fondo inicial dado. Falla si ya hay una
// sesión abierta para el usuario.
func (uc *OpenSessionUseCase) Execute(authToken string, initialValue decimal.Decimal) (*entity.CashSession, error) {
	if initialValue.LessThan(decimal.Zero) {
		return nil, entity.ErrInvalidInitialValue
	}

	current, err := uc.gateway.ActiveSession(authToken)
	if err != nil {
		return nil, fmt.Errorf("error checking active session: %w", err)
	}
	if current.IsOpen() {
		return nil, entity.ErrSessionAlreadyOpen
	}

	session, err := uc.gateway.OpenSession(authToken, initialValue)
	if err != nil {
		return nil, fmt.Errorf("error opening cash session: %w", err)
	}

	if err := uc.recorder.Remember(session.ID); err != nil {
		log.Printf("⚠️ Could not record cash session locally: %v", err)
	}

	log.Printf("✅ Cash session %d opened - Initial: %s", session.ID, initialValue)
	return session, nil
}
