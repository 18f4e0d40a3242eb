package usecase

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"pdv/src/cash/application/response"
	"pdv/src/cash/domain/entity"
	"pdv/src/cash/domain/port"
)

// CloseSessionUseCase cierra la caja y confronta el conteo del cajero
// contra lo que el back-office esperaba por método
type CloseSessionUseCase struct {
	gateway  port.CashGateway
	recorder SessionRecorder
}

// NewCloseSessionUseCase crea una nueva instancia del caso de uso
func NewCloseSessionUseCase(gateway port.CashGateway, recorder SessionRecorder) *CloseSessionUseCase {
	return &CloseSessionUseCase{gateway: gateway, recorder: recorder}
}

// Execute cierra la sesión. counted mapea código de método al monto contado
// por el cajero; los métodos esperados sin conteo comparan contra cero.
func (uc *CloseSessionUseCase) Execute(authToken string, sessionID int64, counted map[string]decimal.Decimal) (*response.CloseSessionResponse, error) {
	if sessionID == 0 {
		return nil, entity.ErrNoOpenSession
	}
	if len(counted) == 0 {
		return nil, entity.ErrCountRequired
	}

	summary, err := uc.gateway.CloseSession(authToken, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error closing cash session: %w", err)
	}

	result := &response.CloseSessionResponse{
		Session:     summary.Session,
		Comparisons: make([]response.MethodComparison, 0, len(summary.Expected)),
		Balanced:    true,
	}

	seen := make(map[string]bool, len(summary.Expected))
	for _, expected := range summary.Expected {
		seen[expected.MethodCode] = true
		count := counted[expected.MethodCode]
		diff := count.Sub(expected.Expected)
		if !diff.IsZero() {
			result.Balanced = false
		}
		result.Comparisons = append(result.Comparisons, response.MethodComparison{
			MethodCode: expected.MethodCode,
			Expected:   expected.Expected,
			Counted:    count,
			Difference: diff,
		})
	}

	// Conteos de métodos que el backend no esperaba cuentan como sobrante
	for code, count := range counted {
		if seen[code] || count.IsZero() {
			continue
		}
		result.Balanced = false
		result.Comparisons = append(result.Comparisons, response.MethodComparison{
			MethodCode: code,
			Expected:   decimal.Zero,
			Counted:    count,
			Difference: count,
		})
	}

	if err := uc.recorder.Forget(); err != nil {
		log.Printf("⚠️ Could not clear local cash session: %v", err)
	}

	log.Printf("✅ Cash session %d closed - Balanced: %v", sessionID, result.Balanced)
	return result, nil
}
