package port

import (
	"pdv/src/payment/domain/entity"

	"github.com/shopspring/decimal"
)

// PaymentGateway define el contrato contra el API de pagos del back-office.
// El terminal nunca persiste pagos: solo prepara, valida y envía.
type PaymentGateway interface {
	// ListPaymentMethods retorna los métodos de pago habilitados
	ListPaymentMethods(authToken string) ([]entity.PaymentMethod, error)

	// ProcessMultiPayment registra todos los pagos de una venta en una
	// sola operación atómica del lado del back-office
	ProcessMultiPayment(authToken string, submission *entity.PaymentSubmission) (*entity.PaymentConfirmation, error)

	// ListPaymentsBySale retorna los pagos registrados de una venta
	ListPaymentsBySale(authToken string, saleID int64) ([]entity.ProcessedPayment, error)

	// TodayPayments retorna los pagos del día
	TodayPayments(authToken string) ([]entity.ProcessedPayment, error)

	// TodayTotal retorna el total cobrado del día
	TodayTotal(authToken string) (decimal.Decimal, error)
}
