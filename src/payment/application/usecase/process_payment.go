package usecase

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"pdv/src/payment/application/response"
	"pdv/src/payment/domain/entity"
	"pdv/src/payment/domain/port"
	"pdv/src/payment/infrastructure/cache"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
)

// ProcessPaymentUseCase valida el split de pagos, lo traduce al payload del
// back-office y lo envía. El terminal no hace I/O de persistencia: ante un
// rechazo remoto el split queda intacto para corregir y reintentar.
type ProcessPaymentUseCase struct {
	gateway    port.PaymentGateway
	methods    *cache.PaymentMethodCache
	processing atomic.Bool
}

// NewProcessPaymentUseCase crea una nueva instancia del caso de uso
func NewProcessPaymentUseCase(gateway port.PaymentGateway, methods *cache.PaymentMethodCache) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{
		gateway: gateway,
		methods: methods,
	}
}

// Execute procesa la sumisión del pago múltiple:
// 1. Validar el split (pago completo, sin duplicados, vuelto solo efectivo)
// 2. Mapear código de método → ID numérico del back-office via cache
// 3. POST al API de pagos (única frontera asíncrona del flujo)
// 4. Descartar la respuesta si el split fue reseteado durante el vuelo
// 5. Resetear el split y armar el comprobante
//
// locker protege el split: se suelta durante la llamada de red para que
// cancelar el modal no quede bloqueado detrás de una request lenta.
func (uc *ProcessPaymentUseCase) Execute(authToken string, split *entity.TenderSplit, locker sync.Locker) (*response.ReceiptResponse, error) {
	// Un solo intento en vuelo por vez (la UI deshabilita el botón igual)
	if !uc.processing.CompareAndSwap(false, true) {
		return nil, entity.ErrPaymentInProgress
	}
	defer uc.processing.Store(false)

	locker.Lock()

	if !split.IsFullyPaid() {
		locker.Unlock()
		return nil, entity.ErrSaleNotFullyPaid
	}
	if err := split.Validate(); err != nil {
		locker.Unlock()
		return nil, err
	}

	submission := &entity.PaymentSubmission{
		SaleID:       split.SaleID(),
		TotalAmount:  split.TotalAmount(),
		ChangeAmount: split.TotalChange(),
		Payments:     make([]entity.PaymentItem, 0, len(split.Allocations())),
	}

	for _, alloc := range split.Allocations() {
		if alloc.IsChange {
			continue
		}
		methodID, err := uc.methods.IDByCode(authToken, alloc.Method)
		if err != nil {
			locker.Unlock()
			return nil, fmt.Errorf("error resolving payment method %s: %w", alloc.Method, err)
		}
		submission.Payments = append(submission.Payments, entity.PaymentItem{
			PaymentMethodID: methodID,
			AmountPaid:      alloc.Amount,
		})
	}

	attempt := split.AttemptID()
	customerName := split.CustomerName()

	locker.Unlock()

	log.Printf("💳 Processing multi payment - Sale: %d, Payments: %d, Change: %s",
		submission.SaleID, len(submission.Payments), submission.ChangeAmount)

	confirmation, err := uc.gateway.ProcessMultiPayment(authToken, submission)

	locker.Lock()
	defer locker.Unlock()

	if err != nil {
		// Rechazo remoto (stock, caja cerrada, red): el split se preserva
		log.Printf("❌ Payment submission failed for sale %d: %v", submission.SaleID, err)
		return nil, err
	}

	if split.AttemptID() != attempt {
		// El modal se cerró o se cargó otra venta durante el vuelo
		log.Printf("⚠️  Discarding stale payment response for sale %d", submission.SaleID)
		return nil, entity.ErrStaleSubmission
	}

	split.Reset()
	log.Printf("✅ Payment confirmed - Sale: %d, TotalPaid: %s, Change: %s",
		confirmation.SaleID, confirmation.TotalPaid, confirmation.ChangeAmount)

	return &response.ReceiptResponse{
		SaleID:       confirmation.SaleID,
		CustomerName: customerName,
		TotalSale:    confirmation.TotalSale,
		TotalPaid:    confirmation.TotalPaid,
		ChangeAmount: confirmation.ChangeAmount,
		TotalInWords: amountInWords(confirmation.TotalSale),
		Payments:     confirmation.Payments,
		ProcessedAt:  time.Now(),
	}, nil
}

// amountInWords escribe el monto en palabras para el comprobante impreso
func amountInWords(amount decimal.Decimal) string {
	units := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(units)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return fmt.Sprintf("%s reais %02d centavos", num2words.Convert(int(units)), cents)
}
