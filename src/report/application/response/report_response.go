package response

import (
	"github.com/shopspring/decimal"

	"pdv/src/payment/domain/entity"
)

// MethodTotal es el total cobrado del día por método de pago
type MethodTotal struct {
	Method string          `json:"method"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// TodayReport resume la jornada del terminal: pagos, totales por método
// y total general
type TodayReport struct {
	Payments  []entity.ProcessedPayment `json:"payments"`
	ByMethod  []MethodTotal             `json:"byMethod"`
	Total     decimal.Decimal           `json:"total"`
	SalesPaid int                       `json:"salesPaid"`
}
