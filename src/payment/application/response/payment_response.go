package response

import (
	"time"

	"pdv/src/payment/domain/entity"

	"github.com/shopspring/decimal"
)

// SplitStateResponse es el estado completo del split que alimenta la UI
// después de cada mutación
type SplitStateResponse struct {
	SaleID           int64                     `json:"saleId"`
	CustomerName     string                    `json:"customerName"`
	TotalAmount      decimal.Decimal           `json:"totalAmount"`
	Allocations      []entity.TenderAllocation `json:"allocations"`
	CurrentMethod    string                    `json:"currentMethod"`
	CurrentAmount    decimal.Decimal           `json:"currentAmount"`
	TotalPaid        decimal.Decimal           `json:"totalPaid"`
	TotalChange      decimal.Decimal           `json:"totalChange"`
	RemainingBalance decimal.Decimal           `json:"remainingBalance"`
	IsFullyPaid      bool                      `json:"isFullyPaid"`
	RequiredChange   decimal.Decimal           `json:"requiredChange"`
	CanSubmit        bool                      `json:"canSubmit"`
}

// NewSplitStateResponse arma el estado derivado desde el aggregate
func NewSplitStateResponse(split *entity.TenderSplit) *SplitStateResponse {
	return &SplitStateResponse{
		SaleID:           split.SaleID(),
		CustomerName:     split.CustomerName(),
		TotalAmount:      split.TotalAmount(),
		Allocations:      split.Allocations(),
		CurrentMethod:    split.CurrentMethod(),
		CurrentAmount:    split.CurrentAmount(),
		TotalPaid:        split.TotalPaid(),
		TotalChange:      split.TotalChange(),
		RemainingBalance: split.RemainingBalance(),
		IsFullyPaid:      split.IsFullyPaid(),
		RequiredChange:   split.RequiredChange(),
		CanSubmit:        split.CanSubmit(),
	}
}

// ReceiptResponse es el comprobante listo para imprimir que devuelve la
// sumisión del pago múltiple
type ReceiptResponse struct {
	SaleID        int64                     `json:"saleId"`
	CustomerName  string                    `json:"customerName"`
	TotalSale     decimal.Decimal           `json:"totalSale"`
	TotalPaid     decimal.Decimal           `json:"totalPaid"`
	ChangeAmount  decimal.Decimal           `json:"changeAmount"`
	TotalInWords  string                    `json:"totalInWords"`
	Payments      []entity.ProcessedPayment `json:"payments"`
	ProcessedAt   time.Time                 `json:"processedAt"`
}
