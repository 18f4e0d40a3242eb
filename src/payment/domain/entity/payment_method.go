package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MethodCash es el único código con tratamiento especial: solo el efectivo
// puede generar vuelto. El resto de los códigos los define el back-office
// y se obtienen en runtime, no se codifican acá.
const MethodCash = "CASH"

// PaymentMethod representa un método de pago definido por el back-office
type PaymentMethod struct {
	ID                 int64  `json:"id"`
	Code               string `json:"code"`
	DisplayName        string `json:"displayName"`
	Description        string `json:"description"`
	Active             bool   `json:"active"`
	AllowsChange       bool   `json:"allowsChange"`
	AllowsInstallments bool   `json:"allowsInstallments"`
}

// PaymentItem es un pago individual dentro de una sumisión múltiple
type PaymentItem struct {
	PaymentMethodID int64           `json:"paymentMethodId"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
}

// PaymentSubmission es el payload que se envía al back-office para
// registrar todos los pagos de una venta en una sola operación
type PaymentSubmission struct {
	SaleID       int64           `json:"saleId"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	ChangeAmount decimal.Decimal `json:"changeAmount"`
	Payments     []PaymentItem   `json:"payments"`
}

// ProcessedPayment es un pago individual confirmado por el back-office
type ProcessedPayment struct {
	ID            int64           `json:"id"`
	SaleID        int64           `json:"saleId"`
	PaymentMethod string          `json:"paymentMethod"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	ChangeAmount  decimal.Decimal `json:"changeAmount"`
	PaymentDate   time.Time       `json:"paymentDate"`
}

// PaymentConfirmation es la confirmación del pago múltiple
type PaymentConfirmation struct {
	SaleID       int64              `json:"saleId"`
	TotalSale    decimal.Decimal    `json:"totalSale"`
	TotalPaid    decimal.Decimal    `json:"totalPaid"`
	ChangeAmount decimal.Decimal    `json:"changeAmount"`
	Payments     []ProcessedPayment `json:"payments"`
}
