package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus es el estado de una venta en el back-office
type SaleStatus string

const (
	SalePending   SaleStatus = "PENDING"
	SalePaid      SaleStatus = "PAID"
	SaleCancelled SaleStatus = "CANCELLED"
)

// SaleDraftItem es una línea del borrador de venta que se envía al
// back-office. ManualPrice solo viaja para bordados: el precio de los
// productos comunes lo resuelve el backend contra su catálogo.
type SaleDraftItem struct {
	ProductID    *int64           `json:"productId"`
	EmbroideryID *int64           `json:"embroideryId"`
	Quantity     int              `json:"quantity"`
	ManualPrice  *decimal.Decimal `json:"manualPrice,omitempty"`
	Description  string           `json:"description"`
}

// SaleDraft es el borrador que crea o actualiza una venta remota
type SaleDraft struct {
	CustomerID    *int64          `json:"customerId"`
	CashSessionID int64           `json:"cashSessionId"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	Items         []SaleDraftItem `json:"items"`
}

// SaleItem es una línea de venta confirmada por el back-office
type SaleItem struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"productId"`
	EmbroideryID int64           `json:"embroideryId"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
}

// Sale es una venta registrada en el back-office
type Sale struct {
	ID            int64           `json:"id"`
	DateSale      time.Time       `json:"dateSale"`
	CustomerID    int64           `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	Total         decimal.Decimal `json:"total"`
	SaleStatus    SaleStatus      `json:"saleStatus"`
}
