package response

import (
	"pdv/src/checkout/domain/entity"

	"github.com/shopspring/decimal"
)

// CartStateResponse es el estado del carrito que alimenta la pantalla de caja
type CartStateResponse struct {
	Items          []entity.CartItem   `json:"items"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	DiscountType   entity.DiscountType `json:"discountType"`
	DiscountValue  decimal.Decimal     `json:"discountValue"`
	DiscountAmount decimal.Decimal     `json:"discountAmount"`
	Total          decimal.Decimal     `json:"total"`
	CustomerID     int64               `json:"customerId,omitempty"`
	CustomerName   string              `json:"customerName,omitempty"`
	ActiveSaleID   int64               `json:"activeSaleId,omitempty"`
}

// NewCartStateResponse arma el estado derivado del carrito
func NewCartStateResponse(cart *entity.Cart, customerID int64, customerName string, activeSaleID int64) *CartStateResponse {
	return &CartStateResponse{
		Items:          cart.Items(),
		Subtotal:       cart.Subtotal(),
		DiscountType:   cart.DiscountType(),
		DiscountValue:  cart.DiscountValue(),
		DiscountAmount: cart.DiscountAmount(),
		Total:          cart.Total(),
		CustomerID:     customerID,
		CustomerName:   customerName,
		ActiveSaleID:   activeSaleID,
	}
}

// PaymentDataItem resume una línea de la venta para el modal de pago
type PaymentDataItem struct {
	Name  string          `json:"name"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
	Total decimal.Decimal `json:"total"`
}

// PaymentData es lo que la caja entrega al split de pagos: la venta ya
// creada en el back-office más el resumen para exhibición
type PaymentData struct {
	SaleID       int64             `json:"saleId"`
	TotalAmount  decimal.Decimal   `json:"totalAmount"`
	CustomerName string            `json:"customerName"`
	Items        []PaymentDataItem `json:"items"`
}
