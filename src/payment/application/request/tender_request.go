package request

import "github.com/shopspring/decimal"

// OpenSplitRequest son los datos de la venta con los que se abre el split
// de pagos (lo que el flujo de caja entrega al "modal" de pago)
type OpenSplitRequest struct {
	SaleID       int64               `json:"saleId" binding:"required"`
	TotalAmount  decimal.Decimal     `json:"totalAmount"`
	CustomerName string              `json:"customerName"`
	Items        []OpenSplitItemInfo `json:"items"`
}

// OpenSplitItemInfo resumen de un item de la venta (solo exhibición)
type OpenSplitItemInfo struct {
	Name  string          `json:"name"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
	Total decimal.Decimal `json:"total"`
}

// SelectMethodRequest selecciona el método de pago en edición
type SelectMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// SetAmountRequest fija el monto en edición. Se acepta string para tolerar
// entradas no numéricas del teclado de la caja (coercionan a cero)
type SetAmountRequest struct {
	Amount string `json:"amount"`
}
