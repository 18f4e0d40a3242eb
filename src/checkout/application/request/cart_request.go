package request

// AddItemRequest agrega una línea al carrito. UnitPrice viaja como string
// decimal para no perder centavos en el transporte.
type AddItemRequest struct {
	ProductID    int64  `json:"productId"`
	EmbroideryID int64  `json:"embroideryId"`
	Description  string `json:"description" binding:"required"`
	UnitPrice    string `json:"unitPrice" binding:"required"`
	Quantity     int    `json:"quantity"`
	IsEmbroidery bool   `json:"isEmbroidery"`
}

// UpdateQuantityRequest ajusta la cantidad de una línea por delta
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// DiscountRequest define el descuento de la venta
type DiscountRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// SelectCustomerRequest selecciona el cliente de la venta actual
type SelectCustomerRequest struct {
	ID    int64  `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}
