package request

// CreateEmbroideryRequest registra una orden de bordado. Value viaja como
// string decimal; DeliveryDate en formato 2006-01-02.
type CreateEmbroideryRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Phone        string `json:"phone"`
	Description  string `json:"description" binding:"required"`
	Value        string `json:"value" binding:"required"`
	DeliveryDate string `json:"deliveryDate" binding:"required"`
}
