package usecase

import (
	"fmt"
	"log"

	"pdv/src/checkout/application/response"
	"pdv/src/checkout/domain/entity"
	"pdv/src/checkout/domain/port"
)

// PreparePaymentUseCase deja la venta lista para cobrar: valida el estado
// de la caja, crea (o actualiza) la venta en el back-office y arma el
// PaymentData con el que se abre el split de pagos.
type PreparePaymentUseCase struct {
	saleGateway port.SaleGateway
}

// NewPreparePaymentUseCase crea una nueva instancia del caso de uso
func NewPreparePaymentUseCase(saleGateway port.SaleGateway) *PreparePaymentUseCase {
	return &PreparePaymentUseCase{saleGateway: saleGateway}
}

// Execute valida y registra la venta, y retorna los datos para el pago.
// activeSaleID distinto de cero indica que se está editando una venta
// recuperada: se actualiza en vez de crear.
func (uc *PreparePaymentUseCase) Execute(
	authToken string,
	cart *entity.Cart,
	customerID int64,
	customerName string,
	sessionID int64,
	activeSaleID int64,
) (*response.PaymentData, *entity.Sale, error) {
	if customerID == 0 {
		return nil, nil, entity.ErrCustomerRequired
	}
	if cart.IsEmpty() {
		return nil, nil, entity.ErrEmptyCart
	}
	if sessionID == 0 {
		return nil, nil, entity.ErrNoCashSession
	}

	draft := BuildSaleDraft(cart, customerID, sessionID)

	var sale *entity.Sale
	var err error
	if activeSaleID != 0 {
		log.Printf("🛒 Updating sale %d for payment - Items: %d", activeSaleID, len(draft.Items))
		sale, err = uc.saleGateway.UpdateSale(authToken, activeSaleID, draft)
	} else {
		log.Printf("🛒 Creating sale for payment - Items: %d, Customer: %d", len(draft.Items), customerID)
		sale, err = uc.saleGateway.CreateSale(authToken, draft)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error registering sale: %w", err)
	}

	data := &response.PaymentData{
		SaleID:       sale.ID,
		TotalAmount:  cart.Total(),
		CustomerName: customerName,
		Items:        make([]response.PaymentDataItem, 0, len(cart.Items())),
	}
	for _, item := range cart.Items() {
		data.Items = append(data.Items, response.PaymentDataItem{
			Name:  item.Description,
			Qty:   item.Quantity,
			Price: item.UnitPrice,
			Total: item.Total(),
		})
	}

	return data, sale, nil
}

// BuildSaleDraft traduce el carrito al borrador que entiende el back-office.
// Los bordados viajan con precio manual; los productos comunes no: el
// backend resuelve el precio contra su catálogo.
func BuildSaleDraft(cart *entity.Cart, customerID, sessionID int64) *entity.SaleDraft {
	draft := &entity.SaleDraft{
		CashSessionID: sessionID,
		DiscountType:  cart.DiscountType(),
		DiscountValue: cart.DiscountValue(),
		Items:         make([]entity.SaleDraftItem, 0, len(cart.Items())),
	}
	if customerID != 0 {
		draft.CustomerID = &customerID
	}

	for _, item := range cart.Items() {
		draftItem := entity.SaleDraftItem{
			Quantity:    item.Quantity,
			Description: item.Description,
		}
		if item.IsEmbroidery {
			embroideryID := item.EmbroideryID
			price := item.UnitPrice
			draftItem.EmbroideryID = &embroideryID
			draftItem.ManualPrice = &price
		} else {
			productID := item.ProductID
			draftItem.ProductID = &productID
		}
		draft.Items = append(draft.Items, draftItem)
	}

	return draft
}
