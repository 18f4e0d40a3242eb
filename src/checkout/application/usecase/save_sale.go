package usecase

import (
	"fmt"
	"log"

	"pdv/src/checkout/domain/entity"
	"pdv/src/checkout/domain/port"
)

// SaveSaleUseCase guarda la venta como pendiente sin pasar por el pago
// (el cliente retira después, típico en órdenes de bordado)
type SaveSaleUseCase struct {
	saleGateway port.SaleGateway
}

// NewSaveSaleUseCase crea una nueva instancia del caso de uso
func NewSaveSaleUseCase(saleGateway port.SaleGateway) *SaveSaleUseCase {
	return &SaveSaleUseCase{saleGateway: saleGateway}
}

// Execute crea o actualiza la venta y la deja en estado PENDING
func (uc *SaveSaleUseCase) Execute(
	authToken string,
	cart *entity.Cart,
	customerID int64,
	sessionID int64,
	activeSaleID int64,
) (*entity.Sale, error) {
	if cart.IsEmpty() {
		return nil, entity.ErrEmptyCart
	}
	if sessionID == 0 {
		return nil, entity.ErrNoCashSession
	}

	draft := BuildSaleDraft(cart, customerID, sessionID)

	var sale *entity.Sale
	var err error
	if activeSaleID != 0 {
		sale, err = uc.saleGateway.UpdateSale(authToken, activeSaleID, draft)
	} else {
		sale, err = uc.saleGateway.CreateSale(authToken, draft)
	}
	if err != nil {
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	log.Printf("✅ Sale %d saved as pending", sale.ID)
	return sale, nil
}
