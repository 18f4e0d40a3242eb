package port

import "pdv/src/checkout/domain/entity"

// SaleGateway define el contrato contra el API de ventas del back-office
type SaleGateway interface {
	// CreateSale registra una venta nueva
	CreateSale(authToken string, draft *entity.SaleDraft) (*entity.Sale, error)

	// UpdateSale actualiza una venta existente (edición desde la caja)
	UpdateSale(authToken string, saleID int64, draft *entity.SaleDraft) (*entity.Sale, error)

	// GetSale obtiene una venta por ID
	GetSale(authToken string, saleID int64) (*entity.Sale, error)

	// SearchSales busca ventas por término (número, cliente)
	SearchSales(authToken, term string, page, size int) ([]entity.Sale, error)

	// UpdateSaleStatus cambia el estado de una venta
	UpdateSaleStatus(authToken string, saleID int64, status entity.SaleStatus) (*entity.Sale, error)
}
