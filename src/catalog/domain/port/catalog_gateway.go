package port

import (
	"pdv/src/catalog/domain/entity"
	"pdv/src/shared/domain/criteria"
)

// ProductGateway define el contrato contra el API de productos del back-office
type ProductGateway interface {
	// ListProducts retorna el catálogo activo completo
	ListProducts(authToken string) ([]entity.Product, error)

	// LowStockProducts retorna los productos en o debajo del stock mínimo
	LowStockProducts(authToken string) ([]entity.Product, error)

	// TopSellingProducts retorna los productos más vendidos
	TopSellingProducts(authToken string, limit int) ([]entity.Product, error)
}

// EmbroideryGateway define el contrato contra el API de bordados del back-office
type EmbroideryGateway interface {
	// SearchEmbroideries busca órdenes según el criteria dado
	SearchEmbroideries(authToken string, crit criteria.Criteria) (*entity.EmbroideryPage, error)

	// GetEmbroidery obtiene una orden por ID
	GetEmbroidery(authToken string, id int64) (*entity.Embroidery, error)

	// CreateEmbroidery registra una orden nueva, con imagen de referencia opcional
	CreateEmbroidery(authToken string, draft *entity.EmbroideryDraft, image []byte, imageName string) (*entity.Embroidery, error)

	// EmbroideryImage descarga la imagen de referencia de una orden.
	// Retorna los bytes y el content type.
	EmbroideryImage(authToken string, id int64) ([]byte, string, error)

	// DeleteEmbroidery elimina una orden
	DeleteEmbroidery(authToken string, id int64) error
}
