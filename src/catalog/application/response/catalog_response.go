package response

import (
	"github.com/shopspring/decimal"

	"pdv/src/catalog/domain/entity"
)

// Tipos de resultado de la búsqueda unificada de la caja
const (
	ItemProduct    = "PRODUCT"
	ItemEmbroidery = "EMBROIDERY"
)

// CatalogItem es un resultado de búsqueda, producto u orden de bordado
type CatalogItem struct {
	Type         string                  `json:"type"`
	ID           int64                   `json:"id"`
	Description  string                  `json:"description"`
	Price        decimal.Decimal         `json:"price"`
	Category     entity.Category         `json:"category,omitempty"`
	Stock        int                     `json:"stock,omitempty"`
	LowStock     bool                    `json:"lowStock,omitempty"`
	Status       entity.EmbroideryStatus `json:"status,omitempty"`
	Overdue      bool                    `json:"overdue,omitempty"`
	CustomerName string                  `json:"customerName,omitempty"`
}

// CatalogPage es una página de resultados de la búsqueda unificada
type CatalogPage struct {
	Items         []CatalogItem `json:"items"`
	TotalElements int64         `json:"totalElements"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
}
