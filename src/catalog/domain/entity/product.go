package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category es la categoría de producto del catálogo. BORDADO no es un
// producto real: direcciona la búsqueda hacia las órdenes de bordado.
type Category string

const (
	CategoryCama    Category = "CAMA"
	CategoryMesa    Category = "MESA"
	CategoryBanho   Category = "BANHO"
	CategoryBordado Category = "BORDADO"
)

// Product es un producto del catálogo del back-office
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Active      bool            `json:"active"`
}

// IsLowStock indica si el stock está en o debajo del mínimo
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// MatchesTerm indica si el producto matchea el término de búsqueda por
// nombre o descripción, sin distinguir mayúsculas
func (p *Product) MatchesTerm(term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}
