package cache

import (
	"log"
	"sync"

	"pdv/src/catalog/domain/entity"
	"pdv/src/catalog/domain/port"
)

// ProductCache cache en memoria del catálogo de productos. La búsqueda de
// la caja filtra sobre esta copia local; el cron del bootstrap la refresca
// periódicamente.
type ProductCache struct {
	gateway  port.ProductGateway
	products []entity.Product
	loaded   bool
	mu       sync.RWMutex
}

// NewProductCache crea un nuevo cache de productos
func NewProductCache(gateway port.ProductGateway) *ProductCache {
	return &ProductCache{gateway: gateway}
}

// Refresh recarga el catálogo completo desde el API de productos
func (c *ProductCache) Refresh(authToken string) error {
	log.Println("🔄 Loading product catalog into cache...")

	products, err := c.gateway.ListProducts(authToken)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load products: %v", err)
		return err
	}

	active := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Active {
			active = append(active, p)
		}
	}

	c.mu.Lock()
	c.products = active
	c.loaded = true
	c.mu.Unlock()

	log.Printf("✅ Loaded %d products into cache", len(active))
	return nil
}

// Products retorna una copia del catálogo cacheado. Ante el primer acceso
// con cache frío recarga desde el API.
func (c *ProductCache) Products(authToken string) ([]entity.Product, error) {
	c.mu.RLock()
	if c.loaded {
		out := make([]entity.Product, len(c.products))
		copy(out, c.products)
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	if err := c.Refresh(authToken); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}
