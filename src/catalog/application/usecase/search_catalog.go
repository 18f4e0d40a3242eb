package usecase

import (
	"fmt"
	"time"

	"pdv/src/catalog/application/response"
	"pdv/src/catalog/domain/entity"
	"pdv/src/catalog/domain/port"
	"pdv/src/catalog/infrastructure/cache"
	"pdv/src/shared/domain/criteria"
)

// SearchCatalogUseCase es la búsqueda unificada de la caja: productos y
// órdenes de bordado bajo una misma página de resultados. La categoría
// BORDADO redirige la búsqueda al API de bordados; el resto filtra el
// catálogo cacheado en memoria.
type SearchCatalogUseCase struct {
	products     *cache.ProductCache
	embroideries port.EmbroideryGateway
	now          func() time.Time
}

// NewSearchCatalogUseCase crea una nueva instancia del caso de uso
func NewSearchCatalogUseCase(products *cache.ProductCache, embroideries port.EmbroideryGateway) *SearchCatalogUseCase {
	return &SearchCatalogUseCase{
		products:     products,
		embroideries: embroideries,
		now:          time.Now,
	}
}

// Execute busca por término y categoría con paginación
func (uc *SearchCatalogUseCase) Execute(authToken, term string, category entity.Category, page, size int) (*response.CatalogPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	if category == entity.CategoryBordado {
		return uc.searchEmbroideries(authToken, term, page, size)
	}
	return uc.searchProducts(authToken, term, category, page, size)
}

func (uc *SearchCatalogUseCase) searchEmbroideries(authToken, term string, page, size int) (*response.CatalogPage, error) {
	builder := criteria.NewCriteriaBuilder().
		WithOrder("deliveryDate", criteria.ASC).
		WithPagination(page, size)
	if term != "" {
		builder.WithFilter("term", criteria.OpContains, term)
	}

	result, err := uc.embroideries.SearchEmbroideries(authToken, builder.Build())
	if err != nil {
		return nil, fmt.Errorf("error searching embroideries: %w", err)
	}

	now := uc.now()
	items := make([]response.CatalogItem, 0, len(result.Content))
	for idx := range result.Content {
		embroidery := result.Content[idx]
		items = append(items, response.CatalogItem{
			Type:         response.ItemEmbroidery,
			ID:           embroidery.ID,
			Description:  embroidery.Description,
			Price:        embroidery.Value,
			Category:     entity.CategoryBordado,
			Status:       embroidery.Status,
			Overdue:      embroidery.IsOverdue(now),
			CustomerName: embroidery.CustomerName,
		})
	}

	return &response.CatalogPage{
		Items:         items,
		TotalElements: result.TotalElements,
		Page:          page,
		Size:          size,
	}, nil
}

func (uc *SearchCatalogUseCase) searchProducts(authToken, term string, category entity.Category, page, size int) (*response.CatalogPage, error) {
	products, err := uc.products.Products(authToken)
	if err != nil {
		return nil, fmt.Errorf("error loading products: %w", err)
	}

	// El catálogo se filtra y pagina en memoria sobre la copia cacheada
	filtered := make([]entity.Product, 0, len(products))
	for idx := range products {
		product := products[idx]
		if category != "" && product.Category != category {
			continue
		}
		if !product.MatchesTerm(term) {
			continue
		}
		filtered = append(filtered, product)
	}

	start := page * size
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]response.CatalogItem, 0, end-start)
	for _, product := range filtered[start:end] {
		items = append(items, response.CatalogItem{
			Type:        response.ItemProduct,
			ID:          product.ID,
			Description: product.Name,
			Price:       product.Price,
			Category:    product.Category,
			Stock:       product.Stock,
			LowStock:    product.IsLowStock(),
		})
	}

	return &response.CatalogPage{
		Items:         items,
		TotalElements: int64(len(filtered)),
		Page:          page,
		Size:          size,
	}, nil
}
