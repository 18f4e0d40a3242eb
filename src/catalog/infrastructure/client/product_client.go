package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"pdv/src/catalog/domain/entity"
)

// ProductClient cliente HTTP para el API de productos del back-office
type ProductClient struct {
	httpClient *http.Client
	apiURL     string
}

// NewProductClient crea una nueva instancia del cliente
func NewProductClient() *ProductClient {
	apiURL := os.Getenv("BACKOFFICE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8081/api/v1" // Default para entorno local
	}

	return &ProductClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL: apiURL,
	}
}

// ListProducts obtiene el catálogo activo via GET /products
func (c *ProductClient) ListProducts(authToken string) ([]entity.Product, error) {
	return c.getProducts(fmt.Sprintf("%s/products", c.apiURL), authToken)
}

// LowStockProducts obtiene los productos con stock bajo via GET /products/low-stock
func (c *ProductClient) LowStockProducts(authToken string) ([]entity.Product, error) {
	return c.getProducts(fmt.Sprintf("%s/products/low-stock", c.apiURL), authToken)
}

// TopSellingProducts obtiene los más vendidos via GET /products/top-selling
func (c *ProductClient) TopSellingProducts(authToken string, limit int) ([]entity.Product, error) {
	return c.getProducts(fmt.Sprintf("%s/products/top-selling?limit=%d", c.apiURL, limit), authToken)
}

// getProducts ejecuta un GET y parsea una lista de productos
func (c *ProductClient) getProducts(url, authToken string) ([]entity.Product, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling products API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("products API returned status %d: %s", resp.StatusCode, string(body))
	}

	var products []entity.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return products, nil
}
