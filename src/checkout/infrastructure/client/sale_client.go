package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"pdv/src/checkout/domain/entity"
)

// SaleClient cliente HTTP para el API de ventas del back-office
type SaleClient struct {
	httpClient *http.Client
	apiURL     string
}

// NewSaleClient crea una nueva instancia del cliente
func NewSaleClient() *SaleClient {
	apiURL := os.Getenv("BACKOFFICE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8081/api/v1" // Default para entorno local
	}

	return &SaleClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL: apiURL,
	}
}

// CreateSale registra una venta via POST /sales
func (c *SaleClient) CreateSale(authToken string, draft *entity.SaleDraft) (*entity.Sale, error) {
	url := fmt.Sprintf("%s/sales", c.apiURL)
	return c.doSaleRequest("POST", url, authToken, draft)
}

// UpdateSale actualiza una venta via PUT /sales/:id
func (c *SaleClient) UpdateSale(authToken string, saleID int64, draft *entity.SaleDraft) (*entity.Sale, error) {
	url := fmt.Sprintf("%s/sales/%d", c.apiURL, saleID)
	return c.doSaleRequest("PUT", url, authToken, draft)
}

// GetSale obtiene una venta via GET /sales/:id
func (c *SaleClient) GetSale(authToken string, saleID int64) (*entity.Sale, error) {
	url := fmt.Sprintf("%s/sales/%d", c.apiURL, saleID)

	body, err := c.doGet(url, authToken)
	if err != nil {
		return nil, err
	}

	var sale entity.Sale
	if err := json.Unmarshal(body, &sale); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &sale, nil
}

// SearchSales busca ventas via GET /sales/search
func (c *SaleClient) SearchSales(authToken, term string, page, size int) ([]entity.Sale, error) {
	params := url.Values{}
	params.Set("term", term)
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	searchURL := fmt.Sprintf("%s/sales/search?%s", c.apiURL, params.Encode())

	body, err := c.doGet(searchURL, authToken)
	if err != nil {
		return nil, err
	}

	// El backend pagina al estilo Spring: content + totalElements
	var paged struct {
		Content []entity.Sale `json:"content"`
	}
	if err := json.Unmarshal(body, &paged); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return paged.Content, nil
}

// UpdateSaleStatus cambia el estado via PATCH /sales/:id/status
func (c *SaleClient) UpdateSaleStatus(authToken string, saleID int64, status entity.SaleStatus) (*entity.Sale, error) {
	payload := map[string]entity.SaleStatus{"status": status}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/sales/%d/status", c.apiURL, saleID)

	req, err := http.NewRequest("PATCH", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling sales API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sales API returned status %d: %s", resp.StatusCode, string(body))
	}

	var sale entity.Sale
	if err := json.Unmarshal(body, &sale); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &sale, nil
}

// doSaleRequest ejecuta POST/PUT de un borrador y parsea la venta resultante
func (c *SaleClient) doSaleRequest(method, url, authToken string, draft *entity.SaleDraft) (*entity.Sale, error) {
	jsonData, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	req, err := http.NewRequest(method, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling sales API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("sales API returned status %d: %s", resp.StatusCode, string(body))
	}

	var sale entity.Sale
	if err := json.Unmarshal(body, &sale); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &sale, nil
}

// doGet ejecuta un GET con Authorization y retorna el body en caso de 200
func (c *SaleClient) doGet(url, authToken string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling sales API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sales API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
