package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"pdv/src/customer/domain/entity"
	"pdv/src/shared/domain/criteria"
	infraCriteria "pdv/src/shared/infrastructure/criteria"
)

// CustomerClient cliente HTTP para el API de clientes del back-office
type CustomerClient struct {
	httpClient *http.Client
	apiURL     string
	converter  *infraCriteria.QueryCriteriaConverter
}

// NewCustomerClient crea una nueva instancia del cliente
func NewCustomerClient() *CustomerClient {
	apiURL := os.Getenv("BACKOFFICE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8081/api/v1" // Default para entorno local
	}

	return &CustomerClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL:    apiURL,
		converter: infraCriteria.NewQueryCriteriaConverter(),
	}
}

// SearchCustomers busca clientes via GET /customers con el criteria
// serializado como query string
func (c *CustomerClient) SearchCustomers(authToken string, crit criteria.Criteria) (*entity.CustomerPage, error) {
	url := fmt.Sprintf("%s/customers?%s", c.apiURL, c.converter.ToQueryString(crit))

	body, err := c.doGet(url, authToken)
	if err != nil {
		return nil, err
	}

	var page entity.CustomerPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &page, nil
}

// CreateCustomer registra un cliente via POST /customers
func (c *CustomerClient) CreateCustomer(authToken, name, phone string) (*entity.Customer, error) {
	payload := map[string]string{"name": name, "phone": phone}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/customers", c.apiURL)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling customers API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("customers API returned status %d: %s", resp.StatusCode, string(body))
	}

	var customer entity.Customer
	if err := json.Unmarshal(body, &customer); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &customer, nil
}

// CustomerStats obtiene el resumen via GET /customers/:id/stats
func (c *CustomerClient) CustomerStats(authToken string, customerID int64) (*entity.CustomerStats, error) {
	url := fmt.Sprintf("%s/customers/%d/stats", c.apiURL, customerID)

	body, err := c.doGet(url, authToken)
	if err != nil {
		return nil, err
	}

	var stats entity.CustomerStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &stats, nil
}

// CustomerSummary obtiene los contadores globales via GET /customers/summary
func (c *CustomerClient) CustomerSummary(authToken string) (*entity.CustomerSummary, error) {
	url := fmt.Sprintf("%s/customers/summary", c.apiURL)

	body, err := c.doGet(url, authToken)
	if err != nil {
		return nil, err
	}

	var summary entity.CustomerSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &summary, nil
}

// ListByStatus lista clientes por estado via GET /customers con filtro active
func (c *CustomerClient) ListByStatus(authToken string, active bool, page, size int) (*entity.CustomerPage, error) {
	crit := criteria.NewCriteriaBuilder().
		WithFilter("active", criteria.OpEqual, fmt.Sprintf("%t", active)).
		WithOrder("name", criteria.ASC).
		WithPagination(page, size).
		Build()

	return c.SearchCustomers(authToken, crit)
}

// doGet ejecuta un GET con Authorization y retorna el body de un 200
func (c *CustomerClient) doGet(url, authToken string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling customers API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, entity.ErrCustomerNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("customers API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
