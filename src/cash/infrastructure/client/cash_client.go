package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"pdv/src/cash/domain/entity"
)

// CashClient cliente HTTP para el API de caja del back-office
type CashClient struct {
	httpClient *http.Client
	apiURL     string
}

// NewCashClient crea una nueva instancia del cliente
func NewCashClient() *CashClient {
	apiURL := os.Getenv("BACKOFFICE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8081/api/v1" // Default para entorno local
	}

	return &CashClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL: apiURL,
	}
}

// OpenSession abre una sesión via POST /cash-sessions/open
func (c *CashClient) OpenSession(authToken string, initialValue decimal.Decimal) (*entity.CashSession, error) {
	payload := map[string]decimal.Decimal{"initialValue": initialValue}

	body, err := c.doJSON("POST", fmt.Sprintf("%s/cash-sessions/open", c.apiURL), authToken, payload)
	if err != nil {
		return nil, err
	}

	var session entity.CashSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &session, nil
}

// ActiveSession consulta la sesión abierta via GET /cash-sessions/active.
// Retorna nil sin error cuando el backend responde 404.
func (c *CashClient) ActiveSession(authToken string) (*entity.CashSession, error) {
	url := fmt.Sprintf("%s/cash-sessions/active", c.apiURL)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling cash API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cash API returned status %d: %s", resp.StatusCode, string(body))
	}

	var session entity.CashSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &session, nil
}

// RegisterTransaction registra un movimiento via POST /cash-sessions/:id/transactions
func (c *CashClient) RegisterTransaction(authToken string, sessionID int64, txType entity.TransactionType, amount decimal.Decimal, description string) (*entity.CashTransaction, error) {
	payload := map[string]interface{}{
		"type":        txType,
		"amount":      amount,
		"description": description,
	}

	url := fmt.Sprintf("%s/cash-sessions/%d/transactions", c.apiURL, sessionID)
	body, err := c.doJSON("POST", url, authToken, payload)
	if err != nil {
		return nil, err
	}

	var tx entity.CashTransaction
	if err := json.Unmarshal(body, &tx); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &tx, nil
}

// CloseSession cierra la sesión via POST /cash-sessions/:id/close
func (c *CashClient) CloseSession(authToken string, sessionID int64) (*entity.CloseSummary, error) {
	url := fmt.Sprintf("%s/cash-sessions/%d/close", c.apiURL, sessionID)

	body, err := c.doJSON("POST", url, authToken, struct{}{})
	if err != nil {
		return nil, err
	}

	var summary entity.CloseSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &summary, nil
}

// doJSON ejecuta una petición con body JSON y retorna el body de un 200/201
func (c *CashClient) doJSON(method, url, authToken string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
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
		return nil, fmt.Errorf("error calling cash API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("cash API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
