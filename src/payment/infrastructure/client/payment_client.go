package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"pdv/src/payment/domain/entity"

	"github.com/shopspring/decimal"
)

// PaymentClient cliente HTTP para el API de pagos del back-office
type PaymentClient struct {
	httpClient *http.Client
	apiURL     string
}

// NewPaymentClient crea una nueva instancia del cliente
func NewPaymentClient() *PaymentClient {
	apiURL := os.Getenv("BACKOFFICE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8081/api/v1" // Default para entorno local
	}

	return &PaymentClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL: apiURL,
	}
}

// ListPaymentMethods obtiene los métodos de pago via GET /payments/methods
func (c *PaymentClient) ListPaymentMethods(authToken string) ([]entity.PaymentMethod, error) {
	url := fmt.Sprintf("%s/payments/methods", c.apiURL)

	body, err := c.doGet(url, authToken)
	if err != nil {
		return nil, err
	}

	var methods []entity.PaymentMethod
	if err := json.Unmarshal(body, &methods); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return methods, nil
}

// ProcessMultiPayment registra el pago múltiple via POST /payments/multi
func (c *PaymentClient) ProcessMultiPayment(authToken string, submission *entity.PaymentSubmission) (*entity.PaymentConfirmation, error) {
	jsonData, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/payments/multi", c.apiURL)

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
		return nil, fmt.Errorf("error calling payments API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		// El back-office rechaza por stock insuficiente, caja cerrada, etc.
		return nil, fmt.Errorf("payments API returned status %d: %s", resp.StatusCode, string(body))
	}

	var confirmation entity.PaymentConfirmation
	if err := json.Unmarshal(body, &confirmation); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &confirmation, nil
}

// ListPaymentsBySale obtiene los pagos de una venta via GET /payments/sale/:id
func (c *PaymentClient) ListPaymentsBySale(authToken string, saleID int64) ([]entity.ProcessedPayment, error) {
	url := fmt.Sprintf("%s/payments/sale/%d", c.apiURL, saleID)

	body, err := c.doGet(url, authToken)
	if err != nil {
		return nil, err
	}

	var payments []entity.ProcessedPayment
	if err := json.Unmarshal(body, &payments); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return payments, nil
}

// TodayPayments obtiene los pagos del día via GET /payments/today
func (c *PaymentClient) TodayPayments(authToken string) ([]entity.ProcessedPayment, error) {
	url := fmt.Sprintf("%s/payments/today", c.apiURL)

	body, err := c.doGet(url, authToken)
	if err != nil {
		return nil, err
	}

	var payments []entity.ProcessedPayment
	if err := json.Unmarshal(body, &payments); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return payments, nil
}

// TodayTotal obtiene el total cobrado del día via GET /payments/today/total
func (c *PaymentClient) TodayTotal(authToken string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/payments/today/total", c.apiURL)

	body, err := c.doGet(url, authToken)
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	if err := json.Unmarshal(body, &total); err != nil {
		return decimal.Zero, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return total, nil
}

// doGet ejecuta un GET con Authorization y retorna el body en caso de 200
func (c *PaymentClient) doGet(url, authToken string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling payments API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payments API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
