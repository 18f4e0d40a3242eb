package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"pdv/src/auth/domain/entity"
)

// AuthClient cliente HTTP para el API de autenticación del back-office
type AuthClient struct {
	httpClient *http.Client
	apiURL     string
}

// NewAuthClient crea una nueva instancia del cliente
func NewAuthClient() *AuthClient {
	apiURL := os.Getenv("BACKOFFICE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8081/api/v1" // Default para entorno local
	}

	return &AuthClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL: apiURL,
	}
}

// Login autentica via POST /auth/login
func (c *AuthClient) Login(username, password string) (*entity.LoginResult, error) {
	payload := map[string]string{"username": username, "password": password}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/auth/login", c.apiURL)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling auth API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, entity.ErrInvalidCredentials
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result entity.LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &result, nil
}
