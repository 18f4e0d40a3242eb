package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"pdv/src/catalog/domain/entity"
	"pdv/src/shared/domain/criteria"
	infraCriteria "pdv/src/shared/infrastructure/criteria"
)

// EmbroideryClient cliente HTTP para el API de bordados del back-office
type EmbroideryClient struct {
	httpClient *http.Client
	apiURL     string
	converter  *infraCriteria.QueryCriteriaConverter
}

// NewEmbroideryClient crea una nueva instancia del cliente
func NewEmbroideryClient() *EmbroideryClient {
	apiURL := os.Getenv("BACKOFFICE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8081/api/v1" // Default para entorno local
	}

	return &EmbroideryClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL:    apiURL,
		converter: infraCriteria.NewQueryCriteriaConverter(),
	}
}

// SearchEmbroideries busca órdenes via GET /embroideries con el criteria
// serializado como query string
func (c *EmbroideryClient) SearchEmbroideries(authToken string, crit criteria.Criteria) (*entity.EmbroideryPage, error) {
	url := fmt.Sprintf("%s/embroideries?%s", c.apiURL, c.converter.ToQueryString(crit))

	body, err := c.doGet(url, authToken)
	if err != nil {
		return nil, err
	}

	var page entity.EmbroideryPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &page, nil
}

// GetEmbroidery obtiene una orden via GET /embroideries/:id
func (c *EmbroideryClient) GetEmbroidery(authToken string, id int64) (*entity.Embroidery, error) {
	url := fmt.Sprintf("%s/embroideries/%d", c.apiURL, id)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling embroideries API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, entity.ErrEmbroideryNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embroideries API returned status %d: %s", resp.StatusCode, string(body))
	}

	var embroidery entity.Embroidery
	if err := json.Unmarshal(body, &embroidery); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &embroidery, nil
}

// CreateEmbroidery registra una orden via POST /embroideries. Con imagen
// viaja como multipart (campo data + campo image); sin imagen, como JSON.
func (c *EmbroideryClient) CreateEmbroidery(authToken string, draft *entity.EmbroideryDraft, image []byte, imageName string) (*entity.Embroidery, error) {
	url := fmt.Sprintf("%s/embroideries", c.apiURL)

	var req *http.Request
	var err error
	if len(image) > 0 {
		req, err = c.multipartRequest(url, draft, image, imageName)
	} else {
		req, err = c.jsonRequest(url, draft)
	}
	if err != nil {
		return nil, err
	}

	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling embroideries API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("embroideries API returned status %d: %s", resp.StatusCode, string(body))
	}

	var embroidery entity.Embroidery
	if err := json.Unmarshal(body, &embroidery); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &embroidery, nil
}

// EmbroideryImage descarga la imagen via GET /embroideries/:id/image
func (c *EmbroideryClient) EmbroideryImage(authToken string, id int64) ([]byte, string, error) {
	url := fmt.Sprintf("%s/embroideries/%d/image", c.apiURL, id)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("error creating request: %w", err)
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("error calling embroideries API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", entity.ErrEmbroideryNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("embroideries API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// DeleteEmbroidery elimina una orden via DELETE /embroideries/:id
func (c *EmbroideryClient) DeleteEmbroidery(authToken string, id int64) error {
	url := fmt.Sprintf("%s/embroideries/%d", c.apiURL, id)

	req, err := http.NewRequest("DELETE", url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling embroideries API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entity.ErrEmbroideryNotFound
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("embroideries API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// doGet ejecuta un GET con Authorization y retorna el body de un 200
func (c *EmbroideryClient) doGet(url, authToken string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling embroideries API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embroideries API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func (c *EmbroideryClient) jsonRequest(url string, draft *entity.EmbroideryDraft) (*http.Request, error) {
	jsonData, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *EmbroideryClient) multipartRequest(url string, draft *entity.EmbroideryDraft, image []byte, imageName string) (*http.Request, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	jsonData, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("error marshalling request: %w", err)
	}
	if err := writer.WriteField("data", string(jsonData)); err != nil {
		return nil, fmt.Errorf("error writing multipart field: %w", err)
	}

	part, err := writer.CreateFormFile("image", imageName)
	if err != nil {
		return nil, fmt.Errorf("error creating multipart file: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("error writing multipart file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("error closing multipart writer: %w", err)
	}

	req, err := http.NewRequest("POST", url, &buf)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}
