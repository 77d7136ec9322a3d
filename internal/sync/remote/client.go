// Package remote es el cliente HTTP de la API de inventario (/api/products, /api/borrowed,
// /api/reminders, /api/init).
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/storesage/internal/application/dto"
)

// Recursos de la API.
const (
	ResourceProducts  = "products"
	ResourceBorrowed  = "borrowed"
	ResourceReminders = "reminders"
)

const maxResponseBytes = 8 << 20

// ErrTransport la petición no llegó a obtener respuesta (conexión rechazada, DNS, timeout).
// Es el único error que habilita el modo offline.
var ErrTransport = errors.New("remote: error de transporte")

// APIError respuesta no 2xx de la API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("remote: HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote: HTTP %d %s: %s", e.Status, e.Code, e.Message)
}

// IsNotFound indica si err es un 404 de la API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// ImportPayload cuerpo de POST /api/init.
type ImportPayload struct {
	Products  []map[string]any `json:"products"`
	Borrowed  []map[string]any `json:"borrowed"`
	Reminders []map[string]any `json:"reminders"`
}

// Client cliente REST. Los registros viajan como objetos JSON genéricos para poder
// reenviarlos tal cual al espejo local.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. timeout se aplica a cada petición completa.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// List GET /api/{resource}
func (c *Client) List(ctx context.Context, resource string) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.do(ctx, http.MethodGet, "/api/"+resource, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []map[string]any{}
	}
	return out, nil
}

// Get GET /api/{resource}/{id}
func (c *Client) Get(ctx context.Context, resource, id string) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, itemPath(resource, id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /api/{resource}
func (c *Client) Create(ctx context.Context, resource string, payload map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/api/"+resource, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update PUT /api/{resource}/{id}
func (c *Client) Update(ctx context.Context, resource, id string, payload map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodPut, itemPath(resource, id), payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkReturned PUT /api/borrowed/{id}/return
func (c *Client) MarkReturned(ctx context.Context, id string) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodPut, itemPath(ResourceBorrowed, id)+"/return", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete DELETE /api/{resource}/{id}
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath(resource, id), nil, nil)
}

// Import POST /api/init
func (c *Client) Import(ctx context.Context, payload ImportPayload) error {
	var out dto.SuccessResponse
	if err := c.do(ctx, http.MethodPost, "/api/init", payload, &out); err != nil {
		return err
	}
	if !out.Success {
		return &APIError{Status: http.StatusOK, Message: "la importación no confirmó éxito"}
	}
	return nil
}

func itemPath(resource, id string) string {
	return "/api/" + resource + "/" + url.PathEscape(id)
}

// do ejecuta la petición. Fallos de red → ErrTransport; respuestas no 2xx → *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("remote: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("remote: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errResp dto.ErrorResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && (errResp.Code != "" || errResp.Message != "") {
			apiErr.Code = errResp.Code
			apiErr.Message = errResp.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(rawBody))
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(rawBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("remote: deserializar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}
