// Package apiclient es un cliente HTTP para la API de petcare.
// Lo usan cmd/seed y los tests de integración.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second
)

// Resource es una colección expuesta por la API.
type Resource string

const (
	Clients   Resource = "clients"
	Pets      Resource = "pets"
	Services  Resource = "services"
	Contracts Resource = "contracts"
)

// Client envuelve *http.Client con BaseURL de la API.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	baseURL = strings.TrimSpace(baseURL)
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("apiclient: invalid base url: %w", err)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("apiclient: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("apiclient: status=%d body=%s", e.StatusCode, e.Body)
}

// IsNotFound indica si err es un 404 de la API.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}

// ListEnvelope es la respuesta de GET /{resource}.
type ListEnvelope[T any] struct {
	Message      string `json:"message"`
	TotalRecords int    `json:"total_records"`
	Results      []T    `json:"results"`
}

type itemEnvelope[T any] struct {
	Message string `json:"message"`
	Result  T      `json:"result"`
}

// List trae todos los registros de res.
func List[T any](ctx context.Context, c *Client, res Resource) (ListEnvelope[T], error) {
	var out ListEnvelope[T]
	err := c.DoJSON(ctx, http.MethodGet, "/"+string(res), nil, &out)
	return out, err
}

// Get trae un registro por id.
func Get[T any](ctx context.Context, c *Client, res Resource, id int64) (T, error) {
	var out itemEnvelope[T]
	err := c.DoJSON(ctx, http.MethodGet, itemPath(res, id), nil, &out)
	return out.Result, err
}

// Create envía in y decodifica el eco de la API en out (opcional).
func (c *Client) Create(ctx context.Context, res Resource, in, out any) error {
	return c.DoJSON(ctx, http.MethodPost, "/"+string(res), in, out)
}

// Update envía un update parcial; out recibe la representación actualizada.
func (c *Client) Update(ctx context.Context, res Resource, id int64, in, out any) error {
	return c.DoJSON(ctx, http.MethodPut, itemPath(res, id), in, out)
}

func (c *Client) Delete(ctx context.Context, res Resource, id int64) error {
	return c.DoJSON(ctx, http.MethodDelete, itemPath(res, id), nil, nil)
}

// DoJSON hace un request JSON contra BaseURL+path.
// Retorna *HTTPError si el status no es 2xx.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("apiclient: nil client")
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("apiclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1MB max

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("apiclient: unmarshal json: %w", err)
	}
	return nil
}

func itemPath(res Resource, id int64) string {
	return "/" + string(res) + "/" + strconv.FormatInt(id, 10)
}

// LastID devuelve el id más alto de res. La API no devuelve el id en el
// POST (responde el body enviado), así que se lee de la lista, que viene
// ordenada por id.
func LastID(ctx context.Context, c *Client, res Resource) (int64, error) {
	list, err := List[struct {
		ID int64 `json:"id"`
	}](ctx, c, res)
	if err != nil {
		return 0, err
	}
	if len(list.Results) == 0 {
		return 0, fmt.Errorf("apiclient: %s is empty", res)
	}
	return list.Results[len(list.Results)-1].ID, nil
}
