// Package remote provides the HTTP client for the pizza-hunt REST API.
//
// Transport failures (connection refused, DNS, timeouts, truncated bodies)
// are wrapped with domain.ErrNetworkFailure. Any response whose JSON object
// carries a "message" field, or any non-2xx status, is returned as a
// *domain.APIError.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
	"github.com/custodia-labs/pizza-hunt/internal/logger"
)

// pizzasPath is the pizza collection resource.
const pizzasPath = "/api/pizzas"

// Ensure Client implements the interface.
var _ driven.RemoteAPI = (*Client)(nil)

// Client talks to the REST API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithRateLimit throttles requests to perSecond. Zero or less disables throttling.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreatePizza submits a single create payload.
func (c *Client) CreatePizza(ctx context.Context, payload json.RawMessage) (*domain.Pizza, error) {
	var pizza domain.Pizza
	if err := c.do(ctx, http.MethodPost, pizzasPath, payload, &pizza); err != nil {
		return nil, err
	}
	return &pizza, nil
}

// CreatePizzas submits an ordered batch of create payloads in one request.
func (c *Client) CreatePizzas(ctx context.Context, payloads []json.RawMessage) ([]domain.Pizza, error) {
	body, err := json.Marshal(payloads)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding batch: %w", domain.ErrInvalidInput, err)
	}

	var pizzas []domain.Pizza
	if err := c.do(ctx, http.MethodPost, pizzasPath, body, &pizzas); err != nil {
		return nil, err
	}
	return pizzas, nil
}

// ListPizzas returns all pizzas.
func (c *Client) ListPizzas(ctx context.Context) ([]domain.Pizza, error) {
	var pizzas []domain.Pizza
	if err := c.do(ctx, http.MethodGet, pizzasPath, nil, &pizzas); err != nil {
		return nil, err
	}
	return pizzas, nil
}

// GetPizza returns a single pizza.
func (c *Client) GetPizza(ctx context.Context, id string) (*domain.Pizza, error) {
	var pizza domain.Pizza
	if err := c.do(ctx, http.MethodGet, pizzasPath+"/"+url.PathEscape(id), nil, &pizza); err != nil {
		return nil, err
	}
	return &pizza, nil
}

// DeletePizza deletes a pizza and returns what was deleted.
func (c *Client) DeletePizza(ctx context.Context, id string) (*domain.Pizza, error) {
	var pizza domain.Pizza
	if err := c.do(ctx, http.MethodDelete, pizzasPath+"/"+url.PathEscape(id), nil, &pizza); err != nil {
		return nil, err
	}
	return &pizza, nil
}

// errorPayload is the shape of an error response.
type errorPayload struct {
	Message *string `json:"message"`
}

// do sends a request and decodes a successful response into out.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: waiting for rate limiter: %w", domain.ErrNetworkFailure, err)
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("%s %s", method, req.URL)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrNetworkFailure, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %w", domain.ErrNetworkFailure, err)
	}

	if apiErr := decodeError(resp.StatusCode, data); apiErr != nil {
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected response body: %v", err),
		}
	}
	return nil
}

// decodeError returns an *APIError when the response is an error response.
// A top-level "message" field marks an error regardless of status code.
func decodeError(status int, data []byte) *domain.APIError {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var payload errorPayload
		if err := json.Unmarshal(trimmed, &payload); err == nil && payload.Message != nil {
			return &domain.APIError{StatusCode: status, Message: *payload.Message}
		}
	}
	if status < 200 || status > 299 {
		return &domain.APIError{StatusCode: status, Message: http.StatusText(status)}
	}
	return nil
}
