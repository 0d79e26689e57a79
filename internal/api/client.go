// Package api is the HTTP client for the portal's ticketing API. The
// server owns all business logic; this client only fetches tickets and
// synchronizes saved views.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tcarver/tix/internal/models"
)

// Client talks to the portal API rooted at /api/tickets.
type Client struct {
	baseURL string
	apiKey  string
	tenant  string
	client  *http.Client
}

// NewClient creates a client for the given endpoint, e.g.
// "https://portal.example.com". apiKey and tenant may be empty for
// servers that do not require them.
func NewClient(baseURL, apiKey, tenant string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		tenant:  tenant,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

// ListTickets fetches the rows of the ticket table.
func (c *Client) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var out listResponse[models.Ticket]
	if err := c.do(ctx, http.MethodGet, "/api/tickets", nil, &out); err != nil {
		return nil, fmt.Errorf("listing tickets: %w", err)
	}
	return out.Items, nil
}

// ListViews fetches all saved views.
func (c *Client) ListViews(ctx context.Context) ([]models.View, error) {
	var out listResponse[models.View]
	if err := c.do(ctx, http.MethodGet, "/api/tickets/views", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// GetView fetches one saved view by id.
func (c *Client) GetView(ctx context.Context, id int64) (*models.View, error) {
	var out models.View
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tickets/views/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateView persists a new saved view and returns the created record.
func (c *Client) CreateView(ctx context.Context, req models.ViewRequest) (*models.View, error) {
	var out models.View
	if err := c.do(ctx, http.MethodPost, "/api/tickets/views", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteView removes a saved view. Any 2xx counts as success; no body is
// expected.
func (c *Client) DeleteView(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tickets/views/%d", id), nil, nil)
}

// do issues one request. Non-2xx responses become errors carrying the
// status and a body excerpt; out may be nil when no body is expected.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	if c.tenant != "" {
		req.Header.Set("X-Tenant", c.tenant)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, string(excerpt))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
