// Package store provides the thin Supabase PostgREST client the data-access
// layer is built on. Every repository method maps to exactly one request
// against the managed store's REST surface.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"
)

// Client wraps the Supabase REST API.
type Client struct {
	url        string
	anonKey    string
	httpClient *http.Client
}

// Config holds store connection settings.
type Config struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

// NewClient creates a new Supabase client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.AnonKey == "" {
		return nil, fmt.Errorf("supabase anon key is required")
	}

	parsed, err := neturl.Parse(cfg.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("supabase URL must be a valid URL")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		url:        strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

const maxResponseBytes = 8 << 20 // 8 MiB

// request makes an HTTP request to the Supabase REST API and returns the raw
// response body. Status codes >= 400 are returned as *APIError.
func (c *Client) request(ctx context.Context, method, table string, body interface{}, query string) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.url, table)
	if query != "" {
		url += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, parseError(respBody, resp.StatusCode)
	}

	return respBody, nil
}

// Select performs a GET against a table. The query string carries PostgREST
// filters such as "aluno_id=eq.3&ativo=eq.true&order=data_registro.desc".
func (c *Client) Select(ctx context.Context, table, query string) ([]byte, error) {
	return c.request(ctx, http.MethodGet, table, nil, query)
}

// Insert performs a POST against a table, returning the created rows.
func (c *Client) Insert(ctx context.Context, table string, body interface{}) ([]byte, error) {
	return c.request(ctx, http.MethodPost, table, body, "")
}

// Update performs a PATCH against the rows matched by query.
func (c *Client) Update(ctx context.Context, table string, body interface{}, query string) ([]byte, error) {
	return c.request(ctx, http.MethodPatch, table, body, query)
}

// Delete removes the rows matched by query, returning the deleted rows.
func (c *Client) Delete(ctx context.Context, table, query string) ([]byte, error) {
	return c.request(ctx, http.MethodDelete, table, nil, query)
}
