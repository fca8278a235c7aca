package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds connection settings for the bookmark service.
type Config struct {
	Server  string        // base URL, e.g. https://api.example.com
	Token   string        // bearer token
	Timeout time.Duration // per-request timeout; 0 means 30s
}

// Client is the HTTP client for the bookmark service. Every call goes
// through Invoke, so transient failures are retried with backoff and a
// 429 surfaces as *RateLimitError.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
}

// NewClient creates a client for the configured service.
func NewClient(cfg *Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.Server, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", cfg.Server, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", cfg.Server)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		base:  base,
		token: cfg.Token,
		// The timeout bounds each attempt, not the retry loop; an
		// attempt that exceeds it fails like any network error.
		http: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) User(ctx context.Context) (map[string]any, error) {
	return c.getRecord(ctx, "/api/v1/user", nil)
}

func (c *Client) ListBookmarks(ctx context.Context, collectionID int64) ([]map[string]any, error) {
	query := url.Values{}
	if collectionID != 0 {
		query.Set("collection", strconv.FormatInt(collectionID, 10))
	}
	return c.getItems(ctx, "/api/v1/bookmarks", query)
}

func (c *Client) ListCollections(ctx context.Context) (roots, children []map[string]any, err error) {
	roots, err = c.getItems(ctx, "/api/v1/collections", nil)
	if err != nil {
		return nil, nil, err
	}
	children, err = c.getItems(ctx, "/api/v1/collections/children", nil)
	if err != nil {
		return nil, nil, err
	}
	return roots, children, nil
}

func (c *Client) CreateBookmark(ctx context.Context, fields map[string]any) (map[string]any, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/v1/bookmarks", nil, fields)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

func (c *Client) UpdateBookmark(ctx context.Context, id int64, fields map[string]any) (map[string]any, error) {
	path := "/api/v1/bookmarks/" + strconv.FormatInt(id, 10)
	raw, err := c.do(ctx, http.MethodPut, path, nil, fields)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

func (c *Client) DeleteBookmark(ctx context.Context, id int64) error {
	path := "/api/v1/bookmarks/" + strconv.FormatInt(id, 10)
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) getRecord(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

func (c *Client) getItems(ctx context.Context, path string, query url.Values) ([]map[string]any, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return envelope.Items, nil
}

// do performs one logical request through the retry loop. The body is
// marshaled once; each attempt gets a fresh reader.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	target := *c.base
	target.Path = strings.TrimRight(target.Path, "/") + path
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var result json.RawMessage
	err := Invoke(ctx, func() error {
		raw, err := c.attempt(ctx, method, target.String(), payload)
		if err != nil {
			return err
		}
		result = raw
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// attempt performs a single HTTP exchange and converts non-2xx
// statuses into structured errors for the classifier.
func (c *Client) attempt(ctx context.Context, method, target string, payload []byte) (json.RawMessage, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{Info: ExtractRateLimit(resp.Header)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}

	return json.RawMessage(data), nil
}

func decodeRecord(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	// Single-record endpoints may wrap the payload in an "item" key.
	if item, ok := record["item"].(map[string]any); ok {
		return item, nil
	}
	return record, nil
}

// errorMessage pulls a human-readable message out of an error body.
func errorMessage(data []byte) string {
	var body struct {
		ErrorMessage string `json:"errorMessage"`
		Error        string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.ErrorMessage != "" {
			return body.ErrorMessage
		}
		if body.Error != "" {
			return body.Error
		}
	}
	msg := strings.TrimSpace(string(data))
	if len(msg) > 120 {
		msg = msg[:120]
	}
	return msg
}
