// Package anaf forwards declaration payloads to the national tax authority.
package anaf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Result is the upstream response, passed through verbatim.
type Result struct {
	Status int
	Body   json.RawMessage
}

// Client wraps interactions with the ANAF submission API.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient constructs a new client. The timeout bounds every submission so a
// stalled upstream cannot hang request handlers.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Submit posts the raw JSON payload and returns the upstream status and body
// unchanged. Transport failures come back as errors, never panics.
func (c *Client) Submit(ctx context.Context, payload []byte) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build anaf request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit to anaf: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read anaf response: %w", err)
	}
	return &Result{Status: resp.StatusCode, Body: body}, nil
}
