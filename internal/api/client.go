// Package api provides the authenticated HTTP client for the Veltro backend.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// TokenSource supplies the current bearer token, or "" when no session exists.
type TokenSource interface {
	Token() string
}

// Client issues JSON requests against the backend and unwraps the
// {success, data, message} envelope. It never retries.
type Client struct {
	http   *resty.Client
	tokens TokenSource
	logger *slog.Logger
}

// NewClient creates a backend client with the given base URL and token source.
func NewClient(log *slog.Logger, baseURL string, timeout time.Duration, tokens TokenSource) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("api base url cannot be empty")
	}
	if log == nil {
		log = slog.Default()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{
		http:   httpClient,
		tokens: tokens,
		logger: log.With(slog.String("component", "api")),
	}, nil
}

// Get issues GET path and decodes the envelope data into out (may be nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, resty.MethodGet, path, nil, out)
}

// Post issues POST path with body and decodes the envelope data into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, resty.MethodPost, path, body, out)
}

// Patch issues PATCH path with body and decodes the envelope data into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, resty.MethodPatch, path, body, out)
}

// Put issues PUT path with body and decodes the envelope data into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, resty.MethodPut, path, body, out)
}

// Delete issues DELETE path and decodes the envelope data into out (may be nil).
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, resty.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if c.tokens != nil {
		if token := strings.TrimSpace(c.tokens.Token()); token != "" {
			req.SetAuthToken(token)
		}
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	var envelope Envelope
	if len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
			if resp.IsError() {
				return &APIError{Status: resp.StatusCode()}
			}
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}

	if resp.IsError() || (len(resp.Body()) > 0 && !envelope.Success) {
		return &APIError{Status: resp.StatusCode(), Message: envelope.Message}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}
