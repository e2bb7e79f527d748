package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client talks to the upstream commerce API. The gateway never computes
// prices, totals or order state itself; everything authoritative is fetched
// through this client.
type Client struct {
	http *resty.Client
	log  *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		log: log,
	}
}

// envelope is the upstream response wrapper {status, message, data}.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError carries the upstream error envelope. Controllers forward it to
// the UI unchanged so the toast shows the backend-provided status and
// message.
type APIError struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
}

// do executes a request and decodes the envelope's data field into out.
// Error responses become *APIError; transport failures are wrapped as-is.
func (c *Client) do(ctx context.Context, method, path, token string, query map[string]string, body, out any) (string, error) {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", token)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return "", fmt.Errorf("backend %s %s: %w", method, path, err)
	}

	if resp.IsError() {
		apiErr := &APIError{}
		if jsonErr := json.Unmarshal(resp.Body(), apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode()
		}
		c.log.Warn("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.String("message", apiErr.Message))
		return "", apiErr
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return "", fmt.Errorf("backend %s %s: decoding envelope: %w", method, path, err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("backend %s %s: decoding data: %w", method, path, err)
		}
	}
	return env.Message, nil
}

func (c *Client) get(ctx context.Context, path, token string, query map[string]string, out any) (string, error) {
	return c.do(ctx, http.MethodGet, path, token, query, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) (string, error) {
	return c.do(ctx, http.MethodPost, path, token, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path, token string, body, out any) (string, error) {
	return c.do(ctx, http.MethodPatch, path, token, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path, token string) (string, error) {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil)
}
