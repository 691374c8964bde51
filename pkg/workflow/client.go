package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"concierge-router/pkg/log"
)

// Client posts routing payloads to the workflow backend webhook.
type Client struct {
	url        string
	secret     string
	attempts   int
	retryDelay time.Duration
	httpClient *http.Client
	l          log.Logger
}

// New creates a workflow client.
func New(cfg Config, l log.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		url:        cfg.URL,
		secret:     cfg.Secret,
		attempts:   cfg.RetryAttempts,
		retryDelay: cfg.RetryDelay,
		httpClient: cfg.HTTPClient,
		l:          l,
	}, nil
}

// Trigger posts payload as JSON. Transport errors and 5xx answers are retried
// with linear backoff; 4xx answers are returned immediately.
func (c *Client) Trigger(ctx context.Context, payload any) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("workflow: failed to marshal payload: %w", err)
	}

	requestID, ok := log.RequestID(ctx)
	if !ok {
		requestID = uuid.NewString()
	}

	var lastErr error
	for attempt := 0; attempt < c.attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * c.retryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return Response{}, ctx.Err()
			}
		}

		resp, err := c.post(ctx, body, requestID)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil || !retryable(err) {
			break
		}
		c.l.Warnf(ctx, "%s: attempt %d/%d failed: %v", LogPrefixTrigger, attempt+1, c.attempts, err)
	}

	return Response{}, lastErr
}

func (c *Client) post(ctx context.Context, body []byte, requestID string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("workflow: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if c.secret != "" {
		req.Header.Set(HeaderSecret, c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("workflow: failed to call backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("workflow: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		return Response{}, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return Response{StatusCode: resp.StatusCode, Body: raw}, nil
}
