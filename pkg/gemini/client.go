package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is the Gemini Generative Language API client. It is safe for
// concurrent use.
type Client struct {
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	httpClient  *http.Client
}

// New creates a Gemini client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &Client{
		apiKey:      cfg.APIKey,
		apiURL:      strings.TrimRight(cfg.APIURL, "/"),
		model:       cfg.Model,
		temperature: temperature,
		httpClient:  cfg.HTTPClient,
	}, nil
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// GenerateText sends a single-turn prompt and returns the reply text. When
// webSearch is set the model may ground its answer with Google Search.
func (c *Client) GenerateText(ctx context.Context, prompt string, webSearch bool) (string, error) {
	req := GenerateRequest{
		Contents: []Content{
			{Role: roleUser, Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: &GenerationConfig{Temperature: c.temperature},
	}
	if webSearch {
		req.Tools = []Tool{{GoogleSearch: &GoogleSearch{}}}
	}

	resp, err := c.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// GenerateContent sends a content generation request to the Gemini API.
func (c *Client) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}
