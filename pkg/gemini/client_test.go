package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"concierge-router/pkg/gemini"
)

func newTestServer(t *testing.T, gotReq *gemini.GenerateRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/models/"+gemini.DefaultModel+":generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if gotReq != nil {
			*gotReq = req
		}

		switch req.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "cause_empty":
			w.Write([]byte(`{"candidates": []}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "Wheels up " },
							{ "text": "at nine." }
						],
						"role": "model"
					},
					"finishReason": "STOP"
				}
			]
		}`))
	}))
}

func TestNew(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	c, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestClient_GenerateText(t *testing.T) {
	var got gemini.GenerateRequest
	ts := newTestServer(t, &got)
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL + "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow With Web Search", func(t *testing.T) {
		text, err := client.GenerateText(context.Background(), "When do we leave?", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "Wheels up at nine." {
			t.Errorf("unexpected text: %q", text)
		}
		if len(got.Tools) != 1 || got.Tools[0].GoogleSearch == nil {
			t.Errorf("expected google_search tool, got %+v", got.Tools)
		}
		if got.GenerationConfig == nil || got.GenerationConfig.Temperature != gemini.DefaultTemperature {
			t.Errorf("expected default temperature, got %+v", got.GenerationConfig)
		}
	})

	t.Run("Success Flow Without Web Search", func(t *testing.T) {
		if _, err := client.GenerateText(context.Background(), "Hello", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Tools) != 0 {
			t.Errorf("expected no tools, got %+v", got.Tools)
		}
	})

	t.Run("Empty Response Flow", func(t *testing.T) {
		_, err := client.GenerateText(context.Background(), "cause_empty", false)
		if !errors.Is(err, gemini.ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.GenerateText(context.Background(), "cause_500", false); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})
}

func TestClient_GenerateContent(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
		Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "Hello world"}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Candidates) != 1 {
		t.Fatalf("expected 1 candidate")
	}
	if resp.Candidates[0].FinishReason != "STOP" {
		t.Errorf("unexpected finish reason: %s", resp.Candidates[0].FinishReason)
	}

	bad, err := gemini.New(gemini.Config{APIKey: "wrong", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := bad.GenerateContent(context.Background(), gemini.GenerateRequest{
		Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "Hello"}}}},
	}); err == nil {
		t.Fatalf("expected error for bad api key")
	}
}
